package defaults

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStandard(t *testing.T) {
	v := Standard()
	if v.Overhang != Overhang {
		t.Errorf("expected overhang %v, got %v", Overhang, v.Overhang)
	}
	if v.SheetLength != SheetLength || v.SheetWidth != SheetWidth {
		t.Errorf("unexpected sheet defaults: %v x %v", v.SheetLength, v.SheetWidth)
	}
}

func TestLoadMergesOverBuiltins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	content := "overhang: 0.45\ntruss_spacing: 0.9\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	v, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Overhang != 0.45 {
		t.Errorf("expected overridden overhang 0.45, got %v", v.Overhang)
	}
	if v.TrussSpacing != 0.9 {
		t.Errorf("expected overridden truss spacing 0.9, got %v", v.TrussSpacing)
	}
	// Untouched fields keep the built-in values.
	if v.HeightRatio != HeightRatio {
		t.Errorf("expected default height ratio %v, got %v", HeightRatio, v.HeightRatio)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("overhang: [nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
