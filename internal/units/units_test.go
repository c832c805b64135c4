package units

import (
	"math"
	"testing"
)

func TestConvertRoundTrip(t *testing.T) {
	v := 1234.5
	got := Convert(Convert(v, Millimeter, Meter), Meter, Millimeter)
	if math.Abs(got-v) > 1e-9 {
		t.Errorf("round trip mm->m->mm: expected %v, got %v", v, got)
	}
}

func TestToMeters(t *testing.T) {
	cases := []struct {
		value float64
		unit  Unit
		want  float64
	}{
		{1000, Millimeter, 1},
		{250, Centimeter, 2.5},
		{3.2, Meter, 3.2},
	}
	for _, c := range cases {
		if got := ToMeters(c.value, c.unit); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("ToMeters(%v, %s) = %v, want %v", c.value, c.unit, got, c.want)
		}
	}
}

func TestAreaFromSquareMeters(t *testing.T) {
	// 1 m² = 10000 cm²
	if got := AreaFromSquareMeters(1, Centimeter); math.Abs(got-10000) > 1e-9 {
		t.Errorf("expected 10000 cm², got %v", got)
	}
}

func TestParse(t *testing.T) {
	if _, err := Parse("ft"); err == nil {
		t.Error("expected error for unsupported unit")
	}
	u, err := Parse("cm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u != Centimeter {
		t.Errorf("expected cm, got %s", u)
	}
}

func TestDimensionMeters(t *testing.T) {
	d := Dimension{Value: 600, Unit: Centimeter}
	if got := d.Meters(); math.Abs(got-6) > 1e-12 {
		t.Errorf("expected 6 m, got %v", got)
	}
}
