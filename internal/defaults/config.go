package defaults

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Values carries the run defaults. Zero fields fall back to the package
// constants, so a config file only needs to name what it changes.
type Values struct {
	Overhang         float64 `yaml:"overhang"`
	HeightRatio      float64 `yaml:"height_ratio"`
	SideExtension    float64 `yaml:"side_extension"`
	FlatRise         float64 `yaml:"flat_rise"`
	RidgeCoverLength float64 `yaml:"ridge_cover_length"`
	SheetLength      float64 `yaml:"sheet_length"`
	SheetWidth       float64 `yaml:"sheet_width"`
	WastePercent     float64 `yaml:"waste_percent"`
	NailUsagePerSqm  float64 `yaml:"nail_usage_per_sqm"`
	TrussSpacing     float64 `yaml:"truss_spacing"`
	PurlinSpacing    float64 `yaml:"purlin_spacing"`
}

// Standard returns the built-in defaults.
func Standard() Values {
	return Values{
		Overhang:         Overhang,
		HeightRatio:      HeightRatio,
		SideExtension:    SideExtension,
		FlatRise:         FlatRise,
		RidgeCoverLength: RidgeCoverLength,
		SheetLength:      SheetLength,
		SheetWidth:       SheetWidth,
		WastePercent:     WastePercent,
		NailUsagePerSqm:  NailUsagePerSqm,
		TrussSpacing:     TrussSpacing,
		PurlinSpacing:    PurlinSpacing,
	}
}

// Load reads a YAML defaults file and merges it over the built-ins.
// Lengths in the file are meters.
func Load(path string) (Values, error) {
	v := Standard()
	data, err := os.ReadFile(path)
	if err != nil {
		return v, fmt.Errorf("reading defaults file: %w", err)
	}
	var file Values
	if err := yaml.Unmarshal(data, &file); err != nil {
		return v, fmt.Errorf("parsing defaults file %s: %w", path, err)
	}
	v.merge(file)
	return v, nil
}

func (v *Values) merge(o Values) {
	if o.Overhang > 0 {
		v.Overhang = o.Overhang
	}
	if o.HeightRatio > 0 {
		v.HeightRatio = o.HeightRatio
	}
	if o.SideExtension > 0 {
		v.SideExtension = o.SideExtension
	}
	if o.FlatRise > 0 {
		v.FlatRise = o.FlatRise
	}
	if o.RidgeCoverLength > 0 {
		v.RidgeCoverLength = o.RidgeCoverLength
	}
	if o.SheetLength > 0 {
		v.SheetLength = o.SheetLength
	}
	if o.SheetWidth > 0 {
		v.SheetWidth = o.SheetWidth
	}
	if o.WastePercent > 0 {
		v.WastePercent = o.WastePercent
	}
	if o.NailUsagePerSqm > 0 {
		v.NailUsagePerSqm = o.NailUsagePerSqm
	}
	if o.TrussSpacing > 0 {
		v.TrussSpacing = o.TrussSpacing
	}
	if o.PurlinSpacing > 0 {
		v.PurlinSpacing = o.PurlinSpacing
	}
}
