package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jomsey/roof-calc/internal/roof"
	"github.com/jomsey/roof-calc/internal/units"
)

// roofOptions collects the flags shared by every command that builds a
// roof.
type roofOptions struct {
	roofType      string
	length        float64
	width         float64
	unit          string
	pitchAngle    float64
	pitchRatio    string // "rise:run"
	overhang      float64
	sideExtension float64
	heightRatio   float64
	flatRise      float64
	subRoofs      []string
}

// register wires the roof flags onto cmd. Length and width are required;
// everything else falls back to the run defaults.
func (o *roofOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.roofType, "type", "t", "", "Roof type: HIP, GABLE or FLAT [required]")
	cmd.Flags().Float64VarP(&o.length, "length", "l", 0, "Building length [required]")
	cmd.Flags().Float64VarP(&o.width, "width", "w", 0, "Building width [required]")
	cmd.Flags().StringVarP(&o.unit, "unit", "u", "m", "Measurement unit: mm, cm or m")
	cmd.Flags().Float64Var(&o.pitchAngle, "pitch", 0, "Pitch angle in degrees (GABLE)")
	cmd.Flags().StringVar(&o.pitchRatio, "pitch-ratio", "", "Pitch as rise:run, e.g. 1:3 (GABLE)")
	cmd.Flags().Float64Var(&o.overhang, "overhang", 0, "Roof overhang past the walls (default from config)")
	cmd.Flags().Float64Var(&o.sideExtension, "side-extension", 0, "Gable end extension (GABLE)")
	cmd.Flags().Float64Var(&o.heightRatio, "height-ratio", 0, "Width-to-rise ratio (HIP)")
	cmd.Flags().Float64Var(&o.flatRise, "flat-rise", 0, "Drainage rise (FLAT)")
	cmd.Flags().StringArrayVar(&o.subRoofs, "sub", nil,
		`Attached sub-roof, e.g. "name=porch,type=gable,edge=front,length=4,width=3,pitch=30"`)

	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("length")
	cmd.MarkFlagRequired("width")
}

// build validates the flags and constructs the roof plus any declared
// sub-roofs.
func (o *roofOptions) build() (*roof.Aggregate, error) {
	t, err := roof.ParseType(o.roofType)
	if err != nil {
		return nil, err
	}
	unit, err := units.Parse(o.unit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", roof.ErrInvalidConfiguration, err)
	}

	cfg := roof.Config{
		BuildingLength: o.length,
		BuildingWidth:  o.width,
		Unit:           unit,
		Overhang:       o.overhang,
		SideExtension:  o.sideExtension,
		HeightRatio:    o.heightRatio,
		FlatRise:       o.flatRise,
	}
	if cfg.Overhang == 0 {
		cfg.Overhang = units.FromMeters(runDefaults.Overhang, unit)
	}
	if cfg.HeightRatio == 0 {
		cfg.HeightRatio = runDefaults.HeightRatio
	}
	if cfg.SideExtension == 0 {
		cfg.SideExtension = units.FromMeters(runDefaults.SideExtension, unit)
	}
	if cfg.FlatRise == 0 {
		cfg.FlatRise = units.FromMeters(runDefaults.FlatRise, unit)
	}
	if o.pitchRatio != "" {
		rise, run, err := parseRatio(o.pitchRatio)
		if err != nil {
			return nil, err
		}
		cfg.Pitch = roof.PitchSpec{Rise: rise, Run: run}
	} else if o.pitchAngle != 0 {
		cfg.Pitch = roof.PitchSpec{AngleDegrees: o.pitchAngle}
	}

	main, err := roof.New(t, cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("roof constructed", zap.String("roof", main.String()))

	agg := roof.NewAggregate(main)
	for _, decl := range o.subRoofs {
		sub, err := parseSubRoof(decl, unit)
		if err != nil {
			return nil, err
		}
		agg.Attach(sub)
	}
	return agg, nil
}

// parseRatio parses "rise:run".
func parseRatio(s string) (float64, float64, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: pitch-ratio must be rise:run (got %q)", roof.ErrInvalidPitch, s)
	}
	rise, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: pitch-ratio rise %q", roof.ErrInvalidPitch, parts[0])
	}
	run, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: pitch-ratio run %q", roof.ErrInvalidPitch, parts[1])
	}
	return rise, run, nil
}

// parseSubRoof builds a sub-roof from a key=value declaration. Recognized
// keys: name, type, edge, length, width, pitch, section. Length, width
// and section are in the same unit as the main roof.
func parseSubRoof(decl string, unit units.Unit) (*roof.SubRoof, error) {
	fields := map[string]string{}
	for _, pair := range strings.Split(decl, ",") {
		kv := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("%w: sub-roof field %q is not key=value", roof.ErrInvalidConfiguration, pair)
		}
		fields[kv[0]] = kv[1]
	}

	name := fields["name"]
	if name == "" {
		name = "sub-roof"
	}

	typeTag := fields["type"]
	if typeTag == "" {
		typeTag = string(roof.Gable)
	}
	t, err := roof.ParseType(typeTag)
	if err != nil {
		return nil, err
	}

	edge, err := roof.ParseEdge(fields["edge"])
	if err != nil {
		return nil, err
	}

	num := func(key string) (float64, bool, error) {
		raw, ok := fields[key]
		if !ok {
			return 0, false, nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, false, fmt.Errorf("%w: sub-roof %s %q is not a number", roof.ErrInvalidConfiguration, key, raw)
		}
		return v, true, nil
	}

	length, ok, err := num("length")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: sub-roof %q missing length", roof.ErrInvalidConfiguration, name)
	}
	width, ok, err := num("width")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: sub-roof %q missing width", roof.ErrInvalidConfiguration, name)
	}

	cfg := roof.Config{
		BuildingLength: length,
		BuildingWidth:  width,
		Unit:           unit,
		Overhang:       units.FromMeters(runDefaults.Overhang, unit),
		HeightRatio:    runDefaults.HeightRatio,
		SideExtension:  units.FromMeters(runDefaults.SideExtension, unit),
		FlatRise:       units.FromMeters(runDefaults.FlatRise, unit),
	}
	if pitch, ok, err := num("pitch"); err != nil {
		return nil, err
	} else if ok {
		cfg.Pitch = roof.PitchSpec{AngleDegrees: pitch}
	}

	r, err := roof.New(t, cfg)
	if err != nil {
		return nil, fmt.Errorf("sub-roof %q: %w", name, err)
	}

	section := length
	if v, ok, err := num("section"); err != nil {
		return nil, err
	} else if ok {
		section = v
	}

	return roof.NewSubRoof(name, r, edge,
		units.Dimension{Value: section, Unit: unit},
		units.Dimension{Value: width, Unit: unit})
}
