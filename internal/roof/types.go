// Package roof models hip, gable and flat roofs: their geometry (areas,
// slopes, ridge and valley lengths) and the composition of a main roof
// with attached sub-roofs into collective totals.
package roof

import (
	"fmt"
	"math"
	"sync"

	"github.com/jomsey/roof-calc/internal/defaults"
	"github.com/jomsey/roof-calc/internal/units"
)

// Type identifies the roof shape.
type Type string

const (
	Hip   Type = "HIP"
	Gable Type = "GABLE"
	Flat  Type = "FLAT"
)

// ParseType resolves a roof type tag such as "hip" or "GABLE".
func ParseType(s string) (Type, error) {
	switch Type(normalizeType(s)) {
	case Hip:
		return Hip, nil
	case Gable:
		return Gable, nil
	case Flat:
		return Flat, nil
	}
	return "", fmt.Errorf("%w: unknown roof type %q", ErrInvalidConfiguration, s)
}

func normalizeType(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

// PitchSpec expresses a roof pitch either as an angle in degrees or a
// rise:run ratio. Exactly one form should be populated; the ratio wins
// when both are set.
type PitchSpec struct {
	AngleDegrees float64
	Rise         float64
	Run          float64
}

// IsZero reports whether no pitch was supplied.
func (p PitchSpec) IsZero() bool {
	return p.AngleDegrees == 0 && p.Rise == 0 && p.Run == 0
}

// Angle resolves the pitch to radians, validating the (0°, 90°) bound.
func (p PitchSpec) Angle() (float64, error) {
	var deg float64
	switch {
	case p.Rise != 0 || p.Run != 0:
		if p.Rise <= 0 || p.Run <= 0 {
			return 0, fmt.Errorf("%w: rise and run must be positive (got %g:%g)", ErrInvalidPitch, p.Rise, p.Run)
		}
		deg = math.Atan(p.Rise/p.Run) * 180 / math.Pi
	default:
		deg = p.AngleDegrees
	}
	if deg <= 0 || deg >= 90 {
		return 0, fmt.Errorf("%w: pitch angle %.2f° outside (0°, 90°)", ErrInvalidPitch, deg)
	}
	return deg * math.Pi / 180, nil
}

// Config carries the construction inputs for a roof. Lengths are in the
// configured Unit. Zero-valued optional fields take the standard defaults.
type Config struct {
	BuildingLength float64
	BuildingWidth  float64
	Unit           units.Unit

	// Pitch applies to GABLE roofs; when empty the pitch is derived
	// from HeightRatio the way the hip pitch is.
	Pitch PitchSpec

	Overhang      float64
	SideExtension float64 // GABLE: gable end extension past the wall
	HeightRatio   float64 // HIP: building width divided by vertical rise
	FlatRise      float64 // FLAT: drainage rise
}

// RoofBase is an immutable, validated roof. All lengths are stored in
// meters; Unit records what the caller supplied for display purposes.
// Geometry is derived lazily and cached, which is safe because a RoofBase
// never changes after construction.
type RoofBase struct {
	roofType      Type
	length        float64
	width         float64
	overhang      float64
	sideExtension float64
	rise          float64
	pitchAngle    float64 // radians
	unit          units.Unit

	geomOnce sync.Once
	geom     *Geometry
}

// New validates cfg and builds a roof of the given type.
func New(t Type, cfg Config) (*RoofBase, error) {
	t, err := ParseType(string(t))
	if err != nil {
		return nil, err
	}
	unit := cfg.Unit
	if unit == "" {
		unit = units.Meter
	}
	if !units.Valid(unit) {
		return nil, fmt.Errorf("%w: unit %q", ErrInvalidConfiguration, cfg.Unit)
	}

	length := units.ToMeters(cfg.BuildingLength, unit)
	width := units.ToMeters(cfg.BuildingWidth, unit)
	if length <= 0 {
		return nil, fmt.Errorf("%w: building_length must be positive (got %g)", ErrInvalidDimension, cfg.BuildingLength)
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: building_width must be positive (got %g)", ErrInvalidDimension, cfg.BuildingWidth)
	}

	overhang := units.ToMeters(cfg.Overhang, unit)
	if cfg.Overhang == 0 {
		overhang = defaults.Overhang
	}
	if overhang < 0 {
		return nil, fmt.Errorf("%w: overhang must not be negative (got %g)", ErrInvalidDimension, cfg.Overhang)
	}

	r := &RoofBase{
		roofType: t,
		length:   length,
		width:    width,
		overhang: overhang,
		unit:     unit,
	}

	switch t {
	case Hip:
		ratio := cfg.HeightRatio
		if ratio == 0 {
			ratio = defaults.HeightRatio
		}
		if ratio <= 0 {
			return nil, fmt.Errorf("%w: height_ratio must be positive (got %g)", ErrInvalidConfiguration, cfg.HeightRatio)
		}
		r.rise = width / ratio
		r.pitchAngle = math.Atan(r.rise / (width / 2))

	case Gable:
		ext := units.ToMeters(cfg.SideExtension, unit)
		if cfg.SideExtension == 0 {
			ext = defaults.SideExtension
		}
		if ext < 0 {
			return nil, fmt.Errorf("%w: side_extension must not be negative (got %g)", ErrInvalidDimension, cfg.SideExtension)
		}
		r.sideExtension = ext

		pitch := cfg.Pitch
		if pitch.IsZero() {
			pitch = PitchSpec{Rise: width / defaults.HeightRatio, Run: width / 2}
		}
		angle, err := pitch.Angle()
		if err != nil {
			return nil, err
		}
		r.pitchAngle = angle
		r.rise = math.Tan(angle) * width / 2

	case Flat:
		rise := units.ToMeters(cfg.FlatRise, unit)
		if cfg.FlatRise == 0 {
			rise = defaults.FlatRise
		}
		if rise <= 0 {
			return nil, fmt.Errorf("%w: flat_roof_rise must be positive (got %g)", ErrInvalidDimension, cfg.FlatRise)
		}
		r.rise = rise
		r.pitchAngle = math.Atan(rise / width)
	}

	if r.pitchAngle <= 0 || r.pitchAngle >= math.Pi/2 {
		return nil, fmt.Errorf("%w: resolved pitch %.2f° outside (0°, 90°)", ErrInvalidPitch, r.pitchAngle*180/math.Pi)
	}

	return r, nil
}

// Type returns the roof shape tag.
func (r *RoofBase) Type() Type { return r.roofType }

// Length returns the building length in meters.
func (r *RoofBase) Length() float64 { return r.length }

// Width returns the building width in meters.
func (r *RoofBase) Width() float64 { return r.width }

// Overhang returns the roof overhang in meters.
func (r *RoofBase) Overhang() float64 { return r.overhang }

// SideExtension returns the gable end extension in meters (0 for other types).
func (r *RoofBase) SideExtension() float64 { return r.sideExtension }

// Rise returns the vertical rise of the roof in meters.
func (r *RoofBase) Rise() float64 { return r.rise }

// PitchAngle returns the resolved pitch in radians.
func (r *RoofBase) PitchAngle() float64 { return r.pitchAngle }

// PitchAngleDegrees returns the resolved pitch in degrees.
func (r *RoofBase) PitchAngleDegrees() float64 { return r.pitchAngle * 180 / math.Pi }

// Unit returns the unit the roof was declared in.
func (r *RoofBase) Unit() units.Unit { return r.unit }

func (r *RoofBase) String() string {
	return fmt.Sprintf("%s(length=%gm, width=%gm, pitch=%.1f°)",
		r.roofType, r.length, r.width, r.PitchAngleDegrees())
}
