package roof

import "errors"

// Validation error kinds. All user input is validated when a RoofBase,
// SubRoof, frame spec or sheet cover is constructed; computations further
// down assume validated inputs.
var (
	// ErrInvalidDimension reports a non-positive length or width.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrInvalidPitch reports a pitch outside the open interval (0°, 90°).
	ErrInvalidPitch = errors.New("invalid pitch")

	// ErrInvalidSpacing reports a truss or purlin spacing that is not
	// positive or exceeds the span it subdivides.
	ErrInvalidSpacing = errors.New("invalid spacing")

	// ErrInvalidWasteFactor reports a negative waste allowance.
	ErrInvalidWasteFactor = errors.New("invalid waste factor")

	// ErrInvalidConfiguration reports an unknown roof type, unit or a
	// missing required field for the requested roof type.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrOverlapExceedsFootprint reports a computed overlap larger than
	// the sub-roof's own area. This is an internal geometry
	// inconsistency between the declared section footprint and the
	// sub-roof dimensions, not a user input error.
	ErrOverlapExceedsFootprint = errors.New("overlap exceeds sub-roof footprint")
)
