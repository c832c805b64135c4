// Package defaults holds the standard construction values used when the
// caller does not supply their own. All lengths are in meters.
package defaults

const (
	// Overhang is the default roof overhang beyond the walls.
	Overhang = 0.6

	// HeightRatio is the default width-to-rise ratio for hip roofs
	// (width / HeightRatio gives the vertical rise).
	HeightRatio = 3.0

	// SideExtension is the default gable end extension past the wall.
	SideExtension = 0.3

	// FlatRise is the default drainage rise for flat roofs. Kept nonzero
	// so a flat roof always retains a drainage slope.
	FlatRise = 0.1

	// RidgeCoverLength is the length of a single ridge cover piece.
	RidgeCoverLength = 1.8

	// SheetLength and SheetWidth describe a standard iron sheet.
	SheetLength = 2.5
	SheetWidth  = 1.0

	// WastePercent is the fractional cutting/waste allowance.
	WastePercent = 0.10

	// NailUsagePerSqm is the nail mass consumed per square meter of roof.
	NailUsagePerSqm = 0.05

	// TrussSpacing and PurlinSpacing are the standard frame spacings.
	TrussSpacing  = 0.6
	PurlinSpacing = 0.54

	// RaftersPerTruss is the number of slope rafters meeting at the
	// ridge per truss position on pitched roofs.
	RaftersPerTruss = 2
)
