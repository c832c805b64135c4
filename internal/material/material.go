// Package material converts roof areas and ridge lengths into purchase
// quantities: sheet covers, ridge covers and nail mass.
package material

import (
	"fmt"
	"math"

	"github.com/jomsey/roof-calc/internal/defaults"
	"github.com/jomsey/roof-calc/internal/roof"
	"github.com/jomsey/roof-calc/internal/units"
)

// SheetCover describes one roofing sheet, in meters.
type SheetCover struct {
	Width  float64
	Length float64
}

// NewSheetCover validates the sheet dimensions.
func NewSheetCover(width, length units.Dimension) (SheetCover, error) {
	w := width.Meters()
	l := length.Meters()
	if w <= 0 {
		return SheetCover{}, fmt.Errorf("%w: sheet width must be positive (got %s)", roof.ErrInvalidDimension, width)
	}
	if l <= 0 {
		return SheetCover{}, fmt.Errorf("%w: sheet length must be positive (got %s)", roof.ErrInvalidDimension, length)
	}
	return SheetCover{Width: w, Length: l}, nil
}

// Area returns the cover area of one sheet in m².
func (s SheetCover) Area() float64 { return s.Width * s.Length }

// Request carries the material inputs beyond the sheet itself.
type Request struct {
	WastePercent     float64 // fractional, e.g. 0.1 for 10%
	NailUsagePerSqm  float64 // kg per m²
	RidgeCoverLength float64 // meters per ridge cover piece
}

// NewRequest validates the request, filling zero optional fields with
// the standard defaults.
func NewRequest(wastePercent, nailUsagePerSqm, ridgeCoverLength float64) (Request, error) {
	if wastePercent < 0 {
		return Request{}, fmt.Errorf("%w: waste_percent must not be negative (got %g)", roof.ErrInvalidWasteFactor, wastePercent)
	}
	if wastePercent >= 1 {
		return Request{}, fmt.Errorf("%w: waste_percent must be below 1 (got %g)", roof.ErrInvalidWasteFactor, wastePercent)
	}
	if nailUsagePerSqm < 0 {
		return Request{}, fmt.Errorf("%w: nail_usage_per_sqm must not be negative (got %g)", roof.ErrInvalidConfiguration, nailUsagePerSqm)
	}
	if nailUsagePerSqm == 0 {
		nailUsagePerSqm = defaults.NailUsagePerSqm
	}
	if ridgeCoverLength < 0 {
		return Request{}, fmt.Errorf("%w: ridge_cover_length must be positive (got %g)", roof.ErrInvalidDimension, ridgeCoverLength)
	}
	if ridgeCoverLength == 0 {
		ridgeCoverLength = defaults.RidgeCoverLength
	}
	return Request{
		WastePercent:     wastePercent,
		NailUsagePerSqm:  nailUsagePerSqm,
		RidgeCoverLength: ridgeCoverLength,
	}, nil
}

// Result holds the derived material quantities.
type Result struct {
	SheetCovers   int     `json:"sheet_covers_count"`
	RidgeCovers   int     `json:"ridge_covers_count"`
	NailsKg       float64 `json:"nails_kg"`
	EffectiveArea float64 `json:"effective_area"` // m², waste applied
}

// Estimate computes material quantities for a computed geometry.
func Estimate(g *roof.Geometry, sheet SheetCover, req Request) Result {
	return estimate(g.SurfaceArea, g.RidgeLength, g.RidgeCount, sheet, req)
}

// EstimateAggregate computes material quantities for a whole assembly,
// using the overlap-corrected collective area and ridge totals.
func EstimateAggregate(a *roof.Aggregate, sheet SheetCover, req Request) (Result, error) {
	area, err := a.CollectiveArea()
	if err != nil {
		return Result{}, err
	}
	return estimate(area, a.CollectiveRidgeLength(), a.CollectiveRidgeCount(), sheet, req), nil
}

func estimate(area, ridge float64, ridgeCount int, sheet SheetCover, req Request) Result {
	effective := area * (1 + req.WastePercent)
	sheets := int(math.Ceil(effective / sheet.Area()))

	ridgeCovers := 0
	if ridgeCount > 0 {
		ridgeCovers = int(math.Ceil(ridge / req.RidgeCoverLength))
	}

	return Result{
		SheetCovers:   sheets,
		RidgeCovers:   ridgeCovers,
		NailsKg:       area * req.NailUsagePerSqm,
		EffectiveArea: effective,
	}
}
