package material

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jomsey/roof-calc/internal/roof"
	"github.com/jomsey/roof-calc/internal/units"
)

func standardSheet(t *testing.T) SheetCover {
	t.Helper()
	s, err := NewSheetCover(
		units.Dimension{Value: 1, Unit: units.Meter},
		units.Dimension{Value: 2.5, Unit: units.Meter})
	require.NoError(t, err)
	return s
}

func TestFlatRoofNeedsNoRidgeCovers(t *testing.T) {
	r, err := roof.New(roof.Flat, roof.Config{
		BuildingLength: 6,
		BuildingWidth:  4,
		Unit:           units.Meter,
	})
	require.NoError(t, err)

	req, err := NewRequest(0.10, 0, 0)
	require.NoError(t, err)

	res := Estimate(r.Geometry(), standardSheet(t), req)
	assert.Zero(t, res.RidgeCovers)
	assert.Positive(t, res.SheetCovers)
	assert.Positive(t, res.NailsKg)
}

func TestSheetCountCeiling(t *testing.T) {
	r, err := roof.New(roof.Gable, roof.Config{
		BuildingLength: 10,
		BuildingWidth:  8,
		Unit:           units.Meter,
		Pitch:          roof.PitchSpec{AngleDegrees: 30},
	})
	require.NoError(t, err)
	g := r.Geometry()

	req, err := NewRequest(0.10, 0, 0)
	require.NoError(t, err)
	sheet := standardSheet(t)

	res := Estimate(g, sheet, req)
	want := int(math.Ceil(g.SurfaceArea * 1.10 / sheet.Area()))
	assert.Equal(t, want, res.SheetCovers)
	assert.InDelta(t, g.SurfaceArea*1.10, res.EffectiveArea, 1e-9)
	assert.InDelta(t, g.SurfaceArea*0.05, res.NailsKg, 1e-9)
}

func TestRidgeCoversFromRidgeLength(t *testing.T) {
	r, err := roof.New(roof.Gable, roof.Config{
		BuildingLength: 10,
		BuildingWidth:  8,
		Unit:           units.Meter,
		Pitch:          roof.PitchSpec{AngleDegrees: 30},
	})
	require.NoError(t, err)

	req, err := NewRequest(0, 0, 1.8)
	require.NoError(t, err)

	res := Estimate(r.Geometry(), standardSheet(t), req)
	// Ridge runs the 10m building length; 1.8m pieces.
	assert.Equal(t, 6, res.RidgeCovers)
}

func TestWasteValidation(t *testing.T) {
	_, err := NewRequest(-0.1, 0, 0)
	assert.ErrorIs(t, err, roof.ErrInvalidWasteFactor)

	_, err = NewRequest(1.0, 0, 0)
	assert.ErrorIs(t, err, roof.ErrInvalidWasteFactor)

	req, err := NewRequest(0, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, req.WastePercent)
	assert.Equal(t, 0.05, req.NailUsagePerSqm)
	assert.Equal(t, 1.8, req.RidgeCoverLength)
}

func TestSheetValidation(t *testing.T) {
	_, err := NewSheetCover(
		units.Dimension{Value: 0, Unit: units.Meter},
		units.Dimension{Value: 2.5, Unit: units.Meter})
	assert.ErrorIs(t, err, roof.ErrInvalidDimension)

	_, err = NewSheetCover(
		units.Dimension{Value: 1, Unit: units.Meter},
		units.Dimension{Value: -2.5, Unit: units.Meter})
	assert.ErrorIs(t, err, roof.ErrInvalidDimension)
}

func TestEstimateAggregateUsesCollectiveTotals(t *testing.T) {
	main, err := roof.New(roof.Hip, roof.Config{
		BuildingLength: 15,
		BuildingWidth:  10,
		Unit:           units.Meter,
	})
	require.NoError(t, err)
	subBase, err := roof.New(roof.Gable, roof.Config{
		BuildingLength: 4,
		BuildingWidth:  3,
		Unit:           units.Meter,
		Pitch:          roof.PitchSpec{AngleDegrees: 30},
	})
	require.NoError(t, err)
	sub, err := roof.NewSubRoof("porch", subBase, roof.EdgeFront,
		units.Dimension{Value: 4, Unit: units.Meter},
		units.Dimension{Value: 3, Unit: units.Meter})
	require.NoError(t, err)
	agg := roof.NewAggregate(main, sub)

	req, err := NewRequest(0.10, 0, 0)
	require.NoError(t, err)
	sheet := standardSheet(t)

	res, err := EstimateAggregate(agg, sheet, req)
	require.NoError(t, err)

	area, err := agg.CollectiveArea()
	require.NoError(t, err)
	assert.InDelta(t, area*1.10, res.EffectiveArea, 1e-9)

	// The side-attached porch adds no ridge.
	mainOnly := Estimate(main.Geometry(), sheet, req)
	assert.Equal(t, mainOnly.RidgeCovers, res.RidgeCovers)
	assert.Greater(t, res.SheetCovers, mainOnly.SheetCovers)
}
