package frame

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jomsey/roof-calc/internal/roof"
	"github.com/jomsey/roof-calc/internal/units"
)

func buildRoof(t *testing.T, rt roof.Type, length, width float64) *roof.RoofBase {
	t.Helper()
	cfg := roof.Config{
		BuildingLength: length,
		BuildingWidth:  width,
		Unit:           units.Meter,
	}
	if rt == roof.Gable {
		cfg.Pitch = roof.PitchSpec{AngleDegrees: 30}
	}
	r, err := roof.New(rt, cfg)
	require.NoError(t, err)
	return r
}

func metersSpec(t *testing.T, truss, purlin float64) Spec {
	t.Helper()
	s, err := NewSpec(
		units.Dimension{Value: truss, Unit: units.Meter},
		units.Dimension{Value: purlin, Unit: units.Meter})
	require.NoError(t, err)
	return s
}

func TestTrussCountTenMeterSpan(t *testing.T) {
	r := buildRoof(t, roof.Gable, 10, 8)
	res, err := Estimate(r, metersSpec(t, 0.6, 0.54))
	require.NoError(t, err)

	// ceil(10 / 0.6) + 1 closing truss.
	assert.Equal(t, 18, res.Trusses)
	assert.Equal(t, 36, res.Rafters)
	assert.Equal(t, 18, res.TieBeams)
}

func TestPurlinCountGable(t *testing.T) {
	r := buildRoof(t, roof.Gable, 10, 8)
	res, err := Estimate(r, metersSpec(t, 0.6, 0.54))
	require.NoError(t, err)

	slope := r.Geometry().SlopeLength
	want := int(math.Ceil(slope/0.54)) * 2
	assert.Equal(t, want, res.Purlins)
}

func TestPurlinPlanesByType(t *testing.T) {
	spec := metersSpec(t, 0.6, 0.54)

	hip, err := Estimate(buildRoof(t, roof.Hip, 12, 8), spec)
	require.NoError(t, err)
	gable, err := Estimate(buildRoof(t, roof.Gable, 12, 8), spec)
	require.NoError(t, err)

	hipRows := int(math.Ceil(buildRoof(t, roof.Hip, 12, 8).Geometry().SlopeLength / 0.54))
	assert.Equal(t, 4*hipRows, hip.Purlins)

	gableRows := int(math.Ceil(buildRoof(t, roof.Gable, 12, 8).Geometry().SlopeLength / 0.54))
	assert.Equal(t, 2*gableRows, gable.Purlins)
}

func TestFlatRoofMembers(t *testing.T) {
	r := buildRoof(t, roof.Flat, 10, 8)
	res, err := Estimate(r, metersSpec(t, 0.6, 0.54))
	require.NoError(t, err)

	assert.Equal(t, res.Trusses, res.Rafters)
	assert.Zero(t, res.TieBeams)
}

func TestSpacingValidation(t *testing.T) {
	zero := units.Dimension{Value: 0, Unit: units.Meter}
	ok := units.Dimension{Value: 0.6, Unit: units.Meter}

	_, err := NewSpec(zero, ok)
	assert.ErrorIs(t, err, roof.ErrInvalidSpacing)

	_, err = NewSpec(ok, units.Dimension{Value: -0.5, Unit: units.Meter})
	assert.ErrorIs(t, err, roof.ErrInvalidSpacing)

	// Positive but wider than the span: rejected at estimate time.
	r := buildRoof(t, roof.Gable, 4, 3)
	_, err = Estimate(r, Spec{TrussSpacing: 5, PurlinSpacing: 0.54})
	assert.ErrorIs(t, err, roof.ErrInvalidSpacing)
}

func TestEstimateAggregateSums(t *testing.T) {
	main := buildRoof(t, roof.Hip, 15, 10)
	subBase := buildRoof(t, roof.Gable, 4, 3)
	sub, err := roof.NewSubRoof("porch", subBase, roof.EdgeFront,
		units.Dimension{Value: 4, Unit: units.Meter},
		units.Dimension{Value: 3, Unit: units.Meter})
	require.NoError(t, err)
	agg := roof.NewAggregate(main, sub)

	spec := metersSpec(t, 0.6, 0.54)
	total, err := EstimateAggregate(agg, spec)
	require.NoError(t, err)

	mainRes, err := Estimate(main, spec)
	require.NoError(t, err)
	subRes, err := Estimate(subBase, spec)
	require.NoError(t, err)

	assert.Equal(t, mainRes.Trusses+subRes.Trusses, total.Trusses)
	assert.Equal(t, mainRes.Purlins+subRes.Purlins, total.Purlins)
}

func TestHipDetailLengths(t *testing.T) {
	r := buildRoof(t, roof.Hip, 12, 8)
	d := EstimateDetail(r, metersSpec(t, 0.6, 0.54))

	corner := math.Hypot(4, 4)
	assert.InDelta(t, corner, d.CornerTieBeamLength, 1e-9)
	assert.InDelta(t, 8.0, d.CommonTieBeamLength, 1e-9)

	wantHip := math.Hypot(corner, r.Rise()) + math.Hypot(r.Overhang(), r.Overhang())
	assert.InDelta(t, wantHip, d.HipRafterLength, 1e-9)

	// Jack rafters at 0.6m intervals short of the 4m half-width.
	assert.Len(t, d.JackRafterLengths, 6)
	assert.Len(t, d.JackTieBeamLengths, 6)
	for i := 1; i < len(d.JackRafterLengths); i++ {
		assert.Greater(t, d.JackRafterLengths[i], d.JackRafterLengths[i-1])
	}
}

func TestDetailEmptyForNonHip(t *testing.T) {
	d := EstimateDetail(buildRoof(t, roof.Gable, 12, 8), metersSpec(t, 0.6, 0.54))
	assert.Zero(t, d.HipRafterLength)
	assert.Empty(t, d.JackRafterLengths)
}

func TestPurlinRowsTaperOnHip(t *testing.T) {
	spec := metersSpec(t, 0.6, 0.54)

	hip := buildRoof(t, roof.Hip, 12, 8)
	rows := PurlinRows(hip, spec)
	require.NotEmpty(t, rows)
	assert.InDelta(t, hip.Width()+2*hip.Overhang(), rows[0], 1e-9)
	for i := 1; i < len(rows); i++ {
		assert.Less(t, rows[i], rows[i-1])
	}

	gable := buildRoof(t, roof.Gable, 12, 8)
	gRows := PurlinRows(gable, spec)
	require.NotEmpty(t, gRows)
	want := gable.Length() + 2*gable.SideExtension()
	for _, row := range gRows {
		assert.InDelta(t, want, row, 1e-9)
	}
}
