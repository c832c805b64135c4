// Package frame derives timber quantities (trusses, purlins, rafters,
// tie beams) from roof geometry and spacing rules.
package frame

import (
	"fmt"
	"math"

	"github.com/jomsey/roof-calc/internal/defaults"
	"github.com/jomsey/roof-calc/internal/roof"
	"github.com/jomsey/roof-calc/internal/units"
)

// Spec carries the user-supplied frame spacings, in meters.
type Spec struct {
	TrussSpacing  float64
	PurlinSpacing float64
}

// NewSpec validates the spacings. Positivity is checked here; the
// spacing-vs-span bound depends on the roof and is checked by Estimate.
func NewSpec(trussSpacing, purlinSpacing units.Dimension) (Spec, error) {
	ts := trussSpacing.Meters()
	ps := purlinSpacing.Meters()
	if ts <= 0 {
		return Spec{}, fmt.Errorf("%w: truss_spacing must be positive (got %s)", roof.ErrInvalidSpacing, trussSpacing)
	}
	if ps <= 0 {
		return Spec{}, fmt.Errorf("%w: purlin_spacing must be positive (got %s)", roof.ErrInvalidSpacing, purlinSpacing)
	}
	return Spec{TrussSpacing: ts, PurlinSpacing: ps}, nil
}

// Result holds the derived member counts.
type Result struct {
	Trusses  int `json:"trusses_count"`
	Purlins  int `json:"purlins_count"`
	Rafters  int `json:"rafters_count"`
	TieBeams int `json:"tie_beams_count"`
}

// add merges counts, used when aggregating a main roof with sub-roofs.
func (r Result) add(o Result) Result {
	return Result{
		Trusses:  r.Trusses + o.Trusses,
		Purlins:  r.Purlins + o.Purlins,
		Rafters:  r.Rafters + o.Rafters,
		TieBeams: r.TieBeams + o.TieBeams,
	}
}

// Estimate computes member counts for a single roof. Trusses run across
// the width at intervals along the length, with one extra truss closing
// the far end. Purlins are spaced along the slope on each purlin plane.
func Estimate(r *roof.RoofBase, spec Spec) (Result, error) {
	span := r.Length()
	if spec.TrussSpacing > span {
		return Result{}, fmt.Errorf("%w: truss_spacing %.2fm exceeds span %.2fm", roof.ErrInvalidSpacing, spec.TrussSpacing, span)
	}
	if spec.PurlinSpacing > span {
		return Result{}, fmt.Errorf("%w: purlin_spacing %.2fm exceeds span %.2fm", roof.ErrInvalidSpacing, spec.PurlinSpacing, span)
	}

	g := r.Geometry()
	trusses := int(math.Ceil(span/spec.TrussSpacing)) + 1
	purlins := int(math.Ceil(g.SlopeLength/spec.PurlinSpacing)) * purlinPlanes(r.Type())

	rafters := trusses * defaults.RaftersPerTruss
	tieBeams := trusses
	if r.Type() == roof.Flat {
		// Single slope: one rafter run per truss position, no ridge to tie.
		rafters = trusses
		tieBeams = 0
	}

	return Result{
		Trusses:  trusses,
		Purlins:  purlins,
		Rafters:  rafters,
		TieBeams: tieBeams,
	}, nil
}

// purlinPlanes is the number of purlin row sets per roof type. A flat
// roof carries doubled rows on its single plane.
func purlinPlanes(t roof.Type) int {
	if t == roof.Hip {
		return 4
	}
	return 2
}

// EstimateAggregate sums member counts over the main roof and every
// attached sub-roof, each estimated from its own geometry.
func EstimateAggregate(a *roof.Aggregate, spec Spec) (Result, error) {
	var total Result
	var firstErr error
	a.Walk(func(r *roof.RoofBase, _ *roof.SubRoof) {
		if firstErr != nil {
			return
		}
		res, err := Estimate(r, spec)
		if err != nil {
			firstErr = err
			return
		}
		total = total.add(res)
	})
	if firstErr != nil {
		return Result{}, firstErr
	}
	return total, nil
}
