package frame

import (
	"math"

	"github.com/jomsey/roof-calc/internal/roof"
)

// Detail carries the cut lengths of the individual hip members, in
// meters. Nil slices and zero lengths mean the member does not occur on
// the roof type.
type Detail struct {
	HipRafterLength     float64
	CornerTieBeamLength float64
	CommonTieBeamLength float64
	JackRafterLengths   []float64
	JackTieBeamLengths  []float64
}

// EstimateDetail derives the member cut lengths for a roof. Only hip
// roofs carry corner members and jack rafters.
func EstimateDetail(r *roof.RoofBase, spec Spec) Detail {
	if r.Type() != roof.Hip {
		return Detail{}
	}

	half := r.Width() / 2
	corner := math.Hypot(half, half)
	hipRafter := math.Hypot(corner, r.Rise()) + math.Hypot(r.Overhang(), r.Overhang())

	d := Detail{
		HipRafterLength:     hipRafter,
		CornerTieBeamLength: corner,
		CommonTieBeamLength: r.Width(),
	}

	// Jack rafters land at each truss interval short of the hip corner.
	angle := r.PitchAngle()
	for run := spec.TrussSpacing; run < half; run += spec.TrussSpacing {
		d.JackRafterLengths = append(d.JackRafterLengths, run/math.Cos(angle))
		d.JackTieBeamLengths = append(d.JackTieBeamLengths, run*math.Cos(angle))
	}
	return d
}

// PurlinRows returns the purlin row lengths from eave to ridge on the
// roof's governing face: constant rows on gable and flat planes, a
// linear taper on the hip end triangle.
func PurlinRows(r *roof.RoofBase, spec Spec) []float64 {
	g := r.Geometry()
	slope := g.SlopeLength

	var rows []float64
	switch r.Type() {
	case roof.Hip:
		base := r.Width() + 2*r.Overhang()
		for s := 0.0; s < slope; s += spec.PurlinSpacing {
			rows = append(rows, base*(1-s/slope))
		}
	case roof.Gable:
		row := r.Length() + 2*r.SideExtension()
		for s := 0.0; s < slope; s += spec.PurlinSpacing {
			rows = append(rows, row)
		}
	default:
		row := r.Length() + 2*r.Overhang()
		for s := 0.0; s < slope; s += spec.PurlinSpacing {
			rows = append(rows, row)
		}
	}
	return rows
}
