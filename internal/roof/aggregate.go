package roof

import (
	"fmt"
	"math"
)

// Aggregate composes a main roof with attached sub-roofs. Collective
// totals subtract the overlap between each sub-roof and the plane it
// projects onto, so shared regions are counted exactly once. Nested
// sub-roofs are resolved depth-first.
type Aggregate struct {
	Main *RoofBase
	Subs []*SubRoof
}

// NewAggregate builds an aggregate over main with the given sub-roofs.
func NewAggregate(main *RoofBase, subs ...*SubRoof) *Aggregate {
	return &Aggregate{Main: main, Subs: subs}
}

// Attach adds a sub-roof to the main roof.
func (a *Aggregate) Attach(s *SubRoof) {
	a.Subs = append(a.Subs, s)
}

// Walk visits the main roof and every attached sub-roof depth-first.
// The sub argument is nil for the main roof.
func (a *Aggregate) Walk(fn func(r *RoofBase, sub *SubRoof)) {
	fn(a.Main, nil)
	var walk func(subs []*SubRoof)
	walk = func(subs []*SubRoof) {
		for _, s := range subs {
			fn(s.Roof, s)
			walk(s.Children)
		}
	}
	walk(a.Subs)
}

// OverlapArea computes the slope area shared between parent and the
// attached sub-roof. The planform footprint is clipped to the parent
// wall segment (overhang past the wall is accepted but not counted),
// projected onto the parent slope, and capped at the parent plane area
// over the segment. An overlap still exceeding the sub-roof's own area
// means the declared footprint contradicts the sub-roof dimensions.
func OverlapArea(parent *RoofBase, s *SubRoof) (float64, error) {
	wall := parent.Length()
	if s.Edge.isEnd() {
		wall = parent.Width()
	}
	clipped := math.Min(s.SectionLength, wall)

	slopeFactor := 1 / math.Cos(parent.PitchAngle())
	overlap := clipped * s.Width * slopeFactor

	// Parent plane area over the attachment segment.
	segment := clipped * parent.Geometry().SlopeLength
	if overlap > segment {
		overlap = segment
	}
	if main := parent.Geometry().SurfaceArea; overlap > main {
		overlap = main
	}

	subArea := s.Roof.Geometry().SurfaceArea
	if overlap > subArea {
		return 0, fmt.Errorf("%w: %s overlap %.2fm² > own area %.2fm²",
			ErrOverlapExceedsFootprint, s.Name, overlap, subArea)
	}
	return overlap, nil
}

// CollectiveArea returns the total slope area of the main roof and all
// sub-roofs with every overlap region counted once.
func (a *Aggregate) CollectiveArea() (float64, error) {
	return collectiveArea(a.Main, a.Subs)
}

func collectiveArea(r *RoofBase, subs []*SubRoof) (float64, error) {
	total := r.Geometry().SurfaceArea
	for _, s := range subs {
		subTotal, err := collectiveArea(s.Roof, s.Children)
		if err != nil {
			return 0, err
		}
		overlap, err := OverlapArea(r, s)
		if err != nil {
			return 0, err
		}
		total += subTotal - overlap
	}
	return total, nil
}

// CollectiveRidgeLength sums the main ridge with the ridges of sub-roofs
// whose ridge is structurally independent (attached on an end wall).
// Sub-roofs subsumed under a side slope contribute no ridge.
func (a *Aggregate) CollectiveRidgeLength() float64 {
	return collectiveRidge(a.Main.Geometry().RidgeLength, a.Subs)
}

func collectiveRidge(total float64, subs []*SubRoof) float64 {
	for _, s := range subs {
		own := 0.0
		if s.Edge.isEnd() {
			own = s.Roof.Geometry().RidgeLength
		}
		total = collectiveRidge(total+own, s.Children)
	}
	return total
}

// CollectiveRidgeCount counts the independent ridge runs.
func (a *Aggregate) CollectiveRidgeCount() int {
	count := a.Main.Geometry().RidgeCount
	a.Walk(func(r *RoofBase, sub *SubRoof) {
		if sub != nil && sub.Edge.isEnd() {
			count += r.Geometry().RidgeCount
		}
	})
	return count
}

// CollectiveValleyLength sums the valley runs of the whole assembly:
// the main roof's own valleys (hip corners) plus two valleys for every
// sub-roof whose ridge dies into a parent slope. Valley runs drive
// flashing and nail estimates.
func (a *Aggregate) CollectiveValleyLength() float64 {
	var total float64
	a.Walk(func(r *RoofBase, sub *SubRoof) {
		if sub == nil {
			for _, v := range r.Geometry().ValleyLengths {
				total += v
			}
			return
		}
		if !sub.Edge.isEnd() {
			total += 2 * valleyLength(sub)
		}
	})
	return total
}

// valleyLength is the corner hypotenuse where the sub-roof plane meets
// the parent plane.
func valleyLength(s *SubRoof) float64 {
	half := s.Roof.Width() / 2
	return math.Hypot(math.Hypot(half, half), s.Roof.Rise())
}
