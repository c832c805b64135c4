package roof

import "math"

// Geometry is the derived, read-only geometry of a roof. All lengths are
// meters, areas square meters.
type Geometry struct {
	SlopeLength   float64   `json:"slope_length"`
	PitchAngleDeg float64   `json:"pitch_angle_degrees"`
	SurfaceArea   float64   `json:"surface_area"`
	RidgeLength   float64   `json:"ridge_length"`
	RidgeCount    int       `json:"number_of_ridges"`
	Planes        int       `json:"planes"`
	EaveLengths   []float64 `json:"eave_lengths"`
	ValleyLengths []float64 `json:"valley_lengths,omitempty"`
}

// Geometry computes the roof geometry on first call and returns the
// cached result afterwards. Safe because RoofBase is immutable.
func (r *RoofBase) Geometry() *Geometry {
	r.geomOnce.Do(func() {
		r.geom = r.compute()
	})
	return r.geom
}

func (r *RoofBase) compute() *Geometry {
	switch r.roofType {
	case Gable:
		return r.computeGable()
	case Hip:
		return r.computeHip()
	default:
		return r.computeFlat()
	}
}

func (r *RoofBase) computeGable() *Geometry {
	slope := (r.width/2 + r.overhang) / math.Cos(r.pitchAngle)
	eave := r.length + 2*r.sideExtension
	return &Geometry{
		SlopeLength:   slope,
		PitchAngleDeg: r.PitchAngleDegrees(),
		SurfaceArea:   2 * slope * eave,
		RidgeLength:   r.length,
		RidgeCount:    1,
		Planes:        2,
		EaveLengths:   []float64{eave, eave},
	}
}

func (r *RoofBase) computeHip() *Geometry {
	// Equal-pitch hip: the hip end consumes half a building width of
	// ridge at each end, reaching a pyramidal roof on square footprints.
	ridge := math.Max(0, r.length-r.width)
	slope := math.Hypot(r.rise, r.width/2) + r.overhang

	eaveLong := r.length + 2*r.overhang
	eaveShort := r.width + 2*r.overhang

	trapezoids := (eaveLong + ridge) / 2 * slope * 2
	triangles := eaveShort * slope / 2 * 2

	// Hip rafter running along each of the four corner valleys.
	hipRafter := math.Hypot(math.Hypot(r.width/2, r.width/2), r.rise) +
		math.Hypot(r.overhang, r.overhang)

	ridgeCount := 1
	if ridge == 0 {
		ridgeCount = 0
	}

	return &Geometry{
		SlopeLength:   slope,
		PitchAngleDeg: r.PitchAngleDegrees(),
		SurfaceArea:   trapezoids + triangles,
		RidgeLength:   ridge,
		RidgeCount:    ridgeCount,
		Planes:        4,
		EaveLengths:   []float64{eaveLong, eaveLong, eaveShort, eaveShort},
		ValleyLengths: []float64{hipRafter, hipRafter, hipRafter, hipRafter},
	}
}

func (r *RoofBase) computeFlat() *Geometry {
	slope := math.Hypot(r.width, r.rise)
	eave := r.length + 2*r.overhang
	return &Geometry{
		SlopeLength:   slope,
		PitchAngleDeg: r.PitchAngleDegrees(),
		SurfaceArea:   slope * eave,
		RidgeLength:   0,
		RidgeCount:    0,
		Planes:        1,
		EaveLengths:   []float64{eave, eave},
	}
}
