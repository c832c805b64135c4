// Package units handles linear measurement units and their conversion to
// the canonical base unit (meters) used by all geometry calculations.
package units

import "fmt"

// Unit is a supported linear measurement unit.
type Unit string

const (
	Millimeter Unit = "mm"
	Centimeter Unit = "cm"
	Meter      Unit = "m"
)

// metersPer maps each unit to its length in meters.
var metersPer = map[Unit]float64{
	Millimeter: 0.001,
	Centimeter: 0.01,
	Meter:      1.0,
}

// Parse returns the Unit for a flag value such as "mm", "cm" or "m".
func Parse(s string) (Unit, error) {
	u := Unit(s)
	if _, ok := metersPer[u]; !ok {
		return "", fmt.Errorf("unknown unit %q (expected mm, cm or m)", s)
	}
	return u, nil
}

// Valid reports whether u is a recognized unit.
func Valid(u Unit) bool {
	_, ok := metersPer[u]
	return ok
}

// Convert converts value from one unit to another.
func Convert(value float64, from, to Unit) float64 {
	return value * metersPer[from] / metersPer[to]
}

// ToMeters converts value expressed in u to meters.
func ToMeters(value float64, u Unit) float64 {
	return value * metersPer[u]
}

// FromMeters converts a value in meters to u.
func FromMeters(value float64, u Unit) float64 {
	return value / metersPer[u]
}

// AreaFromSquareMeters converts an area in m² to squared u.
func AreaFromSquareMeters(area float64, u Unit) float64 {
	f := metersPer[u]
	return area / (f * f)
}

// String returns the display string for the unit ("m").
func (u Unit) String() string { return string(u) }

// AreaString returns the display string for the squared unit ("m²").
func (u Unit) AreaString() string { return string(u) + "²" }

// Dimension is a length value tagged with its unit.
type Dimension struct {
	Value float64
	Unit  Unit
}

// Meters returns the dimension expressed in meters.
func (d Dimension) Meters() float64 {
	return ToMeters(d.Value, d.Unit)
}

func (d Dimension) String() string {
	return fmt.Sprintf("%g%s", d.Value, d.Unit)
}
