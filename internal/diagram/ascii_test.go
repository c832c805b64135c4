package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawASCIISectionPitched(t *testing.T) {
	out := DrawASCIISection(SectionData{
		RoofType:      "GABLE",
		Span:          8,
		Rise:          2.3,
		Overhang:      0.6,
		SlopeLength:   5.31,
		PitchAngleDeg: 30,
		RidgeLength:   10,
	})

	assert.Contains(t, out, "ROOF SECTION")
	assert.Contains(t, out, "^")
	assert.Contains(t, out, "/")
	assert.Contains(t, out, "\\")
	assert.Contains(t, out, "span 8.00m")
	assert.Contains(t, out, "ridge 10.00m")
}

func TestDrawASCIISectionFlat(t *testing.T) {
	out := DrawASCIISection(SectionData{
		RoofType:      "FLAT",
		Span:          4,
		Rise:          0.1,
		Overhang:      0.6,
		SlopeLength:   4.0,
		PitchAngleDeg: 1.4,
		Flat:          true,
	})

	assert.Contains(t, out, "no ridge")
	assert.NotContains(t, out, "^")
	assert.Contains(t, out, "_")
}

func TestDrawPurlinTaper(t *testing.T) {
	rows := []float64{9.2, 7.8, 6.4, 5.0, 3.6, 2.2, 0.8}
	out := DrawPurlinTaper(rows)
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "purlin row length")
	assert.Greater(t, strings.Count(out, "\n"), 5)

	assert.Empty(t, DrawPurlinTaper(nil))
	assert.Empty(t, DrawPurlinTaper([]float64{3.0}))
}
