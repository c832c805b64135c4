// Package diagram renders roof cross-sections as ASCII art, purlin
// taper charts, and exportable section images.
package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// SectionData holds the dimensions needed to draw a roof cross-section.
// Lengths in meters.
type SectionData struct {
	RoofType      string
	Span          float64 // building width
	Rise          float64
	Overhang      float64
	SlopeLength   float64
	PitchAngleDeg float64
	RidgeLength   float64
	Flat          bool // single-slope section
}

// DrawASCIISection creates an ASCII cross-section of the roof, looking
// along the ridge.
func DrawASCIISection(data SectionData) string {
	var sb strings.Builder

	widthChars := 40
	heightChars := int(data.Rise / (data.Span / 2) * float64(widthChars) / 4)
	if heightChars < 2 {
		heightChars = 2
	}
	if heightChars > 14 {
		heightChars = 14
	}

	sb.WriteString("\n")
	sb.WriteString("  ROOF SECTION\n")
	sb.WriteString("  ────────────\n")

	if data.Flat {
		drawFlatSection(&sb, widthChars, heightChars)
	} else {
		drawPitchedSection(&sb, widthChars, heightChars)
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  span %.2fm   rise %.2fm   pitch %.1f°   slope %.2fm\n",
		data.Span, data.Rise, data.PitchAngleDeg, data.SlopeLength))
	if data.RidgeLength > 0 {
		sb.WriteString(fmt.Sprintf("  ridge %.2fm   overhang %.2fm\n", data.RidgeLength, data.Overhang))
	} else {
		sb.WriteString(fmt.Sprintf("  no ridge   overhang %.2fm\n", data.Overhang))
	}
	return sb.String()
}

// drawPitchedSection draws two slopes meeting at an apex over the walls.
func drawPitchedSection(sb *strings.Builder, widthChars, heightChars int) {
	mid := widthChars / 2
	for row := 0; row < heightChars; row++ {
		// Horizontal distance from the apex grows with each row down.
		offset := (row * mid) / heightChars
		left := mid - offset
		right := mid + offset
		line := make([]byte, widthChars+1)
		for i := range line {
			line[i] = ' '
		}
		if row == 0 {
			line[mid] = '^'
		} else {
			line[left] = '/'
			line[right] = '\\'
		}
		sb.WriteString("  " + strings.TrimRight(string(line), " ") + "\n")
	}
	base := "/" + strings.Repeat("_", widthChars-1) + "\\"
	sb.WriteString("  " + base + "\n")
	wall := " |" + strings.Repeat(" ", widthChars-3) + "|"
	sb.WriteString("  " + wall + "\n")
	sb.WriteString("  " + wall + "\n")
}

// drawFlatSection draws a single shallow slope over the walls.
func drawFlatSection(sb *strings.Builder, widthChars, heightChars int) {
	if heightChars > 4 {
		heightChars = 4
	}
	for row := 0; row < heightChars; row++ {
		// One slope from the high left edge down to the right eave.
		segment := widthChars / heightChars
		start := row * segment
		line := strings.Repeat(" ", start) + strings.Repeat("_", segment)
		sb.WriteString("  " + line + "\n")
	}
	wall := "|" + strings.Repeat(" ", widthChars-2) + "|"
	sb.WriteString("  " + wall + "\n")
	sb.WriteString("  " + wall + "\n")
}

// DrawPurlinTaper charts the purlin row lengths from eave to ridge.
// Constant rows plot as a flat line; hip end faces taper to zero.
func DrawPurlinTaper(rows []float64) string {
	if len(rows) < 2 {
		return ""
	}
	graph := asciigraph.Plot(rows,
		asciigraph.Height(8),
		asciigraph.Width(44),
		asciigraph.Caption("purlin row length (m), eave → ridge"),
	)
	return "\n" + graph + "\n"
}
