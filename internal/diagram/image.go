package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ExportSection exports a roof cross-section diagram to an image file.
// The format is chosen from the file extension (png, svg, pdf).
func ExportSection(data SectionData, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s Roof Section", data.RoofType)
	p.X.Label.Text = "Span (m)"
	p.Y.Label.Text = "Height (m)"

	wallHeight := data.Span / 4

	// Wall outline
	walls := plotter.XYs{
		{X: 0, Y: 0},
		{X: 0, Y: wallHeight},
		{X: data.Span, Y: wallHeight},
		{X: data.Span, Y: 0},
	}
	wallLine, err := plotter.NewLine(walls)
	if err != nil {
		return err
	}
	wallLine.LineStyle.Width = vg.Points(1.5)
	wallLine.LineStyle.Color = color.Gray{Y: 100}
	p.Add(wallLine)

	// Roof outline
	var outline plotter.XYs
	if data.Flat {
		outline = plotter.XYs{
			{X: -data.Overhang, Y: wallHeight + data.Rise},
			{X: data.Span + data.Overhang, Y: wallHeight},
		}
	} else {
		outline = plotter.XYs{
			{X: -data.Overhang, Y: wallHeight - data.Rise*data.Overhang/(data.Span/2)},
			{X: data.Span / 2, Y: wallHeight + data.Rise},
			{X: data.Span + data.Overhang, Y: wallHeight - data.Rise*data.Overhang/(data.Span/2)},
		}
	}
	roofLine, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	roofLine.LineStyle.Width = vg.Points(2)
	roofLine.LineStyle.Color = color.Black
	p.Add(roofLine)

	// Ridge height reference line
	ridgeY := wallHeight + data.Rise
	refLine, err := plotter.NewLine(plotter.XYs{
		{X: -data.Overhang, Y: ridgeY},
		{X: data.Span + data.Overhang, Y: ridgeY},
	})
	if err != nil {
		return err
	}
	refLine.LineStyle.Width = vg.Points(1)
	refLine.LineStyle.Color = color.RGBA{R: 255, A: 255}
	refLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(refLine)

	// Annotations
	labels := []struct {
		x, y float64
		text string
	}{
		{data.Span + data.Overhang, ridgeY, fmt.Sprintf("rise=%.2fm", data.Rise)},
		{data.Span / 2, wallHeight / 2, fmt.Sprintf("span=%.2fm", data.Span)},
		{data.Span / 4, ridgeY, fmt.Sprintf("pitch=%.1f°", data.PitchAngleDeg)},
	}
	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
