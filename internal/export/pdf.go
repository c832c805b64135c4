// Package export writes roof estimate reports to file formats.
package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/jomsey/roof-calc/internal/frame"
	"github.com/jomsey/roof-calc/internal/material"
	"github.com/jomsey/roof-calc/internal/roof"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth   = 210.0
	marginLeft  = 18.0
	marginRight = 18.0
	marginTop   = 18.0
	rowHeight   = 7.0
	labelWidth  = 80.0
)

// Report bundles the figures that go into a PDF estimate.
type Report struct {
	RoofType   roof.Type
	Geometry   *roof.Geometry
	Frame      *frame.Result
	Materials  *material.Result
	SubRoofs   []SubRoofRow
	Collective *CollectiveRow
}

// SubRoofRow is one attached sub-roof line in the report.
type SubRoofRow struct {
	Name    string
	Edge    string
	Area    float64
	Overlap float64
}

// CollectiveRow holds the overlap-corrected assembly totals.
type CollectiveRow struct {
	Area         float64
	RidgeLength  float64
	ValleyLength float64
}

// WritePDF generates the estimate report at path.
func WritePDF(path string, r Report) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginTop)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10,
		fmt.Sprintf("%s Roof Material Estimate", r.RoofType), "", 1, "L", false, 0, "")

	writeSection(pdf, "GEOMETRY", [][2]string{
		{"Surface area", fmt.Sprintf("%.2f m\xb2", r.Geometry.SurfaceArea)},
		{"Slope length", fmt.Sprintf("%.2f m", r.Geometry.SlopeLength)},
		{"Pitch angle", fmt.Sprintf("%.1f\xb0", r.Geometry.PitchAngleDeg)},
		{"Ridge length", fmt.Sprintf("%.2f m", r.Geometry.RidgeLength)},
		{"Ridges", fmt.Sprintf("%d", r.Geometry.RidgeCount)},
	})

	if r.Frame != nil {
		writeSection(pdf, "FRAME", [][2]string{
			{"Trusses", fmt.Sprintf("%d", r.Frame.Trusses)},
			{"Purlins", fmt.Sprintf("%d", r.Frame.Purlins)},
			{"Rafters", fmt.Sprintf("%d", r.Frame.Rafters)},
			{"Tie beams", fmt.Sprintf("%d", r.Frame.TieBeams)},
		})
	}

	if r.Materials != nil {
		writeSection(pdf, "MATERIALS", [][2]string{
			{"Sheet covers", fmt.Sprintf("%d", r.Materials.SheetCovers)},
			{"Ridge covers", fmt.Sprintf("%d", r.Materials.RidgeCovers)},
			{"Nails", fmt.Sprintf("%.2f kg", r.Materials.NailsKg)},
			{"Effective area (waste applied)", fmt.Sprintf("%.2f m\xb2", r.Materials.EffectiveArea)},
		})
	}

	if len(r.SubRoofs) > 0 {
		rows := make([][2]string, 0, len(r.SubRoofs))
		for _, s := range r.SubRoofs {
			rows = append(rows, [2]string{
				fmt.Sprintf("%s (%s edge)", s.Name, s.Edge),
				fmt.Sprintf("area %.2f m\xb2, overlap %.2f m\xb2", s.Area, s.Overlap),
			})
		}
		writeSection(pdf, "SUB-ROOFS", rows)
	}

	if r.Collective != nil {
		writeSection(pdf, "COLLECTIVE TOTALS", [][2]string{
			{"Collective area", fmt.Sprintf("%.2f m\xb2", r.Collective.Area)},
			{"Collective ridge length", fmt.Sprintf("%.2f m", r.Collective.RidgeLength)},
			{"Collective valley length", fmt.Sprintf("%.2f m", r.Collective.ValleyLength)},
		})
	}

	return pdf.OutputFileAndClose(path)
}

// writeSection renders a titled label/value table.
func writeSection(pdf *fpdf.Fpdf, title string, rows [][2]string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetX(marginLeft)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, rowHeight, title, "B", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.SetX(marginLeft)
		pdf.CellFormat(labelWidth, rowHeight, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(pageWidth-marginLeft-marginRight-labelWidth, rowHeight, row[1], "", 1, "L", false, 0, "")
	}
}
