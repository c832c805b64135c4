package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jomsey/roof-calc/internal/export"
	"github.com/jomsey/roof-calc/internal/frame"
	"github.com/jomsey/roof-calc/internal/material"
	"github.com/jomsey/roof-calc/internal/roof"
	"github.com/jomsey/roof-calc/internal/units"
)

var (
	estOpts roofOptions

	estTrussSpacing  float64
	estPurlinSpacing float64
	estJSON          bool
	estPDFFile       string
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Full estimate: geometry, frame and materials in one pass",
	Long: `Compute the complete material estimate for a roof: geometry, timber
frame counts and covering materials, including any attached sub-roofs
with overlap-corrected collective totals.

Examples:
  # Gable roof summary
  roofcalc estimate -t gable -l 10 -w 6 --pitch 30

  # Hip roof with an attached gable porch, JSON output
  roofcalc estimate -t hip -l 15 -w 10 \
    --sub "name=porch,type=gable,edge=front,length=4,width=3,pitch=30" --json

  # Write a PDF report
  roofcalc estimate -t hip -l 12 -w 8 --pdf estimate.pdf`,
	Run: runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)
	estOpts.register(estimateCmd)

	estimateCmd.Flags().Float64Var(&estTrussSpacing, "truss-spacing", 0, "Spacing between trusses (default from config)")
	estimateCmd.Flags().Float64Var(&estPurlinSpacing, "purlin-spacing", 0, "Spacing between purlin rows (default from config)")
	estimateCmd.Flags().Float64Var(&matSheetLength, "sheet-length", 0, "Sheet cover length (default from config)")
	estimateCmd.Flags().Float64Var(&matSheetWidth, "sheet-width", 0, "Sheet cover width (default from config)")
	estimateCmd.Flags().Float64Var(&matWaste, "waste", -1, "Fractional waste allowance, e.g. 0.1 for 10%")
	estimateCmd.Flags().Float64Var(&matNailUsage, "nail-usage", 0, "Nail mass per m² of roof (kg)")
	estimateCmd.Flags().Float64Var(&matRidgeCover, "ridge-cover-length", 0, "Length of one ridge cover piece (m)")
	estimateCmd.Flags().BoolVar(&estJSON, "json", false, "Output the estimate as JSON")
	estimateCmd.Flags().StringVar(&estPDFFile, "pdf", "", "Write the estimate report to a PDF file")
}

// estimateSummary is the machine-readable estimate document.
type estimateSummary struct {
	RoofType   string            `json:"roof_type"`
	Unit       string            `json:"unit"`
	Geometry   *roof.Geometry    `json:"geometry"`
	Frame      frame.Result      `json:"frame"`
	Materials  material.Result   `json:"materials"`
	SubRoofs   []subRoofSummary  `json:"sub_roofs,omitempty"`
	Collective *collectiveTotals `json:"collective,omitempty"`
}

type subRoofSummary struct {
	Name    string  `json:"name"`
	Edge    string  `json:"edge"`
	Area    float64 `json:"area"`
	Overlap float64 `json:"overlap"`
}

type collectiveTotals struct {
	Area         float64 `json:"area"`
	RidgeLength  float64 `json:"ridge_length"`
	ValleyLength float64 `json:"valley_length"`
}

func runEstimate(cmd *cobra.Command, args []string) {
	agg, err := estOpts.build()
	if err != nil {
		fail(err)
	}
	r := agg.Main
	g := r.Geometry()

	spec, err := frameSpec(r.Unit(), estTrussSpacing, estPurlinSpacing)
	if err != nil {
		fail(err)
	}
	sheet, req, err := materialInputs(r.Unit())
	if err != nil {
		fail(err)
	}

	frameResult, err := frame.EstimateAggregate(agg, spec)
	if err != nil {
		fail(err)
	}
	matResult, err := material.EstimateAggregate(agg, sheet, req)
	if err != nil {
		fail(err)
	}

	summary := estimateSummary{
		RoofType:  string(r.Type()),
		Unit:      string(r.Unit()),
		Geometry:  g,
		Frame:     frameResult,
		Materials: matResult,
	}

	if len(agg.Subs) > 0 {
		area, err := agg.CollectiveArea()
		if err != nil {
			fail(err)
		}
		summary.Collective = &collectiveTotals{
			Area:         area,
			RidgeLength:  agg.CollectiveRidgeLength(),
			ValleyLength: agg.CollectiveValleyLength(),
		}
		for _, s := range agg.Subs {
			overlap, err := roof.OverlapArea(r, s)
			if err != nil {
				fail(err)
			}
			summary.SubRoofs = append(summary.SubRoofs, subRoofSummary{
				Name:    s.Name,
				Edge:    string(s.Edge),
				Area:    s.Roof.Geometry().SurfaceArea,
				Overlap: overlap,
			})
		}
	}

	logger.Info("estimate complete",
		zap.String("roof", r.String()),
		zap.Int("sub_roofs", len(agg.Subs)),
		zap.Float64("area_sqm", g.SurfaceArea))

	if estJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			fail(err)
		}
	} else {
		printEstimate(r, summary)
	}

	if estPDFFile != "" {
		report := export.Report{
			RoofType:  r.Type(),
			Geometry:  g,
			Frame:     &summary.Frame,
			Materials: &summary.Materials,
		}
		for _, s := range summary.SubRoofs {
			report.SubRoofs = append(report.SubRoofs, export.SubRoofRow{
				Name:    s.Name,
				Edge:    s.Edge,
				Area:    s.Area,
				Overlap: s.Overlap,
			})
		}
		if summary.Collective != nil {
			report.Collective = &export.CollectiveRow{
				Area:         summary.Collective.Area,
				RidgeLength:  summary.Collective.RidgeLength,
				ValleyLength: summary.Collective.ValleyLength,
			}
		}
		if err := export.WritePDF(estPDFFile, report); err != nil {
			fmt.Printf("Error writing PDF report: %v\n", err)
		} else {
			fmt.Printf("Report written to: %s\n", estPDFFile)
		}
	}
}

func printEstimate(r *roof.RoofBase, s estimateSummary) {
	unit := r.Unit()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s ROOF ESTIMATE\n", s.RoofType)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Surface Area:\t%.2f %s\n", units.AreaFromSquareMeters(s.Geometry.SurfaceArea, unit), unit.AreaString())
	fmt.Fprintf(w, "  Slope Length:\t%.2f %s\n", units.FromMeters(s.Geometry.SlopeLength, unit), unit)
	fmt.Fprintf(w, "  Pitch Angle:\t%.2f°\n", s.Geometry.PitchAngleDeg)
	fmt.Fprintf(w, "  Ridge Length:\t%.2f %s\n", units.FromMeters(s.Geometry.RidgeLength, unit), unit)
	w.Flush()
	fmt.Println()

	printFrameCounts(s.Frame)
	printMaterialCounts(s.Materials)

	if len(s.SubRoofs) > 0 {
		fmt.Println("SUB-ROOFS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Name\tEdge\tArea\tOverlap\n")
		fmt.Fprintf(w, "  ────\t────\t────\t───────\n")
		for _, sub := range s.SubRoofs {
			fmt.Fprintf(w, "  %s\t%s\t%.2f m²\t%.2f m²\n", sub.Name, sub.Edge, sub.Area, sub.Overlap)
		}
		w.Flush()
		fmt.Println()
	}

	if s.Collective != nil {
		fmt.Println("COLLECTIVE TOTALS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Collective Area:\t%.2f m²\n", s.Collective.Area)
		fmt.Fprintf(w, "  Collective Ridge Length:\t%.2f m\n", s.Collective.RidgeLength)
		fmt.Fprintf(w, "  Collective Valley Length:\t%.2f m\n", s.Collective.ValleyLength)
		w.Flush()
		fmt.Println()
	}
}
