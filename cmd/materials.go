package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jomsey/roof-calc/internal/material"
	"github.com/jomsey/roof-calc/internal/units"
)

var (
	matOpts roofOptions

	matSheetLength float64
	matSheetWidth  float64
	matWaste       float64
	matNailUsage   float64
	matRidgeCover  float64
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "Estimate sheet covers, ridge covers and nail mass",
	Long: `Estimate the purchase quantities for covering a roof: iron sheets
(with a waste allowance), ridge cover pieces and nail mass.

Sub-roofs declared with --sub are included via the overlap-corrected
collective area.

Examples:
  # Gable roof with the standard 2.5m x 1.0m sheet
  roofcalc materials -t gable -l 10 -w 6 --pitch 30

  # Custom sheet and 15% waste
  roofcalc materials -t hip -l 12 -w 8 --sheet-length 3 --sheet-width 1.2 --waste 0.15`,
	Run: runMaterials,
}

func init() {
	rootCmd.AddCommand(materialsCmd)
	matOpts.register(materialsCmd)

	materialsCmd.Flags().Float64Var(&matSheetLength, "sheet-length", 0, "Sheet cover length (default from config)")
	materialsCmd.Flags().Float64Var(&matSheetWidth, "sheet-width", 0, "Sheet cover width (default from config)")
	materialsCmd.Flags().Float64Var(&matWaste, "waste", -1, "Fractional waste allowance, e.g. 0.1 for 10%")
	materialsCmd.Flags().Float64Var(&matNailUsage, "nail-usage", 0, "Nail mass per m² of roof (kg)")
	materialsCmd.Flags().Float64Var(&matRidgeCover, "ridge-cover-length", 0, "Length of one ridge cover piece (m)")
}

// materialInputs resolves the material flags against the run defaults.
func materialInputs(unit units.Unit) (material.SheetCover, material.Request, error) {
	sheetLen := units.Dimension{Value: matSheetLength, Unit: unit}
	if matSheetLength == 0 {
		sheetLen = units.Dimension{Value: runDefaults.SheetLength, Unit: units.Meter}
	}
	sheetWid := units.Dimension{Value: matSheetWidth, Unit: unit}
	if matSheetWidth == 0 {
		sheetWid = units.Dimension{Value: runDefaults.SheetWidth, Unit: units.Meter}
	}
	sheet, err := material.NewSheetCover(sheetWid, sheetLen)
	if err != nil {
		return material.SheetCover{}, material.Request{}, err
	}

	waste := matWaste
	if waste < 0 {
		waste = runDefaults.WastePercent
	}
	nails := matNailUsage
	if nails == 0 {
		nails = runDefaults.NailUsagePerSqm
	}
	ridgeCover := matRidgeCover
	if ridgeCover == 0 {
		ridgeCover = runDefaults.RidgeCoverLength
	}
	req, err := material.NewRequest(waste, nails, ridgeCover)
	if err != nil {
		return material.SheetCover{}, material.Request{}, err
	}
	return sheet, req, nil
}

func runMaterials(cmd *cobra.Command, args []string) {
	agg, err := matOpts.build()
	if err != nil {
		fail(err)
	}
	r := agg.Main

	sheet, req, err := materialInputs(r.Unit())
	if err != nil {
		fail(err)
	}

	result, err := material.EstimateAggregate(agg, sheet, req)
	if err != nil {
		fail(err)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s ROOF MATERIAL ESTIMATE\n", r.Type())
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("SHEET COVER:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Sheet Size:\t%.2f m × %.2f m\n", sheet.Length, sheet.Width)
	fmt.Fprintf(w, "  Waste Allowance:\t%.0f%%\n", req.WastePercent*100)
	w.Flush()
	fmt.Println()

	printMaterialCounts(result)
}

func printMaterialCounts(result material.Result) {
	fmt.Println("MATERIAL COUNTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Sheet Covers:\t%d\n", result.SheetCovers)
	fmt.Fprintf(w, "  Ridge Covers:\t%d\n", result.RidgeCovers)
	fmt.Fprintf(w, "  Nails:\t%.2f kg\n", result.NailsKg)
	fmt.Fprintf(w, "  Effective Area:\t%.2f m²\n", result.EffectiveArea)
	w.Flush()
	fmt.Println()
}
