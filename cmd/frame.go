package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jomsey/roof-calc/internal/diagram"
	"github.com/jomsey/roof-calc/internal/frame"
	"github.com/jomsey/roof-calc/internal/units"
)

var (
	frameOpts roofOptions

	frameTrussSpacing  float64
	framePurlinSpacing float64
	frameShowTaper     bool
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Estimate timber frame quantities from spacing rules",
	Long: `Estimate the trusses, purlins, rafters and tie beams for a roof.

Trusses span the building width at intervals along the length; purlins
are spaced along the slope on each roof plane. Hip roofs additionally
report hip rafter, corner tie beam and jack rafter cut lengths.

Examples:
  # Gable roof with 0.6m truss spacing
  roofcalc frame -t gable -l 10 -w 6 --truss-spacing 0.6 --purlin-spacing 0.54

  # Hip roof with the purlin taper chart
  roofcalc frame -t hip -l 12 -w 8 --taper`,
	Run: runFrame,
}

func init() {
	rootCmd.AddCommand(frameCmd)
	frameOpts.register(frameCmd)

	frameCmd.Flags().Float64Var(&frameTrussSpacing, "truss-spacing", 0, "Spacing between trusses (default from config)")
	frameCmd.Flags().Float64Var(&framePurlinSpacing, "purlin-spacing", 0, "Spacing between purlin rows (default from config)")
	frameCmd.Flags().BoolVar(&frameShowTaper, "taper", false, "Chart the purlin row lengths from eave to ridge")
}

// frameSpec resolves the spacing flags against the run defaults. Flags
// are in the roof's unit, defaults in meters.
func frameSpec(unit units.Unit, trussFlag, purlinFlag float64) (frame.Spec, error) {
	truss := units.Dimension{Value: trussFlag, Unit: unit}
	if trussFlag == 0 {
		truss = units.Dimension{Value: runDefaults.TrussSpacing, Unit: units.Meter}
	}
	purlin := units.Dimension{Value: purlinFlag, Unit: unit}
	if purlinFlag == 0 {
		purlin = units.Dimension{Value: runDefaults.PurlinSpacing, Unit: units.Meter}
	}
	return frame.NewSpec(truss, purlin)
}

func runFrame(cmd *cobra.Command, args []string) {
	agg, err := frameOpts.build()
	if err != nil {
		fail(err)
	}
	r := agg.Main

	spec, err := frameSpec(r.Unit(), frameTrussSpacing, framePurlinSpacing)
	if err != nil {
		fail(err)
	}

	result, err := frame.EstimateAggregate(agg, spec)
	if err != nil {
		fail(err)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s ROOF FRAME ESTIMATE\n", r.Type())
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("SPACING:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Truss Spacing:\t%.2f m\n", spec.TrussSpacing)
	fmt.Fprintf(w, "  Purlin Spacing:\t%.2f m\n", spec.PurlinSpacing)
	w.Flush()
	fmt.Println()

	printFrameCounts(result)

	if detail := frame.EstimateDetail(r, spec); detail.HipRafterLength > 0 {
		fmt.Println("HIP MEMBER LENGTHS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Hip Rafter:\t%.2f m\n", detail.HipRafterLength)
		fmt.Fprintf(w, "  Corner Tie Beam:\t%.2f m\n", detail.CornerTieBeamLength)
		fmt.Fprintf(w, "  Common Tie Beam:\t%.2f m\n", detail.CommonTieBeamLength)
		for i, l := range detail.JackRafterLengths {
			fmt.Fprintf(w, "  Jack Rafter %d:\t%.2f m\n", i+1, l)
		}
		w.Flush()
		fmt.Println()
	}

	if frameShowTaper {
		rows := frame.PurlinRows(r, spec)
		if chart := diagram.DrawPurlinTaper(rows); chart != "" {
			fmt.Println(chart)
		}
	}
}

func printFrameCounts(result frame.Result) {
	fmt.Println("FRAME COUNTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Trusses:\t%d\n", result.Trusses)
	fmt.Fprintf(w, "  Purlins:\t%d\n", result.Purlins)
	fmt.Fprintf(w, "  Rafters:\t%d\n", result.Rafters)
	fmt.Fprintf(w, "  Tie Beams:\t%d\n", result.TieBeams)
	w.Flush()
	fmt.Println()
}
