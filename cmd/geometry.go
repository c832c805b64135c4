package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jomsey/roof-calc/internal/diagram"
	"github.com/jomsey/roof-calc/internal/roof"
	"github.com/jomsey/roof-calc/internal/units"
)

var (
	geomOpts roofOptions

	geomShowDiagram bool
	geomExportFile  string
)

var geometryCmd = &cobra.Command{
	Use:   "geometry",
	Short: "Compute roof geometry (area, slope, ridge and valley lengths)",
	Long: `Compute the geometry of a roof from its base dimensions and pitch.

Reports the slope length, pitch angle, surface area, ridge length and,
for hip roofs, the corner valley lengths.

Examples:
  # Gable roof, 10m x 6m, 30 degree pitch
  roofcalc geometry --type gable --length 10 --width 6 --pitch 30

  # Hip roof declared in centimeters
  roofcalc geometry -t hip -l 1200 -w 800 --unit cm`,
	Run: runGeometry,
}

func init() {
	rootCmd.AddCommand(geometryCmd)
	geomOpts.register(geometryCmd)

	geometryCmd.Flags().BoolVar(&geomShowDiagram, "diagram", false, "Show ASCII roof cross-section")
	geometryCmd.Flags().StringVarP(&geomExportFile, "output", "o", "", "Export section diagram to file (png, svg, pdf)")
}

func runGeometry(cmd *cobra.Command, args []string) {
	agg, err := geomOpts.build()
	if err != nil {
		fail(err)
	}
	r := agg.Main
	g := r.Geometry()
	unit := r.Unit()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s ROOF GEOMETRY\n", r.Type())
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Building Length:\t%.2f %s\n", units.FromMeters(r.Length(), unit), unit)
	fmt.Fprintf(w, "  Building Width:\t%.2f %s\n", units.FromMeters(r.Width(), unit), unit)
	fmt.Fprintf(w, "  Overhang:\t%.2f %s\n", units.FromMeters(r.Overhang(), unit), unit)
	fmt.Fprintf(w, "  Pitch Angle:\t%.2f°\n", r.PitchAngleDegrees())
	w.Flush()
	fmt.Println()

	fmt.Println("GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Surface Area:\t%.2f %s\n", units.AreaFromSquareMeters(g.SurfaceArea, unit), unit.AreaString())
	fmt.Fprintf(w, "  Slope Length:\t%.2f %s\n", units.FromMeters(g.SlopeLength, unit), unit)
	fmt.Fprintf(w, "  Ridge Length:\t%.2f %s\n", units.FromMeters(g.RidgeLength, unit), unit)
	fmt.Fprintf(w, "  Ridges:\t%d\n", g.RidgeCount)
	fmt.Fprintf(w, "  Roof Planes:\t%d\n", g.Planes)
	if len(g.ValleyLengths) > 0 {
		fmt.Fprintf(w, "  Valleys:\t%d × %.2f %s\n", len(g.ValleyLengths), units.FromMeters(g.ValleyLengths[0], unit), unit)
	}
	w.Flush()
	fmt.Println()

	if geomShowDiagram {
		fmt.Println(diagram.DrawASCIISection(sectionData(r)))
	}

	if geomExportFile != "" {
		if err := diagram.ExportSection(sectionData(r), geomExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", geomExportFile)
		}
	}
}

func sectionData(r *roof.RoofBase) diagram.SectionData {
	g := r.Geometry()
	return diagram.SectionData{
		RoofType:      string(r.Type()),
		Span:          r.Width(),
		Rise:          r.Rise(),
		Overhang:      r.Overhang(),
		SlopeLength:   g.SlopeLength,
		PitchAngleDeg: g.PitchAngleDeg,
		RidgeLength:   g.RidgeLength,
		Flat:          r.Type() == roof.Flat,
	}
}
