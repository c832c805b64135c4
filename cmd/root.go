package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jomsey/roof-calc/internal/defaults"
	"github.com/jomsey/roof-calc/internal/logging"
	"github.com/jomsey/roof-calc/internal/version"
)

var (
	configFile string
	logFile    string
	verbose    bool

	// Run-wide state set up before any command runs.
	runDefaults = defaults.Standard()
	logger      = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "roofcalc",
	Short: "Roof Material Calculator",
	Long: `roofcalc - Roof Geometry and Material Calculator

A CLI tool for estimating construction materials for hip, gable
and flat roofs, including attached sub-roofs.

This tool helps builders and estimators compute:
  - Roof geometry (areas, slope lengths, ridge and valley lengths)
  - Timber frame quantities (trusses, purlins, rafters, tie beams)
  - Material quantities (sheet covers, ridge covers, nail mass)
  - Collective estimates for a main roof with attached sub-roofs

All lengths may be given in millimeters, centimeters or meters.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configFile != "" {
			v, err := defaults.Load(configFile)
			if err != nil {
				return err
			}
			runDefaults = v
		}
		l, err := logging.Setup(logFile, verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   roofcalc v%-46s║\n", version.Version)
		fmt.Println("  ║   Roof Geometry and Material Calculator                   ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for estimating construction materials for")
		fmt.Println("  hip, gable and flat roofs.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Pitch-aware roof area and slope length calculation")
		fmt.Println("    • Truss, purlin, rafter and tie beam counts from spacing rules")
		fmt.Println("    • Sheet cover, ridge cover and nail mass estimation")
		fmt.Println("    • Sub-roof attachments with overlap-corrected totals")
		fmt.Println()
		fmt.Println("  Use 'roofcalc --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML defaults file (overrides built-in defaults)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append log output to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// fail prints a one-line error and exits non-zero. All validation errors
// surface through here, naming the offending field.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
