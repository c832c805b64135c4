package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jomsey/roof-calc/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of roofcalc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("roofcalc v%s\n", version.Version)
		fmt.Println("Roof Geometry and Material Calculator")
		fmt.Printf("Build: %s (%s)\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
