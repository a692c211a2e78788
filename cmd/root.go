package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/shalekchaye/dwg2glb/tools"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dwg2glb",
	Short: "Convert DWG drawings to GLB using external CAD tooling",
	Long: `dwg2glb converts DWG files to binary glTF by driving pre-installed
third-party tools: AutoCAD and Blender by default, or the ODA File
Converter and Assimp in legacy mode. It performs no geometry work itself;
the external tools produce every output byte.`,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
}

// Execute runs the root command. A missing external tool exits with 2,
// every other failure with 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, tools.ErrNotFound) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
