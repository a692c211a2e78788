package cmd

import (
	"fmt"

	"github.com/shalekchaye/dwg2glb/config"
	"github.com/shalekchaye/dwg2glb/tools"
	"github.com/spf13/cobra"
)

var doctorConfigPath string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Report which external tools can be located",
	Long: `Resolves each external tool the same way convert does (config file,
PATH, well-known install locations) and prints where it was found.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(doctorConfigPath)
		if err != nil {
			return err
		}

		configured := map[tools.Tool]string{
			tools.AutoCAD: cfg.Tools.AutoCAD,
			tools.Blender: cfg.Tools.Blender,
			tools.ODA:     cfg.Tools.ODA,
			tools.Assimp:  cfg.Tools.Assimp,
		}

		for _, tool := range tools.All {
			path, err := tools.Resolve(tool, "", configured[tool])
			if err != nil {
				fmt.Printf("  %-20s not found\n", tools.DisplayName(tool))
				continue
			}
			fmt.Printf("  %-20s %s\n", tools.DisplayName(tool), path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)

	doctorCmd.Flags().StringVar(&doctorConfigPath, "config", config.DefaultFileName, "Path to config file")
}
