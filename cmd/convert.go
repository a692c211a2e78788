package cmd

import (
	"fmt"
	"time"

	"github.com/shalekchaye/dwg2glb/config"
	"github.com/shalekchaye/dwg2glb/convert"
	"github.com/shalekchaye/dwg2glb/oda"
	"github.com/shalekchaye/dwg2glb/tools"
	"github.com/spf13/cobra"
)

var (
	convertInput      string
	convertOutput     string
	convertRecursive  bool
	convertAutoCAD    string
	convertBlender    string
	convertODA        string
	convertAssimp     string
	convertConfigPath string
	convertLegacy     bool
	convertDXFVersion string
	convertGLTF       bool
	convertTimeout    time.Duration
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert DWG files to GLB",
	Long: `Converts a DWG file, or every DWG file in a folder, to GLB. The default
workflow exports FBX through AutoCAD and converts it with Blender; the
legacy workflow produces DXF through the ODA File Converter and exports it
with Assimp. Folder input mirrors its directory structure under the output
folder.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(convertConfigPath)
		if err != nil {
			return err
		}

		opts := convert.Options{
			Legacy:  convertLegacy,
			Timeout: convertTimeout,
		}

		if convertLegacy {
			opts.ODA, err = tools.Resolve(tools.ODA, convertODA, cfg.Tools.ODA)
			if err != nil {
				return err
			}
			opts.Assimp, err = tools.Resolve(tools.Assimp, convertAssimp, cfg.Tools.Assimp)
			if err != nil {
				return err
			}

			opts.DXFVersion = convertDXFVersion
			if opts.DXFVersion == "" {
				opts.DXFVersion = cfg.Defaults.DXFVersion
			}
			if opts.DXFVersion == "" {
				opts.DXFVersion = oda.DefaultDXFVersion
			}

			opts.GLB = cfg.EmitGLB()
			if cmd.Flags().Changed("gltf") {
				opts.GLB = !convertGLTF
			}
		} else {
			opts.AutoCAD, err = tools.Resolve(tools.AutoCAD, convertAutoCAD, cfg.Tools.AutoCAD)
			if err != nil {
				return err
			}
			opts.Blender, err = tools.Resolve(tools.Blender, convertBlender, cfg.Tools.Blender)
			if err != nil {
				return err
			}
			opts.GLB = true
		}

		results, err := convert.Batch(cmd.Context(), opts, convertInput, convertOutput, convertRecursive)
		if err != nil {
			return err
		}

		failures := 0
		for _, result := range results {
			if result.Err != nil {
				failures++
			}
		}
		if failures > 0 {
			return fmt.Errorf("completed with %d failures", failures)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertInput, "input", "", "Input DWG file or folder")
	convertCmd.Flags().StringVar(&convertOutput, "output", "", "Output folder for GLB files")
	convertCmd.Flags().BoolVar(&convertRecursive, "recursive", false, "Recurse into subfolders when input is a folder")
	convertCmd.Flags().StringVar(&convertAutoCAD, "autocad", "", "Path to AutoCAD executable")
	convertCmd.Flags().StringVar(&convertBlender, "blender", "", "Path to Blender executable")
	convertCmd.Flags().StringVar(&convertODA, "oda", "", "Path to ODAFileConverter executable (legacy mode)")
	convertCmd.Flags().StringVar(&convertAssimp, "assimp", "", "Path to assimp executable (legacy mode)")
	convertCmd.Flags().StringVar(&convertConfigPath, "config", config.DefaultFileName, "Path to config file")
	convertCmd.Flags().BoolVar(&convertLegacy, "legacy", false, "Use the legacy ODA+Assimp workflow")
	convertCmd.Flags().StringVar(&convertDXFVersion, "dxf-version", "", "DXF target version, e.g. ACAD2018 (legacy mode)")
	convertCmd.Flags().BoolVar(&convertGLTF, "gltf", false, "Emit .gltf instead of .glb (legacy mode)")
	convertCmd.Flags().DurationVar(&convertTimeout, "timeout", 0, "Per-file conversion timeout, 0 disables")

	convertCmd.MarkFlagRequired("input")
	convertCmd.MarkFlagRequired("output")
}
