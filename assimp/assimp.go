package assimp

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// ExportConfig holds one assimp export invocation.
type ExportConfig struct {
	Exe        string // Path to the assimp CLI
	InputPath  string // Source file (DXF)
	OutputPath string // Target file (.glb or .gltf)
	Binary     bool   // Emit binary GLB instead of textual glTF
}

// Args builds the assimp export command line. Binary exports use the glb2
// format and embed textures so the result is a single self-contained file.
func Args(config ExportConfig) []string {
	format := "gltf2"
	if config.Binary {
		format = "glb2"
	}
	args := []string{"export", config.InputPath, config.OutputPath, "-f", format}
	if config.Binary {
		args = append(args, "-embtex")
	}
	return args
}

// Export converts InputPath to glTF 2.0 via the assimp CLI, creating the
// output's parent directory first.
func Export(ctx context.Context, config ExportConfig) error {
	if err := os.MkdirAll(filepath.Dir(config.OutputPath), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	cmd := exec.CommandContext(ctx, config.Exe, Args(config)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("assimp export failed: %w\nOutput: %s", err, string(output))
	}
	return nil
}
