package autocad

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// errCOMUnavailable signals that COM automation cannot be used on this
// platform; the script fallback runs instead.
var errCOMUnavailable = errors.New("COM automation unavailable")

// commandScript is the AutoCAD command script that opens the DWG, exports
// it as FBX, and quits without saving.
const commandScript = `(command "._open" "%s")
(command "._export" "%s" "FBX")
(command "._close" "N")
(command "._quit")
`

// Script returns the .scr content for converting dwgPath into fbxPath.
func Script(dwgPath, fbxPath string) string {
	return fmt.Sprintf(commandScript, dwgPath, fbxPath)
}

// ExportFBX converts a DWG file to FBX using AutoCAD. On Windows it drives
// a hidden AutoCAD instance through COM automation; elsewhere it falls back
// to running the executable with a generated command script.
func ExportFBX(ctx context.Context, exe, dwgPath, fbxPath string) error {
	if err := os.MkdirAll(filepath.Dir(fbxPath), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	err := exportViaCOM(dwgPath, fbxPath)
	if errors.Is(err, errCOMUnavailable) {
		fmt.Println("Warning: COM automation unavailable, using command script...")
		return exportViaScript(ctx, exe, dwgPath, fbxPath)
	}
	return err
}

// exportViaScript writes a .scr file next to the FBX output and runs
// AutoCAD against it. The script file is removed afterwards. Paths go into
// the script absolutized; AutoCAD's working directory is not ours.
func exportViaScript(ctx context.Context, exe, dwgPath, fbxPath string) error {
	absDWG, err := filepath.Abs(dwgPath)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dwgPath, err)
	}
	absFBX, err := filepath.Abs(fbxPath)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", fbxPath, err)
	}

	scriptPath := filepath.Join(filepath.Dir(fbxPath), "autocad_script.scr")
	if err := os.WriteFile(scriptPath, []byte(Script(absDWG, absFBX)), 0644); err != nil {
		return fmt.Errorf("writing autocad script: %w", err)
	}
	defer os.Remove(scriptPath)

	cmd := exec.CommandContext(ctx, exe, "/s", scriptPath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("autocad export failed: %w\nOutput: %s", err, string(output))
	}
	return nil
}
