package blender

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// exportScript is the python program Blender runs in background mode:
// clear the default scene, import the FBX, export everything as GLB.
const exportScript = `import bpy

bpy.ops.object.select_all(action='SELECT')
bpy.ops.object.delete(use_global=False)

bpy.ops.import_scene.fbx(filepath=%q)

bpy.ops.export_scene.gltf(
    filepath=%q,
    export_format='GLB',
    export_materials='EXPORT',
    export_normals=True,
    export_tangents=True,
    export_animations=True,
    export_skins=True,
)
`

// Script returns the python source Blender executes to convert fbxPath
// into glbPath. %q quoting doubles backslashes, which python string
// literals accept, so Windows paths survive intact.
func Script(fbxPath, glbPath string) string {
	return fmt.Sprintf(exportScript, fbxPath, glbPath)
}

// ConvertToGLB converts an FBX file to GLB by running Blender in
// background mode with a generated script. The script file is written next
// to the output and removed afterwards.
func ConvertToGLB(ctx context.Context, exe, fbxPath, glbPath string) error {
	if err := os.MkdirAll(filepath.Dir(glbPath), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	scriptPath := filepath.Join(filepath.Dir(glbPath), "blender_script.py")
	if err := os.WriteFile(scriptPath, []byte(Script(fbxPath, glbPath)), 0644); err != nil {
		return fmt.Errorf("writing blender script: %w", err)
	}
	defer os.Remove(scriptPath)

	cmd := exec.CommandContext(ctx, exe, "--background", "--python", scriptPath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("blender conversion failed: %w\nOutput: %s", err, string(output))
	}
	return nil
}
