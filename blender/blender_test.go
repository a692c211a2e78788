package blender

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScript(t *testing.T) {
	script := Script("/tmp/model.fbx", "/out/model.glb")

	assert.Contains(t, script, `bpy.ops.import_scene.fbx(filepath="/tmp/model.fbx")`)
	assert.Contains(t, script, `filepath="/out/model.glb"`)
	assert.Contains(t, script, "export_format='GLB'")
	assert.Contains(t, script, "export_animations=True")
	assert.True(t, strings.HasPrefix(script, "import bpy"))
}

func TestScriptEscapesWindowsPaths(t *testing.T) {
	script := Script(`C:\models\plan.fbx`, `C:\out\plan.glb`)

	// Backslashes must be doubled so python reads them literally.
	assert.Contains(t, script, `"C:\\models\\plan.fbx"`)
	assert.Contains(t, script, `"C:\\out\\plan.glb"`)
}
