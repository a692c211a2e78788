package autocad

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}

func TestScript(t *testing.T) {
	script := Script("/in/floor.dwg", "/tmp/floor.fbx")

	lines := strings.Split(strings.TrimSpace(script), "\n")
	assert.Equal(t, []string{
		`(command "._open" "/in/floor.dwg")`,
		`(command "._export" "/tmp/floor.fbx" "FBX")`,
		`(command "._close" "N")`,
		`(command "._quit")`,
	}, lines)
}

func TestExportViaScriptUsesAbsolutePaths(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub tool is a shell script")
	}

	workDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "floor.dwg"), []byte("stub"), 0644))
	chdir(t, workDir)

	// The stub preserves the generated .scr before it gets cleaned up.
	stub := filepath.Join(t.TempDir(), "acad")
	require.NoError(t, os.WriteFile(stub, []byte("#!/bin/sh\ncp \"$2\" \"$2.saved\"\n"), 0755))

	outDir := t.TempDir()
	fbxPath := filepath.Join(outDir, "floor.fbx")
	require.NoError(t, exportViaScript(context.Background(), stub, "floor.dwg", fbxPath))

	saved, err := os.ReadFile(filepath.Join(outDir, "autocad_script.scr.saved"))
	require.NoError(t, err)

	absDWG, err := filepath.Abs("floor.dwg")
	require.NoError(t, err)
	assert.Contains(t, string(saved), `"`+absDWG+`"`)
	assert.NotContains(t, string(saved), `"floor.dwg"`)
}
