package config

import (
	"os"
	"path/filepath"
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

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dwg2glb.toml")
	writeFile(t, path, `
[tools]
autocad = "C:\\Autodesk\\acad.exe"
blender = "/usr/bin/blender"

[defaults]
dxf_version = "ACAD2013"
glb = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, `C:\Autodesk\acad.exe`, cfg.Tools.AutoCAD)
	assert.Equal(t, "/usr/bin/blender", cfg.Tools.Blender)
	assert.Empty(t, cfg.Tools.ODA)
	assert.Equal(t, "ACAD2013", cfg.Defaults.DXFVersion)
	assert.False(t, cfg.EmitGLB())
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dwg2glb.yaml")
	writeFile(t, path, `
tools:
  oda: /opt/oda/ODAFileConverter
  assimp: /usr/local/bin/assimp
defaults:
  dxf_version: ACAD2007
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/oda/ODAFileConverter", cfg.Tools.ODA)
	assert.Equal(t, "/usr/local/bin/assimp", cfg.Tools.Assimp)
	assert.Equal(t, "ACAD2007", cfg.Defaults.DXFVersion)
	assert.True(t, cfg.EmitGLB(), "unset glb should default to GLB output")
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nowhere.toml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dwg2glb.toml")
	writeFile(t, path, "[tools\nbroken")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadSearchesParentDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, DefaultFileName), `
[defaults]
dxf_version = "ACAD2010"
`)

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	chdir(t, nested)

	cfg, err := Load(DefaultFileName)
	require.NoError(t, err)
	assert.Equal(t, "ACAD2010", cfg.Defaults.DXFVersion)
}

func TestLoadPrefersTOMLOverYAML(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, DefaultFileName), `
[defaults]
dxf_version = "ACAD2018"
`)
	writeFile(t, filepath.Join(root, yamlFileName), `
defaults:
  dxf_version: ACAD2000
`)

	chdir(t, root)

	cfg, err := Load(DefaultFileName)
	require.NoError(t, err)
	assert.Equal(t, "ACAD2018", cfg.Defaults.DXFVersion)
}

func TestEmitGLB(t *testing.T) {
	glb := false
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{name: "unset", cfg: Config{}, want: true},
		{name: "explicit false", cfg: Config{Defaults: Defaults{GLB: &glb}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.EmitGLB())
		})
	}
}
