package tools

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/shalekchaye/dwg2glb/config"
)

// Tool identifies one of the external converters this CLI drives.
type Tool string

const (
	AutoCAD Tool = "autocad"
	Blender Tool = "blender"
	ODA     Tool = "oda"
	Assimp  Tool = "assimp"
)

// All lists every tool in the order reports should use.
var All = []Tool{AutoCAD, Blender, ODA, Assimp}

// ErrNotFound reports that a required external tool could not be located.
var ErrNotFound = errors.New("not found")

type toolInfo struct {
	DisplayName string
	CommonNames []string // executable names tried on PATH
	Basenames   []string // accepted basenames from the well-known locations
	Flag        string   // CLI flag to suggest when resolution fails
}

var infos = map[Tool]toolInfo{
	AutoCAD: {
		DisplayName: "AutoCAD",
		CommonNames: []string{"acad.exe", "AutoCAD"},
		Basenames:   []string{"acad.exe"},
		Flag:        "--autocad",
	},
	Blender: {
		DisplayName: "Blender",
		CommonNames: []string{"blender.exe", "blender"},
		Basenames:   []string{"blender.exe"},
		Flag:        "--blender",
	},
	ODA: {
		DisplayName: "ODA File Converter",
		CommonNames: []string{"ODAFileConverter.exe", "ODAFileConverter"},
		Basenames:   []string{"odafileconverter.exe"},
		Flag:        "--oda",
	},
	Assimp: {
		DisplayName: "assimp",
		CommonNames: []string{"assimp.exe", "assimp"},
		Basenames:   []string{"assimp.exe"},
		Flag:        "--assimp",
	},
}

// Default install locations on Windows, checked as a last resort.
var wellKnownPaths = []string{
	`C:\Program Files\ODA\ODAFileConverter\ODAFileConverter.exe`,
	`C:\Program Files (x86)\ODA\ODAFileConverter\ODAFileConverter.exe`,
	`C:\Program Files\Assimp\bin\assimp.exe`,
	`C:\Program Files (x86)\Assimp\bin\assimp.exe`,
	`C:\Program Files\Autodesk\AutoCAD 2024\acad.exe`,
	`C:\Program Files\Autodesk\AutoCAD 2023\acad.exe`,
	`C:\Program Files\Autodesk\AutoCAD 2022\acad.exe`,
	`C:\Program Files\Autodesk\AutoCAD 2021\acad.exe`,
	`C:\Program Files\Blender Foundation\Blender 4.0\blender.exe`,
	`C:\Program Files\Blender Foundation\Blender 3.6\blender.exe`,
	`C:\Program Files\Blender Foundation\Blender 3.5\blender.exe`,
}

// Resolve locates the executable for tool. Precedence: the explicit CLI
// path, then the configured path, then a PATH lookup over the tool's common
// names, then the well-known Windows install locations.
func Resolve(tool Tool, explicit, configured string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if configured != "" {
		return configured, nil
	}

	info := infos[tool]
	for _, name := range info.CommonNames {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	for _, path := range wellKnownPaths {
		if !matchesBasename(path, info.Basenames) {
			continue
		}
		if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
			return path, nil
		}
	}

	return "", fmt.Errorf("%s %w (provide %s or set tools.%s in %s)",
		info.DisplayName, ErrNotFound, info.Flag, tool, config.DefaultFileName)
}

// matchesBasename reports whether the path's basename is one of the
// basenames the tool accepts, ignoring case. The well-known paths use
// Windows separators, so split on either separator by hand.
func matchesBasename(path string, basenames []string) bool {
	base := strings.ToLower(path)
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	for _, want := range basenames {
		if base == want {
			return true
		}
	}
	return false
}

// DisplayName returns the human-readable name of the tool.
func DisplayName(tool Tool) string {
	return infos[tool].DisplayName
}
