package oda

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultDXFVersion is used when no version is configured or the given one
// is unrecognized.
const DefaultDXFVersion = "ACAD2018"

// DWG header version codes mapped to the ACAD release names the ODA File
// Converter expects.
var versionCodes = map[string]string{
	"AC1015": "ACAD2000",
	"AC1018": "ACAD2004",
	"AC1021": "ACAD2007",
	"AC1024": "ACAD2010",
	"AC1027": "ACAD2013",
	"AC1032": "ACAD2018",
}

// NormalizeDXFVersion maps a version string to an ACAD release name.
// Strings already in ACAD form pass through uppercased; DWG header codes
// are translated; anything else falls back to DefaultDXFVersion.
func NormalizeDXFVersion(version string) string {
	v := strings.ToUpper(strings.TrimSpace(version))
	if strings.HasPrefix(v, "ACAD") {
		return v
	}
	if mapped, ok := versionCodes[v]; ok {
		return mapped
	}
	return DefaultDXFVersion
}

// ConvertConfig holds one folder-level DWG to DXF conversion.
type ConvertConfig struct {
	Exe        string // Path to ODAFileConverter
	InputDir   string // Directory containing the staged DWG files
	OutputDir  string // Directory the converter writes DXF files into
	DXFVersion string // Target version, normalized before use
}

// Args builds the converter command line.
// Usage: ODAFileConverter "inDir" "outDir" version type recurse audit [filter]
func Args(config ConvertConfig) []string {
	return []string{
		config.InputDir,
		config.OutputDir,
		NormalizeDXFVersion(config.DXFVersion),
		"DXF",
		"0", // recurse: 0 no, 1 yes
		"0", // audit: 0 off, 1 on
		"*.DWG",
	}
}

// Convert runs the ODA File Converter over InputDir, writing DXF files
// into OutputDir.
func Convert(ctx context.Context, config ConvertConfig) error {
	cmd := exec.CommandContext(ctx, config.Exe, Args(config)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ODA File Converter failed: %w\nOutput: %s", err, string(output))
	}
	return nil
}
