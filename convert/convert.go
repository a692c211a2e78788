package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shalekchaye/dwg2glb/assimp"
	"github.com/shalekchaye/dwg2glb/autocad"
	"github.com/shalekchaye/dwg2glb/blender"
	"github.com/shalekchaye/dwg2glb/oda"
)

// Options holds the resolved tool paths and settings for a conversion run.
type Options struct {
	AutoCAD    string // Path to acad (default workflow)
	Blender    string // Path to blender (default workflow)
	ODA        string // Path to ODAFileConverter (legacy workflow)
	Assimp     string // Path to assimp (legacy workflow)
	Legacy     bool   // Use ODA + Assimp instead of AutoCAD + Blender
	DXFVersion string // DXF target version (legacy only)
	GLB        bool   // Emit binary GLB; glTF otherwise (legacy only)
	Timeout    time.Duration
}

// Result records the outcome of one file conversion.
type Result struct {
	Input  string
	Output string
	Err    error
}

// Batch converts every DWG file under inputPath into outputRoot, mirroring
// the directory structure when inputPath is a folder. A failed file does
// not stop the batch.
func Batch(ctx context.Context, opts Options, inputPath, outputRoot string, recursive bool) ([]Result, error) {
	if err := os.MkdirAll(outputRoot, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	files, err := FindDWGFiles(inputPath, recursive)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		fmt.Println("No DWG files found.")
		return nil, nil
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("reading input path: %w", err)
	}
	inputIsDir := info.IsDir()

	results := make([]Result, 0, len(files))
	for _, dwg := range files {
		outDir := outputRoot
		if inputIsDir {
			outDir = TargetDir(outputRoot, inputPath, dwg)
		}

		out, err := File(ctx, opts, dwg, outDir)
		if err != nil {
			fmt.Printf("FAIL: %s: %v\n", dwg, err)
		} else {
			fmt.Printf("OK: %s -> %s\n", dwg, out)
		}
		results = append(results, Result{Input: dwg, Output: out, Err: err})
	}

	return results, nil
}

// File converts a single DWG file, writing the result into outDir.
// Returns the path of the produced file.
func File(ctx context.Context, opts Options, dwgPath, outDir string) (string, error) {
	if _, err := os.Stat(dwgPath); err != nil {
		return "", fmt.Errorf("reading %s: %w", dwgPath, err)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	if opts.Legacy {
		return legacyFile(ctx, opts, dwgPath, outDir)
	}
	return autocadBlenderFile(ctx, opts, dwgPath, outDir)
}

// autocadBlenderFile runs the default workflow: AutoCAD exports the DWG as
// FBX into a temp directory, Blender converts the FBX to GLB.
func autocadBlenderFile(ctx context.Context, opts Options, dwgPath, outDir string) (string, error) {
	tmpDir, err := os.MkdirTemp("", "dwg2glb-*")
	if err != nil {
		return "", fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	fbxPath := filepath.Join(tmpDir, stem(dwgPath)+".fbx")
	fmt.Printf("Converting %s to FBX...\n", filepath.Base(dwgPath))
	if err := autocad.ExportFBX(ctx, opts.AutoCAD, dwgPath, fbxPath); err != nil {
		return "", err
	}
	if _, err := os.Stat(fbxPath); err != nil {
		return "", fmt.Errorf("FBX file not created: %s", fbxPath)
	}

	glbPath := filepath.Join(outDir, stem(dwgPath)+".glb")
	fmt.Printf("Converting %s to GLB...\n", filepath.Base(fbxPath))
	if err := blender.ConvertToGLB(ctx, opts.Blender, fbxPath, glbPath); err != nil {
		return "", err
	}
	if _, err := os.Stat(glbPath); err != nil {
		return "", fmt.Errorf("GLB file not created: %s", glbPath)
	}

	return glbPath, nil
}

// legacyFile runs the legacy workflow: the DWG is staged into a temp input
// folder, the ODA File Converter turns it into DXF, and assimp exports the
// DXF as GLB or glTF.
func legacyFile(ctx context.Context, opts Options, dwgPath, outDir string) (string, error) {
	tmpDir, err := os.MkdirTemp("", "dwg2glb-*")
	if err != nil {
		return "", fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	srcDir := filepath.Join(tmpDir, "in")
	dxfDir := filepath.Join(tmpDir, "out")
	for _, dir := range []string{srcDir, dxfDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating staging directory: %w", err)
		}
	}

	staged := filepath.Join(srcDir, filepath.Base(dwgPath))
	if err := copyFile(dwgPath, staged); err != nil {
		return "", fmt.Errorf("staging %s: %w", dwgPath, err)
	}

	convertConfig := oda.ConvertConfig{
		Exe:        opts.ODA,
		InputDir:   srcDir,
		OutputDir:  dxfDir,
		DXFVersion: opts.DXFVersion,
	}
	if err := oda.Convert(ctx, convertConfig); err != nil {
		return "", err
	}

	dxfPath, err := findDXF(dxfDir, stem(dwgPath))
	if err != nil {
		return "", err
	}

	ext := ".gltf"
	if opts.GLB {
		ext = ".glb"
	}
	target := filepath.Join(outDir, stem(dwgPath)+ext)

	exportConfig := assimp.ExportConfig{
		Exe:        opts.Assimp,
		InputPath:  dxfPath,
		OutputPath: target,
		Binary:     opts.GLB,
	}
	if err := assimp.Export(ctx, exportConfig); err != nil {
		return "", err
	}

	return target, nil
}

// findDXF locates the DXF the ODA converter produced for the given stem.
// The converter usually writes it at the top level but may recreate the
// input's folder structure, so fall back to walking the whole tree.
func findDXF(dir, stem string) (string, error) {
	want := stem + ".dxf"

	direct := filepath.Join(dir, want)
	if _, err := os.Stat(direct); err == nil {
		return direct, nil
	}

	var found string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.EqualFold(filepath.Base(path), want) {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("searching for DXF: %w", err)
	}
	if found == "" {
		return "", errors.New("DXF not produced by ODA File Converter")
	}
	return found, nil
}

// copyFile copies a file from src to dst, preserving its permissions.
func copyFile(src, dst string) error {
	input, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading source file: %w", err)
	}

	if err := os.WriteFile(dst, input, 0644); err != nil {
		return fmt.Errorf("writing destination file: %w", err)
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("getting source file info: %w", err)
	}

	if err := os.Chmod(dst, srcInfo.Mode()); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}

	return nil
}
