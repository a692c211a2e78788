package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindDWGFiles returns the DWG files under root, sorted. A root that is
// itself a .dwg file is returned as-is; a directory is scanned at the top
// level, or through subfolders when recursive is set.
func FindDWGFiles(root string, recursive bool) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("reading input path: %w", err)
	}

	if !info.IsDir() {
		if isDWG(root) {
			return []string{root}, nil
		}
		return nil, nil
	}

	var files []string
	if recursive {
		err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && isDWG(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", root, err)
		}
	} else {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", root, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() && isDWG(entry.Name()) {
				files = append(files, filepath.Join(root, entry.Name()))
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// TargetDir returns the output directory for a DWG file found under
// inputRoot, mirroring the file's relative position. Files that do not
// resolve under inputRoot land directly in outputRoot.
func TargetDir(outputRoot, inputRoot, dwgPath string) string {
	rel, err := filepath.Rel(inputRoot, filepath.Dir(dwgPath))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		rel = "."
	}
	return filepath.Join(outputRoot, rel)
}

func isDWG(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".dwg")
}

// stem returns the file name without directory or extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
