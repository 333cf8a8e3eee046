package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Scanner scans for Go source files that may declare suites
type Scanner struct {
	skipDirs  map[string]bool
	skipFiles map[string]bool
}

// NewScanner creates a new Scanner with the given directories to skip.
// Files named like any of skipFiles (typically the generated registration file) are ignored.
func NewScanner(skipDirs []string, skipFiles ...string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	fileMap := make(map[string]bool)
	for _, f := range skipFiles {
		fileMap[f] = true
	}
	return &Scanner{skipDirs: skipMap, skipFiles: fileMap}
}

// Scan finds all candidate Go files under root, in lexical order
func (s *Scanner) Scan(root string) ([]string, error) {
	var files []string

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("source path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			// Skip hidden directories and the ones go build ignores
			if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
				return filepath.SkipDir
			}
			if s.skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			return nil
		}
		if s.skipFiles[name] {
			return nil
		}
		files = append(files, path)
		return nil
	})

	return files, err
}
