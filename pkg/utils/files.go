package utils

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// StdinPath is the conventional argument for reading a group from stdin
const StdinPath = "-"

// IsRecordFile checks if a file is a JSON import-records file
func IsRecordFile(filename string) bool {
	return strings.HasSuffix(filename, ".json")
}

// FindRecordFiles recursively finds all record files in a directory
func FindRecordFiles(root string) ([]string, error) {
	var recordFiles []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip vendor directories and hidden directories (but not the root directory)
		if info.IsDir() && path != root {
			name := filepath.Base(path)
			if name == "vendor" || name == "node_modules" || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.IsDir() && IsRecordFile(filepath.Base(path)) {
			recordFiles = append(recordFiles, path)
		}

		return nil
	})

	return recordFiles, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// ReadInput reads a records document from a file, or from stdin when the
// path is StdinPath
func ReadInput(path string) ([]byte, error) {
	if path == StdinPath {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
