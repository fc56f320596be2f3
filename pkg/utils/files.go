package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// GetPathInfo resolves relPath to an absolute path and returns it along with
// its parent directory.
func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}
	parentDir = filepath.Dir(fullPath)
	return fullPath, parentDir, nil
}

// ReadSource reads an assembly source file as a string.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DefaultOutputPath swaps the extension of inPath for .bin, or appends .bin
// when there is none.
func DefaultOutputPath(inPath string) string {
	ext := filepath.Ext(inPath)
	if ext == "" {
		return inPath + ".bin"
	}
	return strings.TrimSuffix(inPath, ext) + ".bin"
}

// WriteBinary writes data to path, creating the parent directory if needed.
func WriteBinary(path string, data []byte) error {
	_, dir, err := GetPathInfo(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
