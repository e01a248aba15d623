package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/veandco/go-sdl2/sdl"
)

// ErrResourceNotFound reports a resource file missing from the resource
// directory, as opposed to one that exists but cannot be read.
var ErrResourceNotFound = errors.New("resource not found")

// BaseDir returns the directory resources are resolved against: SDL's
// notion of the application base path, falling back to the directory of
// the running executable.
func BaseDir() (string, error) {
	if base := sdl.GetBasePath(); base != "" {
		return base, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %v", err)
	}
	return filepath.Dir(exe), nil
}

// LoadResource reads the file at relPath under baseDir. A missing file
// yields an error matching ErrResourceNotFound; any other failure is
// reported as a read error.
func LoadResource(baseDir, relPath string) ([]byte, error) {
	path := filepath.Join(baseDir, relPath)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read resource %s: %v", path, err)
	}
	return data, nil
}
