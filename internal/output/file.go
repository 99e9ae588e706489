package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// WriteFile writes content to dir/name, creating dir if needed. An empty dir
// means the system temp directory. It returns the written path.
func WriteFile(fs afero.Fs, dir, name, content string) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write summary file: %w", err)
	}
	return path, nil
}

// Remove deletes a summary file written by WriteFile. A file that is already
// gone is not an error.
func Remove(fs afero.Fs, path string) error {
	if err := fs.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove summary file: %w", err)
	}
	return nil
}
