package summary

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write persists a rendered summary: parent directories are created,
// content is staged to a temp file, then renamed over any previous
// artifact. A reader of the destination never observes a partial file,
// and a failed run leaves the previous artifact untouched.
func Write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("stage summary: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("commit summary: %w", err)
	}
	return nil
}
