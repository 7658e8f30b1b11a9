package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/gomdhilite/pkg/highlight"
)

// filePermissions is the mode for written theme files (world-readable).
const filePermissions os.FileMode = 0o644

const templateHeader = `# gomdhilite theme
#
# Every style tag is listed with its built-in default. Remove the entries
# you do not want to change; a theme only needs the tags it overrides.
# Colors are hex ("#rrggbb"); an empty color keeps the terminal default.
`

// Template renders the built-in defaults as a starter theme document,
// every tag listed so customizing is a matter of editing values.
func Template() ([]byte, error) {
	body, err := Encode(highlight.DefaultStyles())
	if err != nil {
		return nil, err
	}
	return append([]byte(templateHeader+"\n"), body...), nil
}

// WriteFile writes a theme document to path atomically: the content goes
// to a temp file in the same directory which is then renamed over the
// target, so a concurrent reader never sees a half-written theme.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	written := false
	defer func() {
		if !written {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, filePermissions); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	written = true
	return nil
}
