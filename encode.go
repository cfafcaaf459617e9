// FILE: lixenwraith/commander/encode.go
package commander

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Encode writes the matched options to w keyed by long name.
// Supported formats are "toml", "yaml" (or "yml") and "json".
// NoValue options are written as true.
func (c *Commander) Encode(w io.Writer, format string) error {
	values := c.current().values()

	switch strings.ToLower(format) {
	case "toml":
		if err := toml.NewEncoder(w).Encode(values); err != nil {
			return fmt.Errorf("failed to marshal options to TOML: %w", err)
		}
	case "yaml", "yml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(values); err != nil {
			return fmt.Errorf("failed to marshal options to YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to flush YAML encoder: %w", err)
		}
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(values); err != nil {
			return fmt.Errorf("failed to marshal options to JSON: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return nil
}

// Save writes the matched options to path atomically.
// The format is chosen from the file extension.
func (c *Commander) Save(path string) error {
	format := formatForPath(path)
	if format == "" {
		return fmt.Errorf("%w: cannot determine format for file '%s'", ErrUnsupportedFormat, path)
	}

	var buf bytes.Buffer
	if err := c.Encode(&buf, format); err != nil {
		return err
	}

	return writeOptionsFile(path, buf.Bytes())
}

// saveFormats maps file extensions to Encode formats
var saveFormats = map[string]string{
	".toml": "toml",
	".tml":  "toml",
	".json": "json",
	".yaml": "yaml",
	".yml":  "yaml",
}

// formatForPath returns the Encode format for path, or "" if the extension is unknown
func formatForPath(path string) string {
	return saveFormats[strings.ToLower(filepath.Ext(path))]
}

// writeOptionsFile replaces path with data via a synced temp file in the same directory.
// A failed write leaves any existing file untouched.
func writeOptionsFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary options file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write options to '%s': %w", tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync options file: %w", err)
	}
	if err = tmp.Chmod(0644); err != nil {
		return fmt.Errorf("failed to set options file permissions: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close options file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace '%s': %w", path, err)
	}

	return nil
}
