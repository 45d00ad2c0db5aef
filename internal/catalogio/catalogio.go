// Package catalogio loads tool catalogs from JSON or YAML files on disk,
// the on-disk format for the demo catalog and cmd/toolserve's --catalog
// flag. The core engine itself never touches a filesystem — this is a
// loader for its ToolSpec construction input, modeled on the teacher's
// chunk-file loading conventions.
package catalogio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kordata/toolserve/pkg/suggest"
)

// Load reads a catalog file, dispatching on extension: .json for
// encoding/json, .yaml/.yml for yaml.v3. Any other extension is an
// error.
func Load(path string) ([]suggest.ToolSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalogio: reading %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return decodeJSON(data)
	case ".yaml", ".yml":
		return decodeYAML(data)
	default:
		return nil, fmt.Errorf("catalogio: unsupported catalog extension %q (want .json, .yaml, or .yml)", ext)
	}
}

func decodeJSON(data []byte) ([]suggest.ToolSpec, error) {
	var tools []suggest.ToolSpec
	if err := json.Unmarshal(data, &tools); err != nil {
		return nil, fmt.Errorf("catalogio: decoding JSON catalog: %w", err)
	}
	return tools, nil
}

func decodeYAML(data []byte) ([]suggest.ToolSpec, error) {
	var tools []suggest.ToolSpec
	if err := yaml.Unmarshal(data, &tools); err != nil {
		return nil, fmt.Errorf("catalogio: decoding YAML catalog: %w", err)
	}
	return tools, nil
}
