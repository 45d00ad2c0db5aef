package utils

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// LoadTOMLFile loads and parses a TOML file into the provided struct
func LoadTOMLFile(configPath string, config interface{}) error {
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		log.Warnf("TOML parsing error in config file %s: %v. Attempting partial recovery...", configPath, err)
		return err
	}
	return nil
}

// ParseTOMLWithRecovery attempts to parse a TOML file with partial recovery
func ParseTOMLWithRecovery(configPath string) (map[string]any, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	tempConfig := make(map[string]any)
	if _, err := toml.Decode(string(data), &tempConfig); err != nil {
		// The file as a whole is malformed: decode each top-level [section]
		// on its own (dotted sub-table headers stay with their parent).
		sections := []string{""}
		for _, line := range strings.SplitAfter(string(data), "\n") {
			if t := strings.TrimSpace(line); strings.HasPrefix(t, "[") && !strings.Contains(t, ".") {
				sections = append(sections, "")
			}
			sections[len(sections)-1] += line
		}
		for _, section := range sections {
			_, _ = toml.Decode(section, &tempConfig)
		}
		if len(tempConfig) == 0 {
			log.Warnf("Could not parse any valid configuration from %s: %v", configPath, err)
			return nil, err
		}
	}
	return tempConfig, nil
}

// ExtractSection extracts a specific section from parsed TOML data
func ExtractSection(data map[string]any, sectionName string) (map[string]any, bool) {
	section, ok := data[sectionName].(map[string]any)
	return section, ok
}

// ExtractInt64 safely extracts an int64 value from a map
func ExtractInt64(data map[string]any, key string) (int, bool) {
	if val, ok := data[key].(int64); ok {
		return int(val), true
	}
	return 0, false
}

// ExtractBool safely extracts a bool value from a map
func ExtractBool(data map[string]any, key string) (bool, bool) {
	if val, ok := data[key].(bool); ok {
		return val, true
	}
	return false, false
}

// ExtractFloat64 safely extracts a float64 value from a map. TOML decodes
// whole-number floats as int64, so both representations are accepted.
func ExtractFloat64(data map[string]any, key string) (float64, bool) {
	switch val := data[key].(type) {
	case float64:
		return val, true
	case int64:
		return float64(val), true
	}
	return 0, false
}

// ExtractStringSlice safely extracts a []string value from a map. TOML
// decodes arrays as []any, so each element is type-asserted individually;
// a non-string element causes the whole key to be treated as absent.
func ExtractStringSlice(data map[string]any, key string) ([]string, bool) {
	raw, ok := data[key].([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// ExtractFloat64Map safely extracts a map[string]float64 from a nested
// TOML table, e.g. field_weights = { name = 3.0, description = 1.0 }.
// A non-numeric value for a key causes that key to be skipped rather
// than the whole map rejected.
func ExtractFloat64Map(data map[string]any, key string) (map[string]float64, bool) {
	raw, ok := data[key].(map[string]any)
	if !ok {
		return nil, false
	}
	out := make(map[string]float64, len(raw))
	for k, v := range raw {
		switch n := v.(type) {
		case float64:
			out[k] = n
		case int64:
			out[k] = float64(n)
		}
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}
