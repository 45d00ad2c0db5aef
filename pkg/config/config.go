/*
Package config manages TOML configuration for the suggestion engine and
its gateway/CLI collaborators, following the layered
defaults-then-file-then-partial-recovery pattern used across the
project's tooling.
*/
package config

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/kordata/toolserve/internal/utils"
	"github.com/kordata/toolserve/pkg/index"
	"github.com/kordata/toolserve/pkg/suggest"
)

// Config holds the entire on-disk configuration structure.
type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Gateway GatewayConfig `toml:"gateway"`
}

// EngineConfig mirrors suggest.Options' construction parameters.
type EngineConfig struct {
	TopK                  int      `toml:"top_k"`
	MaxIntents            int      `toml:"max_intents"`
	IntentSeparatorTokens []string `toml:"intent_separator_tokens"`
	CombineStrategy       string   `toml:"combine_strategy"`
	MinScore              float64  `toml:"min_score"`
	Locales               []string `toml:"locales"`
	PrefixLimit           int      `toml:"prefix_limit"`

	// FieldWeights overrides the fixed field weights (name=3.0,
	// aliases=2.5, keywords=2.0, description=1.0). Nil/absent keeps
	// the fixed defaults; a present key overrides just that field.
	FieldWeights map[string]float64 `toml:"field_weights"`
}

// GatewayConfig holds options for the stdio gateway.
type GatewayConfig struct {
	CatalogPath string `toml:"catalog_path"`
	Debug       bool   `toml:"debug"`
}

// DefaultConfig returns a Config seeded from suggest.DefaultOptions.
func DefaultConfig() *Config {
	defaults := suggest.DefaultOptions()
	return &Config{
		Engine: EngineConfig{
			TopK:                  defaults.TopK,
			MaxIntents:            defaults.MaxIntents,
			IntentSeparatorTokens: nil,
			CombineStrategy:       defaults.CombineStrategy,
			MinScore:              defaults.MinScore,
			Locales:               defaults.Locales,
			PrefixLimit:           defaults.PrefixLimit,
		},
		Gateway: GatewayConfig{
			CatalogPath: "",
			Debug:       false,
		},
	}
}

// ToOptions converts the on-disk config into suggest.Options. Tools is
// left empty — the caller loads the catalog separately (see
// internal/catalogio) and assigns it before calling suggest.New.
func (c *Config) ToOptions() suggest.Options {
	var weights map[index.Field]float64
	if len(c.Engine.FieldWeights) > 0 {
		weights = make(map[index.Field]float64, len(c.Engine.FieldWeights))
		for k, v := range c.Engine.FieldWeights {
			weights[index.Field(k)] = v
		}
	}
	return suggest.Options{
		TopK:                  c.Engine.TopK,
		MaxIntents:            c.Engine.MaxIntents,
		IntentSeparatorTokens: c.Engine.IntentSeparatorTokens,
		CombineStrategy:       c.Engine.CombineStrategy,
		MinScore:              c.Engine.MinScore,
		Locales:               c.Engine.Locales,
		PrefixLimit:           c.Engine.PrefixLimit,
		FieldWeights:          weights,
	}
}

// InitConfig loads config from configPath, creating it with defaults if
// missing.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return cfg, nil
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// LoadConfig loads from a TOML file, falling back to partial recovery
// on a malformed file.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, cfg); err != nil {
		return tryPartialParse(configPath)
	}
	return cfg, nil
}

// tryPartialParse recovers whichever top-level sections parse cleanly
// out of an otherwise malformed TOML file, falling back to defaults for
// the rest.
func tryPartialParse(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	raw, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return cfg, nil
	}

	if engineSection, ok := utils.ExtractSection(raw, "engine"); ok {
		extractEngineConfig(engineSection, &cfg.Engine)
	}
	if gatewaySection, ok := utils.ExtractSection(raw, "gateway"); ok {
		extractGatewayConfig(gatewaySection, &cfg.Gateway)
	}
	return cfg, nil
}

func extractEngineConfig(data map[string]any, engine *EngineConfig) {
	if val, ok := utils.ExtractInt64(data, "top_k"); ok {
		engine.TopK = val
	}
	if val, ok := utils.ExtractInt64(data, "max_intents"); ok {
		engine.MaxIntents = val
	}
	if val, ok := utils.ExtractStringSlice(data, "intent_separator_tokens"); ok {
		engine.IntentSeparatorTokens = val
	}
	if val, ok := data["combine_strategy"].(string); ok {
		engine.CombineStrategy = val
	}
	if val, ok := utils.ExtractFloat64(data, "min_score"); ok {
		engine.MinScore = val
	}
	if val, ok := utils.ExtractStringSlice(data, "locales"); ok {
		engine.Locales = val
	}
	if val, ok := utils.ExtractInt64(data, "prefix_limit"); ok {
		engine.PrefixLimit = val
	}
	if val, ok := utils.ExtractFloat64Map(data, "field_weights"); ok {
		engine.FieldWeights = val
	}
}

func extractGatewayConfig(data map[string]any, gateway *GatewayConfig) {
	if val, ok := data["catalog_path"].(string); ok {
		gateway.CatalogPath = val
	}
	if val, ok := utils.ExtractBool(data, "debug"); ok {
		gateway.Debug = val
	}
}

// SaveConfig writes cfg to path as TOML.
func SaveConfig(cfg *Config, path string) error {
	return utils.SaveTOMLFile(cfg, path)
}
