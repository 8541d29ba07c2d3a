package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all cardworth configuration.
type Config struct {
	General    GeneralConfig      `toml:"general"`
	Appearance AppearanceConfig   `toml:"appearance"`
	Valuations ValuationOverrides `toml:"valuations"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	CardsDir       string    `toml:"cards_dir,omitempty"`
	DefaultTargets []float64 `toml:"default_targets,omitempty"`
	RecordHistory  bool      `toml:"record_history"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ValuationOverrides allows user-defined cents-per-point for reward programs.
type ValuationOverrides struct {
	Overrides map[string]float64 `toml:"overrides,omitempty"`
}

// DefaultTargetRates are the breakeven targets used when the user has
// not configured their own (percent effective return).
var DefaultTargetRates = []float64{1, 2, 3, 5}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultTargets: append([]float64(nil), DefaultTargetRates...),
			RecordHistory:  true,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cardworth")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cardworth")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DefaultCardsDir returns where card definition files live when not
// overridden by config or flag.
func DefaultCardsDir() string {
	return filepath.Join(Dir(), "cards")
}

// HistoryPath returns the path to the valuation history database.
func HistoryPath() string {
	return filepath.Join(Dir(), "history.db")
}

// CardsDir resolves the configured cards directory, falling back to the
// default when unset.
func CardsDir(cfg Config) string {
	if cfg.General.CardsDir != "" {
		return cfg.General.CardsDir
	}
	return DefaultCardsDir()
}

// TargetRates resolves the configured breakeven targets, falling back to
// the defaults when unset.
func TargetRates(cfg Config) []float64 {
	if len(cfg.General.DefaultTargets) > 0 {
		return cfg.General.DefaultTargets
	}
	return DefaultTargetRates
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
