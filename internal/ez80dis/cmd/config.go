package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"ez80dis/internal/disasm"
)

// ConfigEnv names the config file when --config is not given.
const ConfigEnv = "EZ80DIS_CONFIG"

// Config is the optional JSON configuration file. Flags override it.
type Config struct {
	Debug   bool   `json:"debug,omitempty" jsonschema:"title=Debug,description=Enable debug logging"`
	Base    string `json:"base,omitempty" jsonschema:"title=Base,description=Load address of raw images as a decimal or &hex literal,example=&040000"`
	ADL     *int   `json:"adl,omitempty" jsonschema:"title=ADL,description=Default execution width: 0 for Z80 and 1 for ADL,enum=0,enum=1"`
	NoColor bool   `json:"noColor,omitempty" jsonschema:"title=No Color,description=Disable syntax highlighting"`
	Theme   string `json:"theme,omitempty" jsonschema:"title=Theme,description=Markdown theme,enum=vscode,enum=charm"`
}

// LoadConfig reads path, or the file named by EZ80DIS_CONFIG when path is
// empty. No file at all yields the zero Config.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// width returns the configured default execution width.
func (c Config) width() (disasm.Width, error) {
	if c.ADL == nil {
		return disasm.ADLMode, nil
	}
	return disasm.ParseWidth(int64(*c.ADL))
}

// base returns the configured load address.
func (c Config) base() (uint32, error) {
	if c.Base == "" {
		return 0, nil
	}
	return parseAddress("config base", c.Base)
}

type configKey struct{}

// withConfig stores the loaded config for the rest of the command run.
func withConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFrom returns the config stored by withConfig, or the zero Config.
func configFrom(ctx context.Context) Config {
	if ctx == nil {
		return Config{}
	}
	cfg, _ := ctx.Value(configKey{}).(Config)
	return cfg
}
