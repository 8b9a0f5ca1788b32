// Package config loads compiler options from a ramen.toml manifest. The
// compiler core never reads files itself; surrounding tools decode a config
// once and pass the resulting options into each compile call.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"ramen"
	"ramen/diagfmt"
)

// Config mirrors the ramen.toml layout.
type Config struct {
	Compile CompileConfig `toml:"compile"`
	Output  OutputConfig  `toml:"output"`
}

// CompileConfig tunes the pipeline.
type CompileConfig struct {
	MaxDiagnostics int `toml:"max-diagnostics"`
	Jobs           int `toml:"jobs"`
}

// OutputConfig tunes diagnostic rendering.
type OutputConfig struct {
	Color   bool   `toml:"color"`
	Context bool   `toml:"context"`
	Format  string `toml:"format"` // "pretty" or "json"
}

// Default returns the configuration used when no manifest exists.
func Default() Config {
	return Config{
		Compile: CompileConfig{
			MaxDiagnostics: 256,
			Jobs:           1,
		},
		Output: OutputConfig{
			Color:   true,
			Context: true,
			Format:  "pretty",
		},
	}
}

// Parse decodes TOML text over the defaults, so a partial manifest keeps
// every unmentioned setting.
func Parse(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load decodes a manifest file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Compile.MaxDiagnostics < 0 {
		return fmt.Errorf("compile.max-diagnostics must not be negative")
	}
	if c.Compile.Jobs < 0 {
		return fmt.Errorf("compile.jobs must not be negative")
	}
	switch c.Output.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("output.format must be \"pretty\" or \"json\", got %q", c.Output.Format)
	}
	return nil
}

// Options maps the compile section onto pipeline options.
func (c Config) Options() ramen.Options {
	return ramen.Options{
		MaxDiagnostics: c.Compile.MaxDiagnostics,
		Jobs:           c.Compile.Jobs,
	}
}

// PrettyOpts maps the output section onto renderer options.
func (c Config) PrettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:   c.Output.Color,
		Context: c.Output.Context,
	}
}
