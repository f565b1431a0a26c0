package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"sumc/internal/diagfmt"
)

const configFileName = "sumc.toml"

type cliConfig struct {
	Output   outputConfig   `toml:"output"`
	Tokenize tokenizeConfig `toml:"tokenize"`
}

type outputConfig struct {
	Color  string `toml:"color"`
	Header bool   `toml:"header"`
}

type tokenizeConfig struct {
	Format string `toml:"format"`
	Jobs   int    `toml:"jobs"`
}

func defaultConfig() cliConfig {
	return cliConfig{
		Output:   outputConfig{Color: "auto"},
		Tokenize: tokenizeConfig{Format: string(diagfmt.FormatPretty)},
	}
}

func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadConfigFile(path string) (cliConfig, error) {
	cfg := defaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cliConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return cliConfig{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return cliConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c cliConfig) validate() error {
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("[output].color must be auto, on or off, got %q", c.Output.Color)
	}
	if _, ok := diagfmt.ParseFormat(c.Tokenize.Format); !ok {
		return fmt.Errorf("[tokenize].format must be pretty, json or msgpack, got %q", c.Tokenize.Format)
	}
	if c.Tokenize.Jobs < 0 {
		return fmt.Errorf("[tokenize].jobs must not be negative, got %d", c.Tokenize.Jobs)
	}
	return nil
}

// loadConfig resolves the effective configuration: defaults, then
// sumc.toml (explicit --config or found upwards from the working directory),
// then flags set on the command line.
func loadConfig(cmd *cobra.Command) (cliConfig, error) {
	cfg := defaultConfig()

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return cfg, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path == "" {
		found, ok, err := findConfig(".")
		if err != nil {
			return cfg, err
		}
		if ok {
			path = found
		}
	}
	if path != "" {
		if cfg, err = loadConfigFile(path); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		if cfg.Output.Color, err = flags.GetString("color"); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("header") {
		if cfg.Output.Header, err = flags.GetBool("header"); err != nil {
			return cfg, err
		}
	}
	if cmd.Name() != "tokenize" {
		return cfg, cfg.validate()
	}
	if flags.Changed("format") {
		if cfg.Tokenize.Format, err = flags.GetString("format"); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("jobs") {
		if cfg.Tokenize.Jobs, err = flags.GetInt("jobs"); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.validate()
}

// useColor decides whether output to f is coloured.
func (c cliConfig) useColor(f *os.File) bool {
	switch c.Output.Color {
	case "on":
		return true
	case "off":
		return false
	}
	return f != nil && isTerminal(f)
}
