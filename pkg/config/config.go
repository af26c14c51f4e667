// Package config holds the settings letc reads from a JSON5 file.
package config

import (
	"io"
	"os"
	"runtime"
	"slices"

	"github.com/flynn/json5"
	"github.com/pkg/errors"
)

// DefaultPath is consulted when no --config flag is given.
const DefaultPath = ".letc.json5"

// Output formats understood by "letc parse".
const (
	FormatSExpr = "sexpr"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatSpew  = "spew"
)

var (
	formats   = []string{FormatSExpr, FormatJSON, FormatYAML, FormatSpew}
	logLevels = []string{"debug", "info", "warning", "error"}
)

type Config struct {
	// Format is the AST output format, one of sexpr, json, yaml or spew.
	Format string `json:"format"`

	// Color enables ANSI colors in diagnostics.
	Color bool `json:"color"`

	// Workers bounds how many files "letc check" parses at once. Zero means
	// one per CPU.
	Workers int `json:"workers"`

	// LogLevel is the minimum level logged to stderr.
	LogLevel string `json:"log_level"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Format:   FormatSExpr,
		Color:    true,
		Workers:  runtime.NumCPU(),
		LogLevel: "warning",
	}
}

// Parse decodes JSON5 from r on top of the defaults and validates the result.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	if err := json5.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the config at path. A missing file at DefaultPath yields the
// defaults; a missing file anywhere else is an error.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return Default(), nil
		}
		return Config{}, errors.Wrapf(err, "opening config %s", path)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "loading config %s", path)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if !slices.Contains(formats, c.Format) {
		return errors.Errorf("unknown format %q, want one of %v", c.Format, formats)
	}
	if !slices.Contains(logLevels, c.LogLevel) {
		return errors.Errorf("unknown log level %q, want one of %v", c.LogLevel, logLevels)
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}
