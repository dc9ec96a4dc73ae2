// Package config loads tstokenizer settings from an optional YAML file.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/az-ai-labs/ts-tokenizer/classify"
	"github.com/az-ai-labs/ts-tokenizer/tokenizer"
)

var (
	// ErrInvalidFormat is returned by Validate for an unknown output format.
	ErrInvalidFormat = errors.New("config: invalid output format")

	// ErrInvalidWorkers is returned by Validate for a worker count below one.
	ErrInvalidWorkers = errors.New("config: workers must be positive")
)

// Config holds CLI and server settings.
type Config struct {
	Output        string `yaml:"output"`
	Workers       int    `yaml:"workers"`
	Verbose       bool   `yaml:"verbose"`
	DataDir       string `yaml:"data_dir"` // empty selects the embedded lexicons
	CacheSize     int    `yaml:"cache_size"`
	Addr          string `yaml:"addr"`
	MaxTokenBytes int    `yaml:"max_token_bytes"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Output:        tokenizer.Tokenized.String(),
		Workers:       max(1, runtime.NumCPU()-1),
		CacheSize:     tokenizer.DefaultCacheSize,
		Addr:          ":8080",
		MaxTokenBytes: classify.DefaultMaxTokenBytes,
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// Format returns the parsed output format.
func (c Config) Format() (tokenizer.Format, error) {
	f, err := tokenizer.ParseFormat(c.Output)
	if err != nil {
		return f, errors.Wrapf(ErrInvalidFormat, "%q", c.Output)
	}
	return f, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := c.Format(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return errors.Wrapf(ErrInvalidWorkers, "got %d", c.Workers)
	}
	return nil
}
