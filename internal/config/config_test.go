package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/ts-tokenizer/tokenizer"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tstokenizer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "tokenized", cfg.Output)
	assert.GreaterOrEqual(t, cfg.Workers, 1)
	assert.Equal(t, tokenizer.DefaultCacheSize, cfg.CacheSize)
	assert.Empty(t, cfg.DataDir)
}

func TestLoad(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "output: tagged_lines\nworkers: 3\nverbose: true\ndata_dir: /srv/lexicon\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tagged_lines", cfg.Output)
	assert.Equal(t, 3, cfg.Workers)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "/srv/lexicon", cfg.DataDir)
	assert.Equal(t, ":8080", cfg.Addr, "unset keys keep defaults")

	f, err := cfg.Format()
	require.NoError(t, err)
	assert.Equal(t, tokenizer.TaggedLines, f)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "workers: [1, 2\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"unknown format", func(c *Config) { c.Output = "xml" }, ErrInvalidFormat},
		{"zero workers", func(c *Config) { c.Workers = 0 }, ErrInvalidWorkers},
		{"negative workers", func(c *Config) { c.Workers = -2 }, ErrInvalidWorkers},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}
