// Package fixture loads the text and parameters used by the chunking benchmarks.
package fixture

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v10"

	"github.com/botirk38/tokenchunk/chunker"
)

// ErrEmptyFixture indicates the fixture file holds no text.
var ErrEmptyFixture = errors.New("fixture is empty")

// Config holds the benchmark inputs. Every field can be overridden from the environment.
type Config struct {
	DataPath     string `env:"TOKENCHUNK_DATA" envDefault:"testdata/data.txt"`
	Encoding     string `env:"TOKENCHUNK_ENCODING" envDefault:"cl100k_base"`
	MaxChunkSize int    `env:"TOKENCHUNK_MAX_CHUNK_SIZE" envDefault:"1000"`
	Overlap      int    `env:"TOKENCHUNK_OVERLAP" envDefault:"0"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}

// ChunkConfig returns the chunking parameters of the fixture.
func (c Config) ChunkConfig() chunker.Config {
	return chunker.Config{
		MaxChunkSize: c.MaxChunkSize,
		Overlap:      c.Overlap,
	}
}

// Validate checks that the chunking parameters are usable.
func (c Config) Validate() error {
	if c.DataPath == "" {
		return errors.New("data path is required")
	}
	return c.ChunkConfig().Validate()
}

// Read returns the fixture text at c.DataPath.
func (c Config) Read() (string, error) {
	data, err := os.ReadFile(c.DataPath)
	if err != nil {
		return "", fmt.Errorf("failed to read fixture: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%s: %w", c.DataPath, ErrEmptyFixture)
	}
	return string(data), nil
}
