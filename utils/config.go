package utils

import (
	"encoding/json"
	"math"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Generator names accepted in Config.Generator
const (
	GeneratorPCG     = "pcg"
	GeneratorMT19937 = "mt19937"
)

// ErrInvalidConfig is returned by Config.Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for a simulation run
type Config struct {
	Rows        int           `json:"rows"`
	Columns     int           `json:"columns"`
	Probability float64       `json:"probability"`
	Seed        int64         `json:"seed"`
	Iterations  int           `json:"iterations"`
	Generator   string        `json:"generator"`
	GridFile    string        `json:"grid_file"`
	RuleFile    string        `json:"rule_file"`
	FrameRate   time.Duration `json:"frame_rate"`
	UseParallel bool          `json:"use_parallel"`
	Interactive bool          `json:"interactive"`
	VideoFile   string        `json:"video_file"`
	ChartFile   string        `json:"chart_file"`
	CellSize    int           `json:"cell_size"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:        8,
		Columns:     8,
		Probability: 0.3,
		Seed:        211,
		Iterations:  10,
		Generator:   GeneratorPCG,
		FrameRate:   500 * time.Millisecond,
		CellSize:    24,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks the settings owned by the driver. Grid dimensions and
// probability are validated by the grid initializer itself.
func (c Config) Validate() error {
	if c.Iterations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] iterations must not be negative: %d", c.Iterations)
	}
	if c.FrameRate < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame rate must not be negative: %v", c.FrameRate)
	}
	if c.CellSize <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] cell size must be positive: %d", c.CellSize)
	}
	switch c.Generator {
	case GeneratorPCG:
	case GeneratorMT19937:
		if c.Seed < 0 || c.Seed > math.MaxUint32 {
			return errors.Wrapf(ErrInvalidConfig, "[Validate] mt19937 seed must be in [0, 2^32-1]: %d", c.Seed)
		}
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown generator: %q", c.Generator)
	}
	return nil
}

// NewGenerator builds the seeded generator named by the configuration
func (c Config) NewGenerator() (*RNG, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Generator == GeneratorMT19937 {
		return NewMT19937RNG(uint32(c.Seed)), nil
	}
	return NewRNG(c.Seed), nil
}
