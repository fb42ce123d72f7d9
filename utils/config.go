package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	PatternGlider  = "glider"
	PatternBlinker = "blinker"
	PatternRandom  = "random"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the game
type Config struct {
	BoardFile      string        `json:"board_file"`
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	Pattern        string        `json:"pattern"`
	RandomDensity  float64       `json:"random_density"`
	Seed           int64         `json:"seed"`
	FrameRate      time.Duration `json:"frame_rate"`
	MaxGenerations int           `json:"max_generations"`
	StopWhenStatic bool          `json:"stop_when_static"`
	ClearScreen    bool          `json:"clear_screen"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          40,
		Height:         20,
		Pattern:        PatternGlider,
		RandomDensity:  0.25,
		FrameRate:      150 * time.Millisecond,
		MaxGenerations: 100,
		StopWhenStatic: true,
		ClearScreen:    true,
	}
}

/*
LoadConfig reads a JSON file on top of DefaultConfig.

Unknown keys are rejected so a misspelt setting does not silently keep its
default, and the merged result must pass Validate. On any error the defaults
are returned alongside it.
*/
func LoadConfig(filename string) (Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to open file: %+v", filename)
	}
	defer f.Close()

	config := DefaultConfig()
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err = dec.Decode(&config); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to decode file: %+v", filename)
	}
	if err = config.Validate(); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] invalid settings in file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first setting that cannot produce a board
func (c Config) Validate() error {
	if c.BoardFile == "" && (c.Width <= 0 || c.Height <= 0) {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] board size %dx%d", c.Width, c.Height)
	}
	switch c.Pattern {
	case PatternGlider, PatternBlinker, PatternRandom:
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown pattern %q", c.Pattern)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random density %v outside [0, 1]", c.RandomDensity)
	}
	if c.FrameRate < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative frame rate %v", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative max generations %d", c.MaxGenerations)
	}
	return nil
}
