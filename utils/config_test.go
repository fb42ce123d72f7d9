package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, `{"width": 12, "pattern": "random", "seed": 7, "frame_rate": 1000000}`))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	want := DefaultConfig()
	want.Width = 12
	want.Pattern = PatternRandom
	want.Seed = 7
	want.FrameRate = time.Millisecond
	if config != want {
		t.Errorf("LoadConfig() = %+v, want %+v", config, want)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("LoadConfig() on a missing file error = %v, want not exist", err)
	}
	if config != DefaultConfig() {
		t.Errorf("LoadConfig() on a missing file = %+v, want defaults", config)
	}

	if _, err = LoadConfig(writeConfig(t, `{"width": "wide"}`)); err == nil {
		t.Error("LoadConfig() on malformed JSON returned no error")
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, `{"widht": 12}`))
	if err == nil {
		t.Fatal("LoadConfig() accepted a misspelt key")
	}
	if config != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want defaults", config)
	}
}

func TestLoadConfigValidatesSettings(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"unknown pattern", `{"pattern": "gosper"}`},
		{"zero height", `{"height": 0}`},
		{"density above one", `{"random_density": 2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfig(writeConfig(t, tt.text))
			if errors.Cause(err) != ErrInvalidConfig {
				t.Errorf("LoadConfig() error = %v, want %v", err, ErrInvalidConfig)
			}
			if config != DefaultConfig() {
				t.Errorf("LoadConfig() = %+v, want defaults", config)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"board file ignores size", func(c *Config) { c.BoardFile = "b.txt"; c.Width = 0 }, false},
		{"zero width", func(c *Config) { c.Width = 0 }, true},
		{"negative height", func(c *Config) { c.Height = -1 }, true},
		{"unknown pattern", func(c *Config) { c.Pattern = "gosper" }, true},
		{"density above one", func(c *Config) { c.RandomDensity = 1.5 }, true},
		{"negative frame rate", func(c *Config) { c.FrameRate = -time.Second }, true},
		{"negative generations", func(c *Config) { c.MaxGenerations = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr && errors.Cause(err) != ErrInvalidConfig {
				t.Errorf("Validate() error = %v, want %v", err, ErrInvalidConfig)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}
