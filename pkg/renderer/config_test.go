package renderer

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*Config)
		expected error
	}{
		{"defaults", func(c *Config) {}, nil},
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidDimensions},
		{"negative height", func(c *Config) { c.Height = -1 }, ErrInvalidDimensions},
		{"zero samples", func(c *Config) { c.SamplesPerPixel = 0 }, ErrInvalidSamples},
		{"zero depth", func(c *Config) { c.MaxDepth = 0 }, ErrInvalidDepth},
		{"negative depth", func(c *Config) { c.MaxDepth = -3 }, ErrInvalidDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			err := config.Validate()
			if tt.expected == nil && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
			if tt.expected != nil && !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
			if tt.expected == ErrInvalidDepth && errors.Is(err, ErrInvalidSamples) {
				t.Errorf("depth error should not be reported as a sample count error: %v", err)
			}
		})
	}
}

func TestConfigWorkers(t *testing.T) {
	config := DefaultConfig()
	config.NumWorkers = 3
	if got := config.Workers(); got != 3 {
		t.Errorf("expected 3 workers, got %d", got)
	}

	config.NumWorkers = 0
	if got := config.Workers(); got < 1 {
		t.Errorf("expected at least one worker, got %d", got)
	}
}
