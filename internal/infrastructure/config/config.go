// Package config loads decoder, report, store and viewer settings.
//
// Settings come from a JSON file (see Loader) and can be overridden by
// GHOST_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Report formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Decode: DecodeConfig{
			StrictDuration:    false,
			DurationTolerance: 0.05,
		},
		Report: ReportConfig{
			Format:     FormatText,
			Collectors: []string{"frametime", "velocity", "airborne", "events"},
		},
		Viewer: ViewerConfig{
			ScreenWidth:  480,
			ScreenHeight: 360,
			Scale:        2,
			Framerate:    60,
			Speed:        1,
			Trail:        0,
			Margin:       16,
		},
	}
}

// ApplyEnv overrides cfg with GHOST_* environment variables that are set
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects settings the tools cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Decode.DurationTolerance < 0 {
		errs = append(errs, fmt.Errorf("decode.durationTolerance must not be negative, got %v", c.Decode.DurationTolerance))
	}
	switch c.Report.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		errs = append(errs, fmt.Errorf("report.format must be text, json or yaml, got %q", c.Report.Format))
	}
	if len(c.Report.Collectors) == 0 {
		errs = append(errs, errors.New("report.collectors must not be empty"))
	}
	v := c.Viewer
	if v.ScreenWidth <= 0 || v.ScreenHeight <= 0 || v.Scale <= 0 || v.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("viewer screen %dx%d scale %d framerate %d must be positive",
			v.ScreenWidth, v.ScreenHeight, v.Scale, v.Framerate))
	}
	if v.Speed <= 0 {
		errs = append(errs, fmt.Errorf("viewer.speed must be positive, got %v", v.Speed))
	}
	if v.Trail < 0 || v.Margin < 0 {
		errs = append(errs, errors.New("viewer.trail and viewer.margin must not be negative"))
	}
	return errors.Join(errs...)
}
