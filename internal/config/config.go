// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Scene    SceneConfig    `yaml:"scene"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// CameraConfig holds the starting state of both cameras.
type CameraConfig struct {
	Mode string `yaml:"mode"` // "fly" or "lookat"

	// Fly camera.
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	Zoom        float32    `yaml:"zoom"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`

	// Look-at camera.
	Eye    [3]float32 `yaml:"eye"`
	LookAt [3]float32 `yaml:"look_at"`
	Up     [3]float32 `yaml:"up"`
}

// SceneConfig selects the layout.
type SceneConfig struct {
	Preset       string  `yaml:"preset"`        // "classroom" or "room"
	GridIndexing string  `yaml:"grid_indexing"` // "unique" or "aliased"
	FanSpeed     float32 `yaml:"fan_speed"`     // degrees per second
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	ScreenshotDir    string `yaml:"screenshot_dir"`
	ScreenshotFormat string `yaml:"screenshot_format"` // "png" or "bmp"
	ShowFPS          bool   `yaml:"show_fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Camera: CameraConfig{
			Mode:        "fly",
			Position:    [3]float32{4, 1.5, 10.5},
			Yaw:         -90,
			Pitch:       -15,
			Zoom:        45,
			Speed:       2.5,
			Sensitivity: 0.1,
			Eye:         [3]float32{4, 1.5, 10.5},
			LookAt:      [3]float32{4, 0, 0},
			Up:          [3]float32{0, 1, 0},
		},
		Scene: SceneConfig{
			Preset:       "classroom",
			GridIndexing: "unique",
			FanSpeed:     180,
		},
		Debug: DebugConfig{
			ScreenshotDir:    "screenshots",
			ScreenshotFormat: "png",
			ShowFPS:          false,
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

var (
	validModes    = []string{"fly", "lookat"}
	validPresets  = []string{"classroom", "room"}
	validIndexing = []string{"unique", "aliased"}
	validFormats  = []string{"png", "bmp"}
)

// Validate reports every setting that cannot be used.
func (c *Config) Validate() error {
	var errs []error

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics size must be positive, got %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("fps_limit must not be negative, got %d", c.Graphics.FPSLimit))
	}
	if !oneOf(c.Camera.Mode, validModes) {
		errs = append(errs, fmt.Errorf("camera mode %q not in %v", c.Camera.Mode, validModes))
	}
	if c.Camera.Zoom <= 0 || c.Camera.Zoom >= 180 {
		errs = append(errs, fmt.Errorf("camera zoom must be in (0, 180), got %g", c.Camera.Zoom))
	}
	if c.Camera.Eye == c.Camera.LookAt {
		errs = append(errs, errors.New("camera eye and look_at must differ"))
	}
	if c.Camera.Up == [3]float32{} {
		errs = append(errs, errors.New("camera up vector must be non-zero"))
	}
	if !oneOf(c.Scene.Preset, validPresets) {
		errs = append(errs, fmt.Errorf("scene preset %q not in %v", c.Scene.Preset, validPresets))
	}
	if !oneOf(c.Scene.GridIndexing, validIndexing) {
		errs = append(errs, fmt.Errorf("grid indexing %q not in %v", c.Scene.GridIndexing, validIndexing))
	}

	if !oneOf(c.Debug.ScreenshotFormat, validFormats) {
		errs = append(errs, fmt.Errorf("screenshot format %q not in %v", c.Debug.ScreenshotFormat, validFormats))
	}

	return errors.Join(errs...)
}

func oneOf(v string, options []string) bool {
	for _, o := range options {
		if v == o {
			return true
		}
	}
	return false
}
