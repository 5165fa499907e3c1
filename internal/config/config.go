// Package config handles configuration loading for the example programs.
package config

import (
	"fmt"

	"github.com/Faultbox/donkey/pkg/camera"
)

// Config holds all program settings.
type Config struct {
	Window      WindowConfig     `yaml:"window"`
	Camera      CameraConfig     `yaml:"camera"`
	Screenshots ScreenshotConfig `yaml:"screenshots"`
	Logging     LoggingConfig    `yaml:"logging"`

	// Source is the file the config was read from, empty for defaults only.
	Source string `yaml:"-"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	TargetFPS  int    `yaml:"target_fps"` // 0 = unlimited
}

// CameraConfig holds the initial camera setup.
type CameraConfig struct {
	Mode       string  `yaml:"mode"`       // custom, free, orbital, first_person, third_person
	Projection string  `yaml:"projection"` // perspective, orthographic
	FovY       float32 `yaml:"fovy"`
}

// ScreenshotConfig controls where TakeScreenshot output goes.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "donkey",
			Width:     800,
			Height:    450,
			VSync:     true,
			TargetFPS: 60,
		},
		Camera: CameraConfig{
			Mode:       "first_person",
			Projection: "perspective",
			FovY:       45,
		},
		Screenshots: ScreenshotConfig{
			Dir:    ".",
			Prefix: "screenshot",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// CameraMode parses Camera.Mode.
func (c *Config) CameraMode() (camera.Mode, error) {
	return camera.ParseMode(c.Camera.Mode)
}

// CameraProjection parses Camera.Projection.
func (c *Config) CameraProjection() (camera.Projection, error) {
	return camera.ParseProjection(c.Camera.Projection)
}

// Validate checks values that would otherwise fail later at window creation.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d: dimensions must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.TargetFPS < 0 {
		return fmt.Errorf("target_fps %d: must not be negative", c.Window.TargetFPS)
	}
	if c.Camera.FovY <= 0 {
		return fmt.Errorf("camera fovy %v: must be positive", c.Camera.FovY)
	}
	if _, err := c.CameraMode(); err != nil {
		return err
	}
	if _, err := c.CameraProjection(); err != nil {
		return err
	}
	return nil
}
