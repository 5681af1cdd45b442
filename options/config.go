// Package options holds the program configuration: a YAML file with
// command-line overrides.
package options

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration values.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Render  RenderConfig  `yaml:"render"`
	Record  RecordConfig  `yaml:"record"`
}

type DisplayConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

type RenderConfig struct {
	ClearColor [4]float32 `yaml:"clear_color"`
	Translate  bool       `yaml:"translate"` // run sources through the shader translator
	Headless   bool       `yaml:"headless"`
	MaxFrames  int        `yaml:"max_frames"`
}

type RecordConfig struct {
	Output     string `yaml:"output"` // empty disables recording
	FPS        int    `yaml:"fps"`
	FFMPEGPath string `yaml:"ffmpeg"`
}

func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:     640,
			Height:    480,
			Title:     "GUI",
			Resizable: true,
		},
		Render: RenderConfig{
			ClearColor: [4]float32{0, 0, 1, 1},
		},
		Record: RecordConfig{
			FPS: 60,
		},
	}
}

// Load reads a YAML file on top of the defaults. Keys missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Recording reports whether frames should be sent to the encoder.
func (c *Config) Recording() bool {
	return c.Record.Output != ""
}

// WindowResizable reports whether the window may be resized. Recording pins
// the size because the encoder is started with fixed frame dimensions.
func (c *Config) WindowResizable() bool {
	return c.Display.Resizable && !c.Recording()
}

func (c *Config) Validate() error {
	var errs []error
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Display.Width, c.Display.Height))
	}
	if c.Render.MaxFrames < 0 {
		errs = append(errs, fmt.Errorf("max_frames must not be negative, got %d", c.Render.MaxFrames))
	}
	for i, v := range c.Render.ClearColor {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("clear_color[%d] = %v is outside [0, 1]", i, v))
		}
	}
	if c.Render.Headless && c.Render.MaxFrames == 0 {
		errs = append(errs, errors.New("headless rendering needs max_frames > 0"))
	}
	if c.Recording() && c.Record.FPS <= 0 {
		errs = append(errs, fmt.Errorf("record fps must be positive, got %d", c.Record.FPS))
	}
	return errors.Join(errs...)
}
