package options

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goquad.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Render.ClearColor != [4]float32{0, 0, 1, 1} {
		t.Errorf("default clear color = %v, want opaque blue", cfg.Render.ClearColor)
	}
	if cfg.Recording() {
		t.Error("recording should be off by default")
	}
}

func TestRecordingPinsWindowSize(t *testing.T) {
	cfg := Default()
	if !cfg.WindowResizable() {
		t.Fatal("default window should be resizable")
	}
	cfg.Record.Output = "quad.mp4"
	if cfg.WindowResizable() {
		t.Error("window must not be resizable while recording")
	}
}

func TestLoad(t *testing.T) {
	t.Run("Partial file keeps defaults", func(t *testing.T) {
		path := writeConfig(t, `
display:
  width: 1280
  title: demo
record:
  output: out.mp4
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Display.Width != 1280 || cfg.Display.Height != 480 {
			t.Errorf("size = %dx%d, want 1280x480", cfg.Display.Width, cfg.Display.Height)
		}
		if cfg.Display.Title != "demo" {
			t.Errorf("title = %q", cfg.Display.Title)
		}
		if !cfg.Display.Resizable {
			t.Error("resizable default should survive a partial file")
		}
		if !cfg.Recording() || cfg.Record.FPS != 60 {
			t.Errorf("record = %+v", cfg.Record)
		}
	})

	t.Run("Missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatal("expected an error for a missing file")
		}
	})

	t.Run("Malformed file", func(t *testing.T) {
		path := writeConfig(t, "display: [1, 2")
		if _, err := Load(path); err == nil {
			t.Fatal("expected a parse error")
		}
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Display.Width = 0 }, "window size"},
		{"negative frames", func(c *Config) { c.Render.MaxFrames = -1 }, "max_frames"},
		{"color out of range", func(c *Config) { c.Render.ClearColor[2] = 2 }, "clear_color[2]"},
		{"headless without limit", func(c *Config) { c.Render.Headless = true }, "headless"},
		{"record without fps", func(c *Config) {
			c.Record.Output = "x.mp4"
			c.Record.FPS = 0
		}, "fps"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Validate() = %v, want error mentioning %q", err, tc.want)
			}
		})
	}
}

func TestOverride(t *testing.T) {
	fs := flag.NewFlagSet("goquad", flag.ContinueOnError)
	f := Register(fs)
	if err := fs.Parse([]string{"-height", "480", "-headless", "-frames", "10", "-record", "quad.mp4"}); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	cfg.Display.Width = 1920
	cfg.Override(fs, f)

	if cfg.Display.Width != 1920 {
		t.Errorf("unset flag must not override the file value, width = %d", cfg.Display.Width)
	}
	if cfg.Display.Height != 480 {
		t.Errorf("height = %d, want 480", cfg.Display.Height)
	}
	if !cfg.Render.Headless || cfg.Render.MaxFrames != 10 {
		t.Errorf("render = %+v", cfg.Render)
	}
	if cfg.Record.Output != "quad.mp4" {
		t.Errorf("record output = %q", cfg.Record.Output)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
