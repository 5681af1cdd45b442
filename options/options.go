package options

import "flag"

// Flags mirrors the command line. Fields are filled by flag.FlagSet and only
// override the config file when the flag was given explicitly.
type Flags struct {
	ConfigFile *string
	Help       *bool
	Width      *int
	Height     *int
	Title      *string
	Translate  *bool
	Headless   *bool
	MaxFrames  *int
	OutputFile *string
	FPS        *int
	FFMPEGPath *string
}

// Register defines every flag on fs.
func Register(fs *flag.FlagSet) *Flags {
	d := Default()
	return &Flags{
		ConfigFile: fs.String("config", "", "Path to a YAML config file"),
		Help:       fs.Bool("help", false, "Show help message"),
		Width:      fs.Int("width", d.Display.Width, "Window width"),
		Height:     fs.Int("height", d.Display.Height, "Window height"),
		Title:      fs.String("title", d.Display.Title, "Window title"),
		Translate:  fs.Bool("translate", d.Render.Translate, "Translate WebGL2 shader sources for the current context"),
		Headless:   fs.Bool("headless", d.Render.Headless, "Render into an EGL pbuffer instead of a window (Linux only)"),
		MaxFrames:  fs.Int("frames", d.Render.MaxFrames, "Stop after this many frames (0 = run until closed)"),
		OutputFile: fs.String("record", d.Record.Output, "Record frames to this video file"),
		FPS:        fs.Int("fps", d.Record.FPS, "Frame rate of the recording"),
		FFMPEGPath: fs.String("ffmpeg", d.Record.FFMPEGPath, "Path to ffmpeg executable"),
	}
}

// Override copies every explicitly set flag into c.
func (c *Config) Override(fs *flag.FlagSet, f *Flags) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "width":
			c.Display.Width = *f.Width
		case "height":
			c.Display.Height = *f.Height
		case "title":
			c.Display.Title = *f.Title
		case "translate":
			c.Render.Translate = *f.Translate
		case "headless":
			c.Render.Headless = *f.Headless
		case "frames":
			c.Render.MaxFrames = *f.MaxFrames
		case "record":
			c.Record.Output = *f.OutputFile
		case "fps":
			c.Record.FPS = *f.FPS
		case "ffmpeg":
			c.Record.FFMPEGPath = *f.FFMPEGPath
		}
	})
}
