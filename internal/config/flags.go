package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagScale      = flag.Int("scale", 0, "Window upscale factor")
	flagWidth      = flag.Int("width", 0, "Framebuffer width")
	flagHeight     = flag.Int("height", 0, "Framebuffer height")
	flagSeed       = flag.Uint("seed", 0, "Random seed for the demo scene")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Game.ShowFPS = true
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagScale > 0 {
		cfg.Graphics.Scale = *flagScale
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagSeed > 0 {
		cfg.Game.Seed = uint32(*flagSeed)
	}
}
