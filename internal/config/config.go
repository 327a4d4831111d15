// Package config handles game configuration loading and management.
package config

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Render   RenderConfig   `yaml:"render"`
	Game     GameConfig     `yaml:"game"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds window and display settings. Width and Height
// are the logical framebuffer size; the window is an integer upscale.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Scale      int  `yaml:"scale"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// RenderConfig holds the software-pipeline constants. The projection
// constant is the negative focal analog; the handheld targets used -75
// for 120px screens and -80 for 128px.
type RenderConfig struct {
	ProjConst   float64 `yaml:"proj_const"`
	DitherX     int     `yaml:"dither_x"`
	DitherY     int     `yaml:"dither_y"`
	SnapshotDir string  `yaml:"snapshot_dir"`
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	ShowFPS bool   `yaml:"show_fps"`
	Seed    uint32 `yaml:"seed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      128,
			Height:     128,
			Scale:      4,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   30,
		},
		Render: RenderConfig{
			ProjConst:   -80,
			DitherX:     0,
			DitherY:     56,
			SnapshotDir: "snapshots",
		},
		Game: GameConfig{
			ShowFPS: false,
			Seed:    1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
