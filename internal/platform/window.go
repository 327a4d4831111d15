// Package platform owns the SDL2 window and the streaming texture the
// palette framebuffer is presented through.
package platform

import (
	"fmt"
	"image/color"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/wrenbyte/starlance/internal/logger"
	"github.com/wrenbyte/starlance/internal/render"
)

func init() {
	// SDL video calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration. Width and Height are the
// framebuffer size in pixels, Scale the integer window multiplier.
type Config struct {
	Title      string
	Width      int
	Height     int
	Scale      int
	Fullscreen bool
	VSync      bool
}

// Window wraps the SDL2 window, renderer and the streaming texture
// that receives each frame.
type Window struct {
	config   Config
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	palette []color.RGBA
	pixels  []byte
}

// New creates the window and the streaming texture sized to the
// framebuffer.
func New(cfg Config, palette []color.RGBA) (*Window, error) {
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	w := &Window{
		config:  cfg,
		palette: palette,
		pixels:  make([]byte, cfg.Width*cfg.Height*4),
	}

	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	flags := uint32(sdl.WINDOW_SHOWN)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	var err error
	w.window, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width*cfg.Scale),
		int32(cfg.Height*cfg.Scale),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	rendererFlags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		rendererFlags |= sdl.RENDERER_PRESENTVSYNC
	}
	w.renderer, err = sdl.CreateRenderer(w.window, -1, rendererFlags)
	if err != nil {
		w.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	w.texture, err = w.renderer.CreateTexture(
		sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING,
		int32(cfg.Width),
		int32(cfg.Height),
	)
	if err != nil {
		w.renderer.Destroy()
		w.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateTexture failed: %w", err)
	}

	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("scale", cfg.Scale),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	logger.Info("closing window")

	if w.texture != nil {
		w.texture.Destroy()
	}
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.window != nil {
		w.window.Destroy()
	}

	sdl.Quit()
}

// Present expands the palette framebuffer to RGBA, uploads it to the
// streaming texture and flips it to the screen scaled to the window.
func (w *Window) Present(buf *render.PixelBuffer) error {
	for y := 0; y < w.config.Height; y++ {
		for x := 0; x < w.config.Width; x++ {
			c := w.palette[buf.Get(x, y)&15]
			i := (y*w.config.Width + x) * 4
			w.pixels[i] = c.R
			w.pixels[i+1] = c.G
			w.pixels[i+2] = c.B
			w.pixels[i+3] = c.A
		}
	}

	if err := w.texture.Update(nil, unsafe.Pointer(&w.pixels[0]), w.config.Width*4); err != nil {
		return fmt.Errorf("texture update failed: %w", err)
	}
	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("renderer clear failed: %w", err)
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("renderer copy failed: %w", err)
	}
	w.renderer.Present()
	return nil
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.window.SetTitle(title)
}
