package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/wrenbyte/starlance/internal/assets"
	"github.com/wrenbyte/starlance/internal/config"
	"github.com/wrenbyte/starlance/internal/logger"
	"github.com/wrenbyte/starlance/internal/platform"
	"github.com/wrenbyte/starlance/internal/render"
	"github.com/wrenbyte/starlance/pkg/fix"
)

// stepInterval is the fixed simulation step, 30 frames per second like
// the handheld targets.
const stepInterval = 33 * time.Millisecond

// Game ties the scene, the render pipeline and the platform window
// into a fixed-step main loop.
type Game struct {
	cfg     *config.Config
	running bool

	window   *platform.Window
	input    *platform.Input
	ctx      *render.Context
	frame    *render.PixelBuffer
	scene    *Scene
	snapshot *render.SnapshotCapture
}

// New creates a game instance from the loaded configuration.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Uint32("seed", cfg.Game.Seed),
	)

	g := &Game{cfg: cfg}

	var err error
	g.window, err = platform.New(platform.Config{
		Title:      "Starlance",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Scale:      cfg.Graphics.Scale,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	}, assets.Palette())
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	g.input = platform.NewInput()
	g.ctx = render.NewContext(render.Config{
		Width:     cfg.Graphics.Width,
		Height:    cfg.Graphics.Height,
		ProjConst: fix.From(cfg.Render.ProjConst),
		DitherX:   cfg.Render.DitherX,
		DitherY:   cfg.Render.DitherY,
	})
	g.frame = render.NewPixelBuffer(cfg.Graphics.Width, cfg.Graphics.Height)
	g.snapshot = render.NewSnapshotCapture(cfg.Render.SnapshotDir, "starlance", assets.Palette())

	g.scene, err = NewScene(cfg.Game.Seed)
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	logger.Info("game initialized")
	return g, nil
}

// Run drives the fixed-step main loop until quit.
func (g *Game) Run() error {
	g.running = true

	last := time.Now()
	var acc time.Duration
	frameCount := 0
	statsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		if g.input.Poll() {
			g.running = false
			break
		}

		now := time.Now()
		acc += now.Sub(last)
		last = now

		stepped := false
		for acc >= stepInterval {
			acc -= stepInterval
			g.scene.Update(g.readInput())
			stepped = true
		}

		if stepped {
			g.scene.Draw(g.ctx, g.frame)
			if err := g.window.Present(g.frame); err != nil {
				return fmt.Errorf("present error: %w", err)
			}
			frameCount++
		}

		if g.input.SnapshotRequested() {
			path, err := g.snapshot.Capture(g.frame)
			if err != nil {
				logger.Error("snapshot failed", zap.Error(err))
			} else {
				logger.Info("snapshot written", zap.String("path", path))
			}
		}

		if time.Since(statsTimer) >= time.Second {
			stats := g.ctx.Stats()
			logger.Debug("frame stats",
				zap.Int("fps", frameCount),
				zap.Int("culled_backface", stats.CulledBackface),
				zap.Int("culled_offscreen", stats.CulledOffscreen),
				zap.Int("culled_behind", stats.CulledBehind),
				zap.Int("degenerate_spans", stats.DegenerateSpans),
			)
			g.ctx.ResetStats()
			frameCount = 0
			statsTimer = time.Now()
		}

		time.Sleep(time.Millisecond)
	}

	return nil
}

// readInput maps held buttons onto the scene's steering axes.
func (g *Game) readInput() Input {
	held := g.input.Held()
	pressed := g.input.Pressed()

	var in Input
	if held.Left {
		in.DX -= fix.One
	}
	if held.Right {
		in.DX += fix.One
	}
	if held.Up {
		in.DY -= fix.One
	}
	if held.Down {
		in.DY += fix.One
	}
	in.Engage = pressed.Secondary
	return in
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.window != nil {
		g.window.Close()
	}
}
