// Package render implements the software 3D pipeline: perspective
// projection into screen space, back-to-front triangle sorting and
// scanline rasterization with dithered two-tone lighting.
//
// All pipeline state that the original ports kept in globals (current
// texture, light direction) lives in an explicit Context threaded
// through every call.
package render

import (
	"github.com/wrenbyte/starlance/pkg/fix"
	"github.com/wrenbyte/starlance/pkg/geom"
)

// Atlas is the texel source: a fixed-size square palette-index atlas
// owned by the caller. Out-of-bounds reads return 0.
type Atlas interface {
	Texel(x, y int) uint8
}

// Canvas is the pixel sink. Implementations own bounds checking.
type Canvas interface {
	Set(x, y int, c uint8)
}

// TextureRegion selects an atlas region for a mesh: the origin of the
// normally-shaded texel block plus the horizontal offset to its "lit"
// variant.
type TextureRegion struct {
	X, Y int
	LitX int
}

// Config holds the per-target screen geometry. The projection constant
// is the negative focal-length analog (-75 to -80 on the handheld
// targets depending on screen size).
type Config struct {
	Width     int
	Height    int
	ProjConst fix.T
	// DitherX, DitherY locate the 8x8 dither tile in the atlas.
	DitherX int
	DitherY int
}

// Stats counts conditions the pipeline absorbs silently, so tests and
// tooling can observe them. Counters reset with ResetStats.
type Stats struct {
	CulledUnused    int // triangle had an unused corner slot
	CulledBehind    int // all perspective weights invalid
	CulledOffscreen int // bounding box outside the viewport
	CulledBackface  int // negative signed area
	CulledZeroArea  int // zero-height after projection
	DegenerateSpans int // scanlines or pixels skipped on tiny divisors
}

// Context carries the pipeline configuration and the per-frame
// rasterizer inputs.
type Context struct {
	cfg Config

	// Screen-space clamp bounds, precomputed in fixed point.
	centerX, centerY fix.T
	maxX, maxY       fix.T

	// Per-frame inputs, set by the caller before rasterizing.
	Atlas    Atlas
	Canvas   Canvas
	Texture  TextureRegion
	LightDir geom.Vec3

	stats Stats
}

// maxWeight bounds the valid perspective-factor range: weights in
// (0, 10] are usable, anything else marks the point invalid.
var maxWeight = fix.FromInt(10)

// NewContext returns a pipeline context for the given screen geometry.
func NewContext(cfg Config) *Context {
	return &Context{
		cfg:     cfg,
		centerX: fix.FromInt(cfg.Width) >> 1,
		centerY: fix.FromInt(cfg.Height) >> 1,
		maxX:    fix.FromInt(cfg.Width) - fix.Half,
		maxY:    fix.FromInt(cfg.Height) - fix.Half,
	}
}

// Width returns the viewport width in pixels.
func (ctx *Context) Width() int { return ctx.cfg.Width }

// Height returns the viewport height in pixels.
func (ctx *Context) Height() int { return ctx.cfg.Height }

// Stats returns the counters accumulated since the last reset.
func (ctx *Context) Stats() Stats { return ctx.stats }

// ResetStats clears the absorbed-condition counters.
func (ctx *Context) ResetStats() { ctx.stats = Stats{} }
