package render

import (
	"image"
	"image/color"
)

// PixelBuffer is a palette-indexed framebuffer. It implements Canvas
// with bounds checking so the rasterizer never needs to guard writes.
type PixelBuffer struct {
	W, H int
	Pix  []uint8
}

// NewPixelBuffer returns a zero-filled framebuffer.
func NewPixelBuffer(w, h int) *PixelBuffer {
	return &PixelBuffer{W: w, H: h, Pix: make([]uint8, w*h)}
}

// Set writes one pixel. Out-of-bounds writes are dropped.
func (p *PixelBuffer) Set(x, y int, c uint8) {
	if x < 0 || x >= p.W || y < 0 || y >= p.H {
		return
	}
	p.Pix[y*p.W+x] = c
}

// Get reads one pixel; out-of-bounds reads return 0.
func (p *PixelBuffer) Get(x, y int) uint8 {
	if x < 0 || x >= p.W || y < 0 || y >= p.H {
		return 0
	}
	return p.Pix[y*p.W+x]
}

// Clear fills the whole buffer with one palette index.
func (p *PixelBuffer) Clear(c uint8) {
	for i := range p.Pix {
		p.Pix[i] = c
	}
}

// RGBA expands the buffer through a palette into an image, for
// snapshots and display upload.
func (p *PixelBuffer) RGBA(palette []color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.W, p.H))
	for y := 0; y < p.H; y++ {
		for x := 0; x < p.W; x++ {
			c := palette[p.Pix[y*p.W+x]&15]
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// ImageAtlas is a palette-indexed texture atlas backing the Atlas
// interface. Out-of-bounds texel reads return 0, matching the sprite
// sheet behavior of the handheld targets.
type ImageAtlas struct {
	W, H int
	Pix  []uint8
}

// NewImageAtlas wraps raw atlas data. The pixel slice must be w*h long.
func NewImageAtlas(w, h int, pix []uint8) *ImageAtlas {
	return &ImageAtlas{W: w, H: h, Pix: pix}
}

// Texel returns the palette index at (x, y), or 0 outside the atlas.
func (a *ImageAtlas) Texel(x, y int) uint8 {
	if x < 0 || x >= a.W || y < 0 || y >= a.H {
		return 0
	}
	return a.Pix[y*a.W+x]
}
