// Package assets holds the built-in game data: mesh blobs in the
// closed byte-stream format, the texture atlas, the dither tile and
// the 16-color palette. Everything is generated deterministically at
// load so every target ships identical data.
package assets

import (
	"image/color"
	"sync"

	"github.com/wrenbyte/starlance/internal/render"
	"github.com/wrenbyte/starlance/pkg/fix"
)

// Atlas geometry. The dither tile sits in its own corner; each mesh
// texture is a 16x16 block with its lit variant at a fixed horizontal
// offset, so one sheet serves both shading states.
const (
	AtlasSize = 128

	DitherX = 0
	DitherY = 56

	ShipTexY   = 96
	EnemyTexY  = 32
	EnemyTexW  = 32
	LitOffsetX = 16
)

// ShipTexture is the player ship's atlas region.
var ShipTexture = render.TextureRegion{X: 0, Y: ShipTexY, LitX: 48}

// EnemyTexture returns the atlas region for an enemy class.
func EnemyTexture(class int) render.TextureRegion {
	return render.TextureRegion{X: class * EnemyTexW, Y: EnemyTexY, LitX: LitOffsetX}
}

// EnemyScales holds the decode scale per enemy class, smallest drone
// to capital asteroid.
var EnemyScales = [4]fix.T{
	fix.From(1.0),
	fix.From(2.5),
	fix.From(3.0),
	fix.From(5.0),
}

var (
	meshOnce  sync.Once
	meshBlob  []byte
	atlasOnce sync.Once
	atlas     *render.ImageAtlas
)

// MeshData returns the concatenated mesh blobs: the ship first, then
// the four enemy classes, decoded sequentially from one cursor.
func MeshData() []byte {
	meshOnce.Do(func() {
		meshBlob = buildMeshData()
	})
	return meshBlob
}

// Atlas returns the shared texture atlas.
func Atlas() *render.ImageAtlas {
	atlasOnce.Do(func() {
		atlas = buildAtlas()
	})
	return atlas
}

// Palette returns the 16-color display palette.
func Palette() []color.RGBA {
	return []color.RGBA{
		{0x00, 0x00, 0x00, 0xFF},
		{0x1D, 0x2B, 0x53, 0xFF},
		{0x7E, 0x25, 0x53, 0xFF},
		{0x00, 0x87, 0x51, 0xFF},
		{0xAB, 0x52, 0x36, 0xFF},
		{0x5F, 0x57, 0x4F, 0xFF},
		{0xC2, 0xC3, 0xC7, 0xFF},
		{0xFF, 0xF1, 0xE8, 0xFF},
		{0xFF, 0x00, 0x4D, 0xFF},
		{0xFF, 0xA3, 0x00, 0xFF},
		{0xFF, 0xEC, 0x27, 0xFF},
		{0x00, 0xE4, 0x36, 0xFF},
		{0x29, 0xAD, 0xFF, 0xFF},
		{0x83, 0x76, 0x9C, 0xFF},
		{0xFF, 0x77, 0xA8, 0xFF},
		{0xFF, 0xCC, 0xAA, 0xFF},
	}
}

// buildAtlas synthesizes the texture sheet: a Bayer dither tile plus
// checkered hull textures with brighter lit variants.
func buildAtlas() *render.ImageAtlas {
	pix := make([]uint8, AtlasSize*AtlasSize)

	set := func(x, y int, c uint8) {
		pix[y*AtlasSize+x] = c
	}

	// 8x8 ordered-dither thresholds in [0, 15].
	bayer := bayerTile()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			set(DitherX+x, DitherY+y, bayer[y][x])
		}
	}

	checker := func(ox, oy int, a, b uint8) {
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				c := a
				if (x/4+y/4)&1 == 1 {
					c = b
				}
				set(ox+x, oy+y, c)
			}
		}
	}

	// Ship hull: grey panels, near-white when lit.
	checker(ShipTexture.X, ShipTexture.Y, 5, 6)
	checker(ShipTexture.X+ShipTexture.LitX, ShipTexture.Y, 6, 7)

	// Enemy hulls per class, each with a brighter lit block.
	base := [4][2]uint8{{2, 8}, {3, 11}, {4, 9}, {5, 13}}
	lit := [4][2]uint8{{8, 14}, {11, 10}, {9, 10}, {13, 6}}
	for i := 0; i < 4; i++ {
		checker(i*EnemyTexW, EnemyTexY, base[i][0], base[i][1])
		checker(i*EnemyTexW+LitOffsetX, EnemyTexY, lit[i][0], lit[i][1])
	}

	return render.NewImageAtlas(AtlasSize, AtlasSize, pix)
}

// bayerTile builds the classic 8x8 ordered-dither matrix scaled to
// [0, 15] by the recursive 2x2 construction.
func bayerTile() [8][8]uint8 {
	var m [8][8]int
	m[0][0] = 0
	for size := 1; size < 8; size *= 2 {
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				v := m[y][x] * 4
				m[y][x] = v
				m[y][x+size] = v + 2
				m[y+size][x] = v + 3
				m[y+size][x+size] = v + 1
			}
		}
	}
	var out [8][8]uint8
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			out[y][x] = uint8(m[y][x] >> 2)
		}
	}
	return out
}
