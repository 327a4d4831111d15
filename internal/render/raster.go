package render

import (
	"github.com/wrenbyte/starlance/pkg/fix"
	"github.com/wrenbyte/starlance/pkg/formats"
	"github.com/wrenbyte/starlance/pkg/geom"
)

// RasterizeTriangle culls, splits and fills one triangle using the
// mesh's projected vertices. Triangles are filled with affine-mapped
// texels from the context's current texture region; the per-triangle
// light scalar picks the normal or lit variant per pixel through the
// dither tile.
func (ctx *Context) RasterizeTriangle(tri *formats.Triangle, projs []geom.Vec3) {
	if tri.Index[0] < 0 || tri.Index[1] < 0 || tri.Index[2] < 0 {
		ctx.stats.CulledUnused++
		return
	}

	v0 := projs[tri.Index[0]]
	v1 := projs[tri.Index[1]]
	v2 := projs[tri.Index[2]]

	// All perspective weights invalid: fully behind or too close.
	if v0.Z <= 0 && v1.Z <= 0 && v2.Z <= 0 {
		ctx.stats.CulledBehind++
		return
	}

	minX := fix.Min(v0.X, fix.Min(v1.X, v2.X))
	maxX := fix.Max(v0.X, fix.Max(v1.X, v2.X))
	minY := fix.Min(v0.Y, fix.Min(v1.Y, v2.Y))
	maxY := fix.Max(v0.Y, fix.Max(v1.Y, v2.Y))
	if maxX < 0 || minX >= fix.FromInt(ctx.cfg.Width) ||
		maxY < 0 || minY >= fix.FromInt(ctx.cfg.Height) {
		ctx.stats.CulledOffscreen++
		return
	}

	// Signed area in screen space. Negative winding faces away.
	nz := (v1.X - v0.X).Mul(v2.Y-v0.Y) - (v1.Y - v0.Y).Mul(v2.X-v0.X)
	if nz < 0 {
		ctx.stats.CulledBackface++
		return
	}

	uv0, uv1, uv2 := tri.UV[0], tri.UV[1], tri.UV[2]

	// Sort corners ascending by screen y, keeping UVs paired.
	if v1.Y < v0.Y {
		v0, v1, uv0, uv1 = v1, v0, uv1, uv0
	}
	if v2.Y < v0.Y {
		v0, v2, uv0, uv2 = v2, v0, uv2, uv0
	}
	if v2.Y < v1.Y {
		v1, v2, uv1, uv2 = v2, v1, uv2, uv1
	}

	if v0.Y == v2.Y {
		ctx.stats.CulledZeroArea++
		return
	}

	light := fix.FromInt(15).Mul(ctx.LightDir.Dot(tri.Normal))

	// Split at the middle vertex's height: interpolate x, the
	// perspective weight and (weight-blended) UV along the long edge.
	c := (v1.Y - v0.Y).Div(v2.Y - v0.Y)
	v3 := geom.Vec3{
		X: v0.X + c.Mul(v2.X-v0.X),
		Y: v1.Y,
		Z: v0.Z + c.Mul(v2.Z-v0.Z),
	}

	b0 := (fix.One - c).Mul(v0.Z)
	b1 := c.Mul(v2.Z)
	var invd fix.T
	if sum := b0 + b1; sum > fix.Epsilon {
		invd = fix.One.Div(sum)
	}
	uv3 := [2]fix.T{
		(b0.Mul(uv0[0]) + b1.Mul(uv2[0])).Mul(invd),
		(b0.Mul(uv0[1]) + b1.Mul(uv2[1])).Mul(invd),
	}

	// Flat-bottom then flat-top half, left corner before right.
	if v1.X <= v3.X {
		ctx.rasterFlatTri(v0, v1, v3, uv0, uv1, uv3, light)
		ctx.rasterFlatTri(v2, v1, v3, uv2, uv1, uv3, light)
	} else {
		ctx.rasterFlatTri(v0, v3, v1, uv0, uv3, uv1, light)
		ctx.rasterFlatTri(v2, v3, v1, uv2, uv3, uv1, light)
	}
}

// rasterFlatTri fills a half-triangle whose flat edge runs from v1
// (left) to v2 (right) at the same y, with apex v0. Scanlines are
// pixel-centered and clamped to the viewport.
func (ctx *Context) rasterFlatTri(v0, v1, v2 geom.Vec3, uv0, uv1, uv2 [2]fix.T, light fix.T) {
	y0, y1 := v0.Y, v1.Y

	var first, last fix.T
	switch {
	case y0 < y1:
		first = (y0 + fix.Half).Floor() + fix.Half
		last = (y1 - fix.Half).Floor() + fix.Half
	case y0 == y1:
		return
	default:
		first = (y1 + fix.Half).Floor() + fix.Half
		last = (y0 - fix.Half).Floor() + fix.Half
	}
	if first < fix.Half {
		first = fix.Half
	}
	if last > ctx.maxY {
		last = ctx.maxY
	}

	x0, z0 := v0.X, v0.Z
	x1, z1 := v1.X, v1.Z
	x2, y2, z2 := v2.X, v2.Y, v2.Z

	// Edge-function constants for the barycentric weights.
	cb0 := x1.Mul(y2) - x2.Mul(y1)
	cb1 := x2.Mul(y0) - x0.Mul(y2)
	d := cb0 + cb1 + x0.Mul(y1) - x1.Mul(y0)
	if d.Abs() < fix.Epsilon {
		ctx.stats.DegenerateSpans++
		return
	}

	dy := y1 - y0
	if dy.Abs() < fix.Epsilon {
		ctx.stats.DegenerateSpans++
		return
	}
	invDY := fix.One.Div(dy)
	invD := fix.One.Div(d)
	db0dx := (y1 - y2).Mul(invD)
	db1dx := (y2 - y0).Mul(invD)

	tex := ctx.Texture

	for y := first; y <= last; y += fix.One {
		coef := (y - y0).Mul(invDY)
		xFirst := (x0 + coef.Mul(x1-x0) + fix.From(0.48)).Floor() + fix.Half
		xLast := (x0 + coef.Mul(x2-x0) - fix.From(0.48)).Floor() + fix.Half
		if xFirst < fix.Half {
			xFirst = fix.Half
		}
		if xLast > ctx.maxX {
			xLast = ctx.maxX
		}

		x0y := x0.Mul(y)
		x1y := x1.Mul(y)
		x2y := x2.Mul(y)

		b0 := (cb0 + xFirst.Mul(y1) + x2y - xFirst.Mul(y2) - x1y).Mul(invD)
		b1 := (cb1 + xFirst.Mul(y2) + x0y - xFirst.Mul(y0) - x2y).Mul(invD)

		py := y.Int()
		ditherRow := ctx.cfg.DitherY + (py & 7)

		for x := xFirst; x <= xLast; x += fix.One {
			w0, w1 := b0, b1
			w2 := fix.One - w0 - w1
			b0 += db0dx
			b1 += db1dx

			// Weight each barycentric coordinate by its vertex's
			// perspective factor: a cheap z-weighted affine blend,
			// not true perspective correction.
			w0 = w0.Mul(z0)
			w1 = w1.Mul(z1)
			w2 = w2.Mul(z2)

			d2 := w0 + w1 + w2
			if d2.Abs() < fix.Epsilon {
				ctx.stats.DegenerateSpans++
				continue
			}
			invD2 := fix.One.Div(d2)
			u := (w0.Mul(uv0[0]) + w1.Mul(uv1[0]) + w2.Mul(uv2[0])).Mul(invD2)
			v := (w0.Mul(uv0[1]) + w1.Mul(uv1[1]) + w2.Mul(uv2[1])).Mul(invD2)

			px := x.Int()
			offsetX := tex.X
			dither := ctx.Atlas.Texel(ctx.cfg.DitherX+(px&7), ditherRow)
			if light <= fix.FromInt(7)+fix.FromInt(int(dither)).Mul(fix.From(0.125)) {
				offsetX += tex.LitX
			}

			ctx.Canvas.Set(px, py, ctx.Atlas.Texel(u.Int()+offsetX, v.Int()+tex.Y))
		}
	}
}

// DrawMesh sorts a mesh's triangles back-to-front and rasterizes them.
func (ctx *Context) DrawMesh(mesh *formats.Mesh) {
	SortTriangles(mesh.Triangles, mesh.Projected)
	for i := range mesh.Triangles {
		ctx.RasterizeTriangle(&mesh.Triangles[i], mesh.Projected)
	}
}
