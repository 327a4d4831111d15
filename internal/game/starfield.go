package game

import (
	"github.com/wrenbyte/starlance/internal/render"
	"github.com/wrenbyte/starlance/pkg/fix"
	"github.com/wrenbyte/starlance/pkg/geom"
)

const (
	starCount = 32
	starDepth = 400
)

// starColors are the dim palette indices a star flickers through when
// it is not drawn white.
var starColors = [3]uint8{12, 13, 6}

// starPoint is one background star: a point on a cylinder around the
// flight axis scrolling toward the camera.
type starPoint struct {
	pos   geom.Vec3
	spd   fix.T
	color uint8
}

func (s *Scene) initStars() {
	for i := range s.stars {
		s.initStar(&s.stars[i], s.rng.Sym(fix.FromInt(starDepth)))
	}
}

// initStar places a star on a ring well outside the play bounds so it
// never crosses the ship.
func (s *Scene) initStar(st *starPoint, z fix.T) {
	angle := s.rng.Next(fix.One)
	radius := fix.FromInt(150) + s.rng.Next(fix.FromInt(150))
	st.pos = geom.Vec3{
		X: radius.Mul(fix.Cos(angle)),
		Y: radius.Mul(-fix.Sin(angle)),
		Z: z,
	}
	st.spd = fix.From(0.05) + s.rng.Next(fix.From(0.05))
	st.color = starColors[s.rng.IntN(len(starColors))]
}

func (s *Scene) updateStars() {
	for i := range s.stars {
		st := &s.stars[i]
		st.pos.Z += st.spd.Mul(s.gameSpd)
		if st.pos.Z >= fix.FromInt(starDepth) {
			s.initStar(st, fix.FromInt(-starDepth))
		}
	}
}

// drawStars projects each star through the ship-centered transform and
// plots a single pixel, flickering between white and the star's dim
// color.
func (s *Scene) drawStars(ctx *render.Context, canvas *render.PixelBuffer) {
	for i := range s.stars {
		st := &s.stars[i]
		p := ctx.TransformPos(s.shipPosMat, st.pos)
		if p.Z <= 0 {
			continue
		}
		c := uint8(7)
		if s.rng.Next(fix.One) > fix.Half {
			c = st.color
		}
		canvas.Set(p.X.Int(), p.Y.Int(), c)
	}
}

// drawSun plots the key light's source point, a small bright cross at
// the far end of the light direction.
func (s *Scene) drawSun(ctx *render.Context, canvas *render.PixelBuffer) {
	sunPos := geom.Vec3{
		X: s.lightMat[2].Mul(fix.FromInt(100)),
		Y: s.lightMat[6].Mul(fix.FromInt(100)),
		Z: s.lightMat[10].Mul(fix.FromInt(100)),
	}
	s.sunProj = ctx.TransformPos(s.shipPosMat, sunPos)
	if s.sunProj.Z <= 0 {
		return
	}

	x, y := s.sunProj.X.Int(), s.sunProj.Y.Int()
	canvas.Set(x, y, 7)
	canvas.Set(x-1, y, 7)
	canvas.Set(x+1, y, 7)
	canvas.Set(x, y-1, 7)
	canvas.Set(x, y+1, 7)
}
