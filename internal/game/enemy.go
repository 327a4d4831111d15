package game

import (
	"github.com/wrenbyte/starlance/internal/assets"
	"github.com/wrenbyte/starlance/internal/render"
	"github.com/wrenbyte/starlance/pkg/fix"
	"github.com/wrenbyte/starlance/pkg/geom"
)

const maxEnemies = 8

// Per-class steering tables for the powered classes (drones fall
// toward the camera unpowered). Bounds is the cruising depth a class
// holds, speed its velocity cap, yaw how hard it banks into lateral
// motion.
var (
	classBounds = [4]fix.T{0, fix.FromInt(-50), fix.FromInt(-50), fix.FromInt(-100)}
	classSpeed  = [4]fix.T{0, fix.One, fix.Half, fix.From(0.6)}
	classYaw    = [4]fix.T{0, fix.From(0.18), fix.From(0.24), fix.From(0.06)}
)

// Enemy is one drifting object: a mesh class, world motion state and
// a private projection buffer so instances of the same class never
// clobber each other's screen-space vertices.
type Enemy struct {
	Class    int
	Pos      geom.Vec3
	Spd      geom.Vec3
	RotX     fix.T
	RotY     fix.T
	RotXSpd  fix.T
	RotYSpd  fix.T
	Waypoint geom.Vec3

	lightDir geom.Vec3
	proj     []geom.Vec3
}

// spawnEnemy places a new object of the given class deep in the scene,
// roughly ahead of the ship.
func (s *Scene) spawnEnemy(class int) *Enemy {
	if len(s.enemies) >= maxEnemies {
		return nil
	}

	e := &Enemy{
		Class: class,
		proj:  make([]geom.Vec3, len(s.enemyMeshes[class].Vertices)),
	}

	if class == 0 {
		// Drones tumble in on a fixed velocity.
		px := fix.Mid(-flightBounds, s.shipX+s.rng.Sym(fix.FromInt(30)), flightBounds)
		py := fix.Mid(-flightBounds, s.shipY+s.rng.Sym(fix.FromInt(30)), flightBounds)
		e.Pos = geom.Vec3{X: px, Y: py, Z: fix.FromInt(-50)}
		e.Spd = geom.Vec3{
			X: fix.Mid((-flightBounds - px).Mul(fix.From(0.005)), s.rng.Sym(fix.From(0.25)), (flightBounds - px).Mul(fix.From(0.005))),
			Y: fix.Mid((-flightBounds - py).Mul(fix.From(0.005)), s.rng.Sym(fix.From(0.25)), (flightBounds - py).Mul(fix.From(0.005))),
			Z: fix.From(0.25),
		}
		e.RotXSpd = s.rng.Sym(fix.From(0.015))
		e.RotYSpd = s.rng.Sym(fix.From(0.015))
	} else {
		depth := classBounds[class].Mul(fix.Two)
		e.Pos = geom.Vec3{
			X: fix.Mid(-flightBounds, s.shipX+s.rng.Sym(fix.FromInt(50)), flightBounds),
			Y: fix.Mid(-flightBounds, s.shipY+s.rng.Sym(fix.FromInt(50)), flightBounds),
			Z: depth - fix.FromInt(200),
		}
		e.Spd = geom.Vec3{Z: fix.FromInt(8)}
		e.Waypoint = e.Pos
		e.Waypoint.Z = depth
	}

	s.enemies = append(s.enemies, e)
	return e
}

// updateEnemies integrates motion, steers the powered classes through
// random waypoints, retires anything that crosses the camera plane and
// keeps the roster topped up. Finally the roster is ordered far to
// near so the draw loop paints distant objects first.
func (s *Scene) updateEnemies() {
	kept := s.enemies[:0]
	for _, e := range s.enemies {
		e.Pos = e.Pos.Add(e.Spd.Scale(s.gameSpd))
		e.RotX += e.RotXSpd
		e.RotY += e.RotYSpd

		if e.Class > 0 {
			s.steerEnemy(e)
		}

		if e.Pos.Z > 0 {
			continue
		}
		kept = append(kept, e)
	}
	s.enemies = kept

	s.spawnT -= fix.One
	if s.spawnT <= 0 {
		s.spawnT = (fix.FromInt(30) + s.rng.Next(fix.FromInt(60))).Div(s.gameSpd)
		s.spawnEnemy(s.rng.IntN(4))
	}

	// Insertion sort, nearest (largest Z) first so the reverse draw
	// loop runs back to front.
	for i := 1; i < len(s.enemies); i++ {
		e := s.enemies[i]
		j := i - 1
		for j >= 0 && e.Pos.Z > s.enemies[j].Pos.Z {
			s.enemies[j+1] = s.enemies[j]
			j--
		}
		s.enemies[j+1] = e
	}
}

// steerEnemy accelerates a powered enemy toward its waypoint,
// re-rolling the waypoint when reached, and caps speed once it has
// descended to its cruising depth. Bank angles follow velocity.
func (s *Scene) steerEnemy(e *Enemy) {
	bounds := classBounds[e.Class]
	speed := classSpeed[e.Class]

	dir := e.Waypoint.Sub(e.Pos).Scale(fix.From(0.1))
	dist := dir.Dot(dir)
	if dist < s.gameSpd.Mul(s.gameSpd) {
		e.Waypoint = geom.Vec3{
			X: s.rng.Sym(fix.FromInt(100)),
			Y: s.rng.Sym(fix.FromInt(100)),
			Z: bounds - s.rng.Next(-bounds),
		}
	}

	dir = dir.Normalize()
	e.Spd.X += dir.X.Mul(speed).Mul(fix.From(0.1))
	e.Spd.Y += dir.Y.Mul(speed).Mul(fix.From(0.1))
	e.Spd.Z += dir.Z.Mul(speed).Mul(fix.From(0.1))

	if e.Pos.Z >= bounds.Mul(fix.Two) {
		if spdLen := e.Spd.Length(); spdLen > speed {
			e.Spd = e.Spd.Scale(speed.Div(spdLen))
		}
		e.RotX = fix.From(-0.08).Mul(e.Spd.Y)
		e.RotY = -classYaw[e.Class].Mul(e.Spd.X)
	}
}

// drawEnemies projects and rasterizes the roster in reverse order,
// farthest first. Convex hulls need no per-triangle sort, backface
// culling alone resolves self-occlusion.
func (s *Scene) drawEnemies(ctx *render.Context) {
	for i := len(s.enemies) - 1; i >= 0; i-- {
		e := s.enemies[i]
		mesh := s.enemyMeshes[e.Class]

		mat := geom.Translation(e.Pos.X, e.Pos.Y, e.Pos.Z).
			Mul(geom.RotX(e.RotX)).
			Mul(geom.RotZ(e.RotY))

		e.lightDir = mat.TransposeRot().ApplyDir(s.lightDir)

		final := s.camMat.Mul(mat)
		for j := range mesh.Vertices {
			e.proj[j] = ctx.TransformPos(final, mesh.Vertices[j])
		}

		ctx.Texture = assets.EnemyTexture(e.Class)
		ctx.LightDir = e.lightDir
		for j := range mesh.Triangles {
			ctx.RasterizeTriangle(&mesh.Triangles[j], e.proj)
		}
	}
}
