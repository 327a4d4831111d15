// Package game implements the demo scene on top of the render
// pipeline: ship and camera motion, drifting enemies, the starfield
// background and the per-frame transform/sort/rasterize sequence.
package game

import (
	"fmt"

	"github.com/wrenbyte/starlance/internal/assets"
	"github.com/wrenbyte/starlance/internal/render"
	"github.com/wrenbyte/starlance/pkg/fix"
	"github.com/wrenbyte/starlance/pkg/formats"
	"github.com/wrenbyte/starlance/pkg/geom"
)

// Mode is the coarse scene state. The scene idles in an orbit view,
// blends the camera toward the flight position on Engage and then
// tracks the ship.
type Mode int

const (
	ModeOrbit Mode = iota
	ModeApproach
	ModeFlight
)

// Input is the per-frame control sample. DX/DY are steering axes in
// [-1, 1] fixed point, Engage starts the orbit-to-flight transition.
type Input struct {
	DX, DY fix.T
	Engage bool
}

// flightBounds clamps ship and enemy positions to a cube around the
// play axis.
var flightBounds = fix.FromInt(100)

// Scene holds everything the demo simulates: ship flight state, the
// camera, enemies and the background starfield.
type Scene struct {
	rng  *fix.Rand
	mode Mode
	tick fix.T

	// Ship flight state. Roll and pitch are spring-damped so steering
	// banks the hull instead of snapping it.
	shipX, shipY                     fix.T
	shipSpdX, shipSpdY               fix.T
	thrust                           fix.T
	flightT                          fix.T
	rollAngle, rollSpd, rollForce    fix.T
	pitchAngle, pitchSpd, pitchForce fix.T

	// Idle banking noise, interpolated between sampled targets. The
	// Out pair is the blended value applied to this frame's pose.
	noiseT, noiseTgtT                 fix.T
	noiseRoll, oldNoiseRoll           fix.T
	noisePitch, oldNoisePitch         fix.T
	curNoiseRollOut, curNoisePitchOut fix.T

	// Camera state plus the endpoints of the approach blend.
	camX, camY                                   fix.T
	camAngleX, camAngleZ                         fix.T
	camDepth                                     fix.T
	srcCamX, srcCamY, srcCamAngleX, srcCamAngleZ fix.T
	dstCamX, dstCamY, dstCamAngleX, dstCamAngleZ fix.T
	interpRatio, interpSpd                       fix.T

	gameSpd fix.T

	// Frame matrices, rebuilt by Update.
	camMat     geom.Mat34
	shipMat    geom.Mat34
	shipPosMat geom.Mat34
	invShipMat geom.Mat34
	lightMat   geom.Mat34

	lightDir     geom.Vec3
	shipLightDir geom.Vec3

	shipMesh    *formats.Mesh
	enemyMeshes [4]*formats.Mesh
	enemies     []*Enemy
	spawnT      fix.T

	stars   [starCount]starPoint
	sunProj geom.Vec3
}

// NewScene decodes the embedded meshes and seeds the demo state.
func NewScene(seed uint32) (*Scene, error) {
	s := &Scene{
		rng:      fix.NewRand(seed),
		camDepth: fix.From(22.5),
		gameSpd:  fix.One,
	}

	r := formats.NewReader(assets.MeshData())
	var diag formats.Diagnostics
	s.shipMesh, diag = formats.DecodeMesh(r, fix.One)
	if !diag.Clean() {
		return nil, fmt.Errorf("ship mesh: %+v", diag)
	}
	for i := range s.enemyMeshes {
		s.enemyMeshes[i], diag = formats.DecodeMesh(r, assets.EnemyScales[i])
		if !diag.Clean() {
			return nil, fmt.Errorf("enemy mesh %d: %+v", i, diag)
		}
	}

	// Start the orbit view tilted off axis so the idle pan has
	// something to show.
	s.camAngleZ = fix.From(-0.4)
	sign := fix.FromInt(s.rng.IntN(2)*2 - 1)
	s.camAngleX = sign.Mul(fix.From(0.03) + s.rng.Next(fix.From(0.1)))

	s.initStars()
	return s, nil
}

// Mode reports the current scene state.
func (s *Scene) Mode() Mode { return s.mode }

// ShipPosition reports the ship's lateral position on the play plane.
func (s *Scene) ShipPosition() (x, y fix.T) { return s.shipX, s.shipY }

// Update advances the scene one fixed step: camera and ship motion,
// enemy drift, starfield scroll and the frame matrices.
func (s *Scene) Update(in Input) {
	s.tick += fix.One

	switch s.mode {
	case ModeOrbit:
		s.updateOrbit(in)
	case ModeApproach:
		s.updateApproach()
	case ModeFlight:
		s.updateFlight(in)
	}

	s.updateBankingNoise()
	s.buildCameraMatrix()
	s.buildShipMatrix()

	if s.mode == ModeFlight {
		s.updateEnemies()
	}
	s.updateStars()
	s.updateLight()
}

// updateOrbit pans the idle camera with the steering axes, drifting
// slowly on its own when no input is held.
func (s *Scene) updateOrbit(in Input) {
	dx, dy := in.DX, in.DY
	if dx == 0 && dy == 0 {
		dx = fix.From(-0.25)
	}
	s.camAngleZ += dx.Mul(fix.From(0.007))
	s.camAngleX -= dy.Mul(fix.From(0.007))

	if in.Engage {
		s.beginApproach()
	}
}

// beginApproach captures the orbit pose and the flight pose and sizes
// the blend speed by the distance between them.
func (s *Scene) beginApproach() {
	s.srcCamAngleZ = fix.NormalizeAngle(s.camAngleZ)
	s.srcCamAngleX = fix.NormalizeAngle(s.camAngleX)
	s.srcCamX = s.camX
	s.srcCamY = s.camY

	s.dstCamX = fix.From(1.05).Mul(s.shipX)
	s.dstCamY = s.shipY + fix.From(11.5)
	s.dstCamAngleZ = s.dstCamX.Mul(fix.From(0.0005))
	s.dstCamAngleX = s.dstCamY.Mul(fix.From(0.0003))

	diff := geom.Vec3{
		X: s.srcCamX - s.dstCamX,
		Y: s.srcCamY - s.dstCamY,
		Z: fix.From(3.5),
	}
	length := diff.Length()
	s.interpSpd = fix.One
	if length > fix.From(0.01) {
		s.interpSpd = fix.From(0.25).Div(length)
	}
	s.interpRatio = 0
	s.mode = ModeApproach
}

// updateApproach blends the camera from the orbit pose to the flight
// pose along a smoothstep ramp.
func (s *Scene) updateApproach() {
	s.interpRatio += s.interpSpd
	if s.interpRatio >= fix.One {
		s.mode = ModeFlight
		return
	}

	r := fix.Smoothstep(s.interpRatio)
	s.camX = s.srcCamX + r.Mul(s.dstCamX-s.srcCamX)
	s.camY = s.srcCamY + r.Mul(s.dstCamY-s.srcCamY)
	s.camDepth = fix.From(22.5) + r.Mul(fix.From(3.5))
	s.camAngleZ = s.srcCamAngleZ + r.Mul(s.dstCamAngleZ-s.srcCamAngleZ)
	s.camAngleX = s.srcCamAngleX + r.Mul(s.dstCamAngleX-s.srcCamAngleX)
}

// updateFlight integrates ship velocity from steering with a ramping
// thrust, pushes back at the play bounds and keeps the camera trailing
// the hull. Scene speed creeps up the longer the flight runs.
func (s *Scene) updateFlight(in Input) {
	s.flightT += fix.From(0.033)
	s.gameSpd = fix.One + s.flightT.Mul(fix.From(0.002))

	dx, dy := in.DX, in.DY
	if dx == 0 && dy == 0 {
		s.thrust = 0
	} else {
		s.thrust = fix.Min(fix.Half, s.thrust+fix.From(0.1))
	}

	if s.shipX.Abs() > flightBounds {
		dx = -s.shipX.Sgn().Mul(fix.From(0.4))
	}
	if s.shipY.Abs() > flightBounds {
		dy = -s.shipY.Sgn().Mul(fix.From(0.4))
	}

	s.shipSpdX += dx.Mul(s.thrust)
	s.shipSpdY += dy.Mul(s.thrust)

	s.rollForce -= fix.From(0.003).Mul(dx)
	s.pitchForce += fix.From(0.0008).Mul(dy)

	s.shipSpdX = s.shipSpdX.Mul(fix.From(0.85))
	s.shipSpdY = s.shipSpdY.Mul(fix.From(0.85))

	s.shipX += s.shipSpdX
	s.shipY += s.shipSpdY

	s.camX = fix.From(1.05).Mul(s.shipX)
	s.camY = s.shipY + fix.From(11.5)
	s.camAngleZ = s.camX.Mul(fix.From(0.0005))
	s.camAngleX = s.camY.Mul(fix.From(0.0003))
}

// updateBankingNoise keeps the hull alive at rest: a slow random walk
// of roll and pitch targets, smoothstepped between samples and damped
// while the ship is actually rolling.
func (s *Scene) updateBankingNoise() {
	s.noiseT += fix.One
	attenuation := fix.Cos(fix.Mid(fix.From(-0.25), s.rollAngle.Mul(fix.From(1.2)), fix.From(0.25)))

	if s.noiseT > s.noiseTgtT {
		s.oldNoiseRoll = s.noiseRoll
		s.oldNoisePitch = s.noisePitch
		s.noiseT = 0

		sign := -s.noiseRoll.Sgn()
		if sign == 0 {
			sign = fix.One
		}
		s.noiseRoll = sign.Mul(fix.From(0.01) + s.rng.Next(fix.From(0.03)))
		s.noiseTgtT = (fix.FromInt(60) + s.rng.Next(fix.FromInt(40))).
			Mul(attenuation).
			Mul((s.noiseRoll - s.oldNoiseRoll).Abs()).
			Mul(fix.FromInt(10))
		s.noisePitch = s.rng.Sym(fix.From(0.01))
	}

	var ratio fix.T
	if s.noiseTgtT > 0 {
		ratio = fix.Smoothstep(s.noiseT.Div(s.noiseTgtT))
	}

	s.rollForce -= s.rollAngle.Mul(fix.From(0.02))
	s.rollSpd = s.rollSpd.Mul(fix.From(0.8)) + s.rollForce
	s.rollAngle += s.rollSpd

	s.pitchForce -= s.pitchAngle.Mul(fix.From(0.02))
	s.pitchSpd = s.pitchSpd.Mul(fix.From(0.8)) + s.pitchForce
	s.pitchAngle += s.pitchSpd

	s.rollForce = 0
	s.pitchForce = 0

	s.curNoiseRollOut = attenuation.Mul(s.oldNoiseRoll + ratio.Mul(s.noiseRoll-s.oldNoiseRoll))
	s.curNoisePitchOut = attenuation.Mul(s.oldNoisePitch + ratio.Mul(s.noisePitch-s.oldNoisePitch))

	s.rollAngle = fix.NormalizeAngle(s.rollAngle)
}

// buildCameraMatrix composes depth offset, pitch, yaw and lateral
// tracking into the world-to-camera transform.
func (s *Scene) buildCameraMatrix() {
	s.camMat = geom.Translation(0, 0, -s.camDepth).
		Mul(geom.RotX(s.camAngleX)).
		Mul(geom.RotY(s.camAngleZ)).
		Mul(geom.Translation(-s.camX, -s.camY, 0))
}

// buildShipMatrix poses the hull from pitch and roll, keeps the
// rotational inverse for lighting and moves both into camera space.
func (s *Scene) buildShipMatrix() {
	s.shipPosMat = geom.Translation(s.shipX, s.shipY, 0)
	s.shipMat = s.shipPosMat.
		Mul(geom.RotX(fix.NormalizeAngle(s.pitchAngle + s.curNoisePitchOut))).
		Mul(geom.RotZ(fix.NormalizeAngle(s.rollAngle + s.curNoiseRollOut)))

	s.invShipMat = s.shipMat.TransposeRot()

	s.shipMat = s.camMat.Mul(s.shipMat)
	s.shipPosMat = s.camMat.Mul(s.shipPosMat)
}

// updateLight slowly orbits the key light and rotates it into the
// ship's local frame for shading.
func (s *Scene) updateLight() {
	s.lightMat = geom.RotX(fix.From(0.14)).
		Mul(geom.RotY(fix.From(0.34) + s.tick.Mul(fix.From(0.003))))
	s.lightDir = s.lightMat.ApplyDir(geom.Vec3{Z: -fix.One})
	s.shipLightDir = s.invShipMat.ApplyDir(s.lightDir)
}

// Draw renders one frame: starfield, enemies far to near, then the
// sorted ship mesh.
func (s *Scene) Draw(ctx *render.Context, canvas *render.PixelBuffer) {
	canvas.Clear(0)
	ctx.Canvas = canvas
	ctx.Atlas = assets.Atlas()

	s.drawStars(ctx, canvas)
	s.drawSun(ctx, canvas)

	if s.mode == ModeFlight {
		s.drawEnemies(ctx)
	}

	// Ship last: it sits nearest the camera, and its concave hull is
	// the one mesh that needs per-triangle depth sorting.
	ctx.Texture = assets.ShipTexture
	ctx.LightDir = s.shipLightDir
	ctx.ProjectMesh(s.shipMat, s.shipMesh)
	ctx.DrawMesh(s.shipMesh)
}
