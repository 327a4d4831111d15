package render

import (
	"github.com/wrenbyte/starlance/pkg/formats"
	"github.com/wrenbyte/starlance/pkg/geom"
)

// TransformPos applies the matrix to a point and perspective-projects
// it into screen space.
//
// The returned Z is not a depth: it holds the perspective factor
// c = projConst/z when c lands in the valid (0, 10] window, and 0
// otherwise ("behind or too close"). Downstream stages treat Z as this
// weight, never as a Euclidean distance.
func (ctx *Context) TransformPos(mat geom.Mat34, pos geom.Vec3) geom.Vec3 {
	p := mat.ApplyPoint(pos)

	// projConst is negative, so points in front of the camera
	// (negative camera-space z) produce a positive factor.
	c := ctx.cfg.ProjConst.Div(p.Z)

	out := geom.Vec3{
		X: ctx.centerX + p.X.Mul(c),
		Y: ctx.centerY - p.Y.Mul(c),
	}
	if c > 0 && c <= maxWeight {
		out.Z = c
	}
	return out
}

// ProjectMesh refreshes the mesh's projected-vertex buffer under the
// given model-to-camera matrix.
func (ctx *Context) ProjectMesh(mat geom.Mat34, mesh *formats.Mesh) {
	for i := range mesh.Vertices {
		mesh.Projected[i] = ctx.TransformPos(mat, mesh.Vertices[i])
	}
}
