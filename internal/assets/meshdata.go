package assets

import (
	"math"

	"github.com/wrenbyte/starlance/pkg/fix"
	"github.com/wrenbyte/starlance/pkg/formats"
	"github.com/wrenbyte/starlance/pkg/geom"
)

// meshSpec is the authoring form of a mesh: integer vertex positions
// on the byte grid, one UV per vertex, and outward-wound faces. Face
// normals are derived from the winding when the blob is built.
type meshSpec struct {
	verts [][3]int
	uvs   [][2]int
	faces [][3]int
}

// shipSpec is the player dart: nose, two wingtips, a dorsal fin and a
// keel.
var shipSpec = meshSpec{
	verts: [][3]int{
		{0, 0, -6},
		{-4, 0, 4},
		{4, 0, 4},
		{0, 2, 3},
		{0, -1, 3},
	},
	uvs: [][2]int{
		{8, 0},
		{0, 15},
		{15, 15},
		{8, 5},
		{8, 12},
	},
	faces: [][3]int{
		{0, 3, 1},
		{0, 2, 3},
		{0, 1, 4},
		{0, 4, 2},
		{1, 3, 2},
		{1, 2, 4},
	},
}

// enemySpecs holds the four enemy classes at unit scale; the decode
// scale in EnemyScales sizes them.
var enemySpecs = [4]meshSpec{
	// Drone: tetrahedron.
	{
		verts: [][3]int{{0, 3, 0}, {-3, -2, 2}, {3, -2, 2}, {0, -2, -3}},
		uvs:   [][2]int{{8, 0}, {0, 15}, {15, 15}, {8, 8}},
		faces: [][3]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 1}, {1, 3, 2}},
	},
	// Interceptor: octahedron.
	{
		verts: [][3]int{{0, 4, 0}, {0, -4, 0}, {4, 0, 0}, {-4, 0, 0}, {0, 0, 4}, {0, 0, -4}},
		uvs:   [][2]int{{8, 0}, {8, 15}, {15, 8}, {0, 8}, {4, 4}, {12, 12}},
		faces: [][3]int{
			{0, 4, 2}, {0, 2, 5}, {0, 5, 3}, {0, 3, 4},
			{1, 2, 4}, {1, 5, 2}, {1, 3, 5}, {1, 4, 3},
		},
	},
	// Cruiser: elongated hull box.
	{
		verts: [][3]int{
			{-6, -2, -3}, {6, -2, -3}, {6, 2, -3}, {-6, 2, -3},
			{-6, -2, 3}, {6, -2, 3}, {6, 2, 3}, {-6, 2, 3},
		},
		uvs: [][2]int{
			{0, 0}, {15, 0}, {15, 5}, {0, 5},
			{0, 10}, {15, 10}, {15, 15}, {0, 15},
		},
		faces: [][3]int{
			{0, 2, 1}, {0, 3, 2},
			{4, 5, 6}, {4, 6, 7},
			{0, 1, 5}, {0, 5, 4},
			{3, 6, 2}, {3, 7, 6},
			{1, 2, 6}, {1, 6, 5},
			{0, 4, 7}, {0, 7, 3},
		},
	},
	// Asteroid: lopsided octahedron.
	{
		verts: [][3]int{{0, 5, 0}, {0, -6, 1}, {5, 0, -1}, {-4, 0, 0}, {1, 0, 4}, {-1, 1, -5}},
		uvs:   [][2]int{{8, 0}, {8, 15}, {15, 8}, {0, 8}, {5, 5}, {11, 11}},
		faces: [][3]int{
			{0, 4, 2}, {0, 2, 5}, {0, 5, 3}, {0, 3, 4},
			{1, 2, 4}, {1, 5, 2}, {1, 3, 5}, {1, 4, 3},
		},
	},
}

// build assembles the table into a decoded-form mesh.
func (s meshSpec) build() *formats.Mesh {
	m := &formats.Mesh{
		Vertices:  make([]geom.Vec3, len(s.verts)),
		Projected: make([]geom.Vec3, len(s.verts)),
		Triangles: make([]formats.Triangle, len(s.faces)),
	}
	for i, v := range s.verts {
		m.Vertices[i] = geom.Vec3{
			X: fix.FromInt(v[0]),
			Y: fix.FromInt(v[1]),
			Z: fix.FromInt(v[2]),
		}
	}
	for i, f := range s.faces {
		tri := &m.Triangles[i]
		tri.Index = f
		tri.Normal = faceNormal(s.verts[f[0]], s.verts[f[1]], s.verts[f[2]])
		for c := 0; c < 3; c++ {
			uv := s.uvs[f[c]]
			tri.UV[c] = [2]fix.T{fix.FromInt(uv[0]), fix.FromInt(uv[1])}
		}
	}
	return m
}

// faceNormal computes the unit normal of a wound face. Authoring runs
// in float; only the encoded blob feeds the fixed-point pipeline.
func faceNormal(a, b, c [3]int) geom.Vec3 {
	ux := float64(b[0] - a[0])
	uy := float64(b[1] - a[1])
	uz := float64(b[2] - a[2])
	vx := float64(c[0] - a[0])
	vy := float64(c[1] - a[1])
	vz := float64(c[2] - a[2])

	nx := uy*vz - uz*vy
	ny := uz*vx - ux*vz
	nz := ux*vy - uy*vx

	l := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if l == 0 {
		return geom.Vec3{}
	}
	return geom.Vec3{
		X: fix.From(nx / l),
		Y: fix.From(ny / l),
		Z: fix.From(nz / l),
	}
}

// mustEncode serializes an authored mesh, panicking on tables too
// large for the stream format. The tables are compile-time data, so a
// failure here is a programming error caught by the package tests.
func mustEncode(m *formats.Mesh) []byte {
	blob, err := formats.EncodeMesh(m)
	if err != nil {
		panic(err)
	}
	return blob
}

// buildMeshData encodes the ship and enemy meshes into one blob
// stream, decoded back with a shared cursor at load.
func buildMeshData() []byte {
	var blob []byte
	blob = append(blob, mustEncode(shipSpec.build())...)
	for _, spec := range enemySpecs {
		blob = append(blob, mustEncode(spec.build())...)
	}
	return blob
}
