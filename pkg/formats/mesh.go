// Package formats provides parsers for Starlance asset formats.
// Mesh blobs are a compact byte-stream format shared with the
// original handheld data, so the decode arithmetic here must stay
// bit-for-bit stable.
package formats

import (
	"github.com/wrenbyte/starlance/pkg/fix"
	"github.com/wrenbyte/starlance/pkg/geom"
)

// MaxMeshEntries caps vertex and triangle counts at decode time.
// Counts above the cap are silently clamped, never rejected, so a
// corrupt blob degrades to a smaller mesh rather than an error.
const MaxMeshEntries = 256

// normalScale maps a halved signed byte (roughly [-64, 63.5]) into
// [-1, 1] when decoding face normal components.
var normalScale = fix.From(63.5)

// Triangle is one indexed, per-corner-attributed face of a mesh.
type Triangle struct {
	// Index holds 0-based indices into the mesh vertex list. -1 marks
	// an unused slot; such triangles are skipped by every pipeline
	// stage.
	Index [3]int

	// UV holds one texel-offset pair per corner. These are raw atlas
	// offsets, not normalized coordinates.
	UV [3][2]fix.T

	// Normal is the face normal, assembled one component per corner
	// from the byte stream.
	Normal geom.Vec3

	// Depth is a transient sort key owned by the depth sorter. It is
	// not part of the triangle's identity.
	Depth fix.T
}

// Mesh is a decoded model: immutable vertex and triangle lists plus a
// parallel projected-vertex buffer rewritten every frame by the
// transform stage.
type Mesh struct {
	Vertices  []geom.Vec3
	Projected []geom.Vec3
	Triangles []Triangle
}

// Diagnostics reports what the decoder had to clamp or mark degenerate.
// The original data never trips any of these; they exist so tooling and
// tests can observe silent-clamp behavior.
type Diagnostics struct {
	VertexCountClamped   bool
	TriangleCountClamped bool
	IndicesOutOfRange    int // corner indices clamped to the unused sentinel
	UnusedSlots          int // corners decoded as the unused sentinel
}

// Clean reports whether the decode pass saw fully well-formed data.
func (d Diagnostics) Clean() bool {
	return !d.VertexCountClamped && !d.TriangleCountClamped &&
		d.IndicesOutOfRange == 0 && d.UnusedSlots == 0
}

// Reader is a cursor over a shared asset buffer. Consecutive meshes are
// decoded by repeated DecodeMesh calls on the same reader. Reads past
// the end yield zero bytes; exhaustion is not distinguished from a
// legitimately small mesh.
type Reader struct {
	data []byte
	pos  int
}

// NewReader returns a cursor positioned at the start of the buffer.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current cursor offset, for tooling.
func (r *Reader) Pos() int {
	return r.pos
}

// next reads one raw byte as a signed value in [-128, 127].
func (r *Reader) next() int {
	if r.pos >= len(r.data) {
		return 0
	}
	b := int(r.data[r.pos])
	r.pos++
	if b >= 128 {
		b -= 256
	}
	return b
}

// scalar reads one byte as a halved fixed-point magnitude in
// [-64, 63.5].
func (r *Reader) scalar() fix.T {
	return fix.FromInt(r.next()) >> 1
}

// count reads one byte as a pre-halved integer, truncating toward zero.
func (r *Reader) count() int {
	return r.next() / 2
}

// DecodeMesh decodes one mesh at the cursor, scaling every vertex
// component by scale. Malformed counts are clamped and dangling indices
// are marked unused; decode never fails.
func DecodeMesh(r *Reader, scale fix.T) (*Mesh, Diagnostics) {
	var diag Diagnostics

	nbVert := r.count()
	if nbVert < 0 {
		nbVert = 0
		diag.VertexCountClamped = true
	}
	if nbVert > MaxMeshEntries {
		nbVert = MaxMeshEntries
		diag.VertexCountClamped = true
	}

	// Minimum length 1 keeps the parallel buffers well-defined for
	// empty meshes.
	alloc := nbVert
	if alloc == 0 {
		alloc = 1
	}
	mesh := &Mesh{
		Vertices:  make([]geom.Vec3, nbVert, alloc),
		Projected: make([]geom.Vec3, nbVert, alloc),
	}

	for i := 0; i < nbVert; i++ {
		mesh.Vertices[i] = geom.Vec3{
			X: r.scalar().Mul(scale),
			Y: r.scalar().Mul(scale),
			Z: r.scalar().Mul(scale),
		}
	}

	nbTri := r.count()
	if nbTri < 0 {
		nbTri = 0
		diag.TriangleCountClamped = true
	}
	if nbTri > MaxMeshEntries {
		nbTri = MaxMeshEntries
		diag.TriangleCountClamped = true
	}
	mesh.Triangles = make([]Triangle, nbTri)

	for i := 0; i < nbTri; i++ {
		tri := &mesh.Triangles[i]
		var n [3]fix.T
		for c := 0; c < 3; c++ {
			// Stored indices are 1-based; 0 decodes to the unused
			// sentinel.
			idx := r.count() - 1
			if idx >= nbVert {
				idx = -1
				diag.IndicesOutOfRange++
			} else if idx < -1 {
				idx = -1
				diag.IndicesOutOfRange++
			} else if idx == -1 {
				diag.UnusedSlots++
			}
			tri.Index[c] = idx

			n[c] = r.scalar().Div(normalScale)
			tri.UV[c][0] = r.scalar()
			tri.UV[c][1] = r.scalar()
		}
		tri.Normal = geom.Vec3{X: n[0], Y: n[1], Z: n[2]}
	}

	return mesh, diag
}
