package formats

import (
	"errors"
	"fmt"

	"github.com/wrenbyte/starlance/pkg/fix"
)

// MaxEncodableEntries is the largest vertex or triangle count the byte
// stream can carry: the count byte stores count*2 in a signed byte, so
// anything past 63 doubles out of range.
const MaxEncodableEntries = 63

// ErrMeshTooLarge reports a mesh whose vertex or triangle count does
// not fit the count byte.
var ErrMeshTooLarge = errors.New("formats: mesh exceeds encodable entry count")

// EncodeMesh serializes a mesh back into the byte-stream format,
// assuming unit decode scale. Components are rounded to the nearest
// representable half-unit; values outside [-64, 63.5] wrap like the
// original pipeline's byte arithmetic. Meshes with more than
// MaxEncodableEntries vertices or triangles are rejected rather than
// written with a wrapped count. Used by asset tooling and the embedded
// demo data, not by the runtime pipeline.
func EncodeMesh(m *Mesh) ([]byte, error) {
	if len(m.Vertices) > MaxEncodableEntries {
		return nil, fmt.Errorf("%w: %d vertices", ErrMeshTooLarge, len(m.Vertices))
	}
	if len(m.Triangles) > MaxEncodableEntries {
		return nil, fmt.Errorf("%w: %d triangles", ErrMeshTooLarge, len(m.Triangles))
	}

	var buf []byte

	put := func(v int) {
		buf = append(buf, byte(v))
	}
	putScalar := func(v fix.T) {
		// Inverse of the halved-byte decode: double and round.
		put((v.Mul(fix.Two) + fix.Half).Floor().Int())
	}

	put(len(m.Vertices) * 2)
	for _, v := range m.Vertices {
		putScalar(v.X)
		putScalar(v.Y)
		putScalar(v.Z)
	}

	put(len(m.Triangles) * 2)
	for _, tri := range m.Triangles {
		n := [3]fix.T{tri.Normal.X, tri.Normal.Y, tri.Normal.Z}
		for c := 0; c < 3; c++ {
			put((tri.Index[c] + 1) * 2)
			putScalar(n[c].Mul(normalScale))
			putScalar(tri.UV[c][0])
			putScalar(tri.UV[c][1])
		}
	}

	return buf, nil
}
