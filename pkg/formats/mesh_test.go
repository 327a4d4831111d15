package formats

import (
	"reflect"
	"testing"

	"github.com/wrenbyte/starlance/pkg/fix"
)

// enc encodes a small integer the way the asset pipeline does: the
// stored byte is the doubled value, so the halving decode recovers it.
func enc(v int) byte {
	return byte(v * 2)
}

// buildMesh assembles a blob with the given vertex coordinates (in
// integer units) and triangle corner tuples (index, normal, u, v).
func buildMesh(verts [][3]int, tris [][3][4]int) []byte {
	var buf []byte
	buf = append(buf, enc(len(verts)))
	for _, v := range verts {
		buf = append(buf, enc(v[0]), enc(v[1]), enc(v[2]))
	}
	buf = append(buf, enc(len(tris)))
	for _, tri := range tris {
		for _, c := range tri {
			buf = append(buf, enc(c[0]), byte(c[1]), enc(c[2]), enc(c[3]))
		}
	}
	return buf
}

func simpleBlob() []byte {
	return buildMesh(
		[][3]int{{1, 2, 3}, {4, 5, 6}, {-7, 8, -9}},
		[][3][4]int{{
			{1, 127, 0, 1},
			{2, 127, 2, 3},
			{3, 127, 4, 5},
		}},
	)
}

func TestDecodeMesh_Deterministic(t *testing.T) {
	a, _ := DecodeMesh(NewReader(simpleBlob()), fix.One)
	b, _ := DecodeMesh(NewReader(simpleBlob()), fix.One)
	if !reflect.DeepEqual(a, b) {
		t.Error("two decodes of the same blob differ")
	}
}

func TestDecodeMesh_Vertices(t *testing.T) {
	mesh, diag := DecodeMesh(NewReader(simpleBlob()), fix.One)
	if !diag.Clean() {
		t.Errorf("unexpected diagnostics: %+v", diag)
	}
	if len(mesh.Vertices) != 3 {
		t.Fatalf("got %d vertices, want 3", len(mesh.Vertices))
	}
	if len(mesh.Projected) != len(mesh.Vertices) {
		t.Errorf("projected buffer length %d, want %d", len(mesh.Projected), len(mesh.Vertices))
	}
	if mesh.Vertices[2].X != fix.FromInt(-7) {
		t.Errorf("vertex 2 X = %v, want -7", mesh.Vertices[2].X.Float())
	}
	if mesh.Vertices[1].Z != fix.FromInt(6) {
		t.Errorf("vertex 1 Z = %v, want 6", mesh.Vertices[1].Z.Float())
	}
}

func TestDecodeMesh_Scale(t *testing.T) {
	mesh, _ := DecodeMesh(NewReader(simpleBlob()), fix.From(2.5))
	if mesh.Vertices[0].Y != fix.FromInt(5) {
		t.Errorf("scaled vertex Y = %v, want 5", mesh.Vertices[0].Y.Float())
	}
}

func TestDecodeMesh_Triangle(t *testing.T) {
	mesh, _ := DecodeMesh(NewReader(simpleBlob()), fix.One)
	if len(mesh.Triangles) != 1 {
		t.Fatalf("got %d triangles, want 1", len(mesh.Triangles))
	}
	tri := mesh.Triangles[0]

	// Stored indices are 1-based.
	if tri.Index != [3]int{0, 1, 2} {
		t.Errorf("indices = %v, want [0 1 2]", tri.Index)
	}

	// Normal byte 127 halves to 63.5, which maps to exactly 1.0.
	if tri.Normal.X != fix.One || tri.Normal.Y != fix.One || tri.Normal.Z != fix.One {
		t.Errorf("normal = %v, want (1,1,1)", tri.Normal)
	}

	// UVs are raw halved bytes used directly as texel offsets.
	if tri.UV[1][0] != fix.FromInt(2) || tri.UV[1][1] != fix.FromInt(3) {
		t.Errorf("corner 1 UV = %v, want (2,3)", tri.UV[1])
	}
}

func TestDecodeMesh_UnusedSlotSentinel(t *testing.T) {
	blob := buildMesh(
		[][3]int{{0, 0, 0}},
		[][3][4]int{{
			{0, 0, 0, 0}, // stored 0 marks the slot unused
			{1, 0, 0, 0},
			{1, 0, 0, 0},
		}},
	)
	mesh, diag := DecodeMesh(NewReader(blob), fix.One)
	if mesh.Triangles[0].Index[0] != -1 {
		t.Errorf("index = %d, want -1 sentinel", mesh.Triangles[0].Index[0])
	}
	if diag.UnusedSlots != 1 {
		t.Errorf("UnusedSlots = %d, want 1", diag.UnusedSlots)
	}
}

func TestDecodeMesh_DanglingIndexMarkedUnused(t *testing.T) {
	blob := buildMesh(
		[][3]int{{0, 0, 0}, {1, 1, 1}},
		[][3][4]int{{
			{9, 0, 0, 0}, // beyond the vertex list
			{1, 0, 0, 0},
			{2, 0, 0, 0},
		}},
	)
	mesh, diag := DecodeMesh(NewReader(blob), fix.One)
	if mesh.Triangles[0].Index[0] != -1 {
		t.Errorf("dangling index = %d, want -1", mesh.Triangles[0].Index[0])
	}
	if diag.IndicesOutOfRange != 1 {
		t.Errorf("IndicesOutOfRange = %d, want 1", diag.IndicesOutOfRange)
	}
}

func TestDecodeMesh_IndexValidityInvariant(t *testing.T) {
	mesh, _ := DecodeMesh(NewReader(simpleBlob()), fix.One)
	for ti, tri := range mesh.Triangles {
		for c, idx := range tri.Index {
			if idx != -1 && (idx < 0 || idx >= len(mesh.Vertices)) {
				t.Errorf("triangle %d corner %d index %d out of range", ti, c, idx)
			}
		}
	}
}

func TestDecodeMesh_NegativeCountClamped(t *testing.T) {
	// 0x81 decodes to -127, halved to -63: clamped to zero vertices.
	blob := []byte{0x81}
	mesh, diag := DecodeMesh(NewReader(blob), fix.One)
	if len(mesh.Vertices) != 0 {
		t.Errorf("got %d vertices, want 0", len(mesh.Vertices))
	}
	if !diag.VertexCountClamped {
		t.Error("expected VertexCountClamped")
	}
}

func TestDecodeMesh_EmptyMeshAllocates(t *testing.T) {
	blob := []byte{enc(0), enc(0)}
	mesh, _ := DecodeMesh(NewReader(blob), fix.One)
	if mesh.Vertices == nil || mesh.Projected == nil {
		t.Fatal("empty mesh buffers should be non-nil")
	}
	if cap(mesh.Vertices) < 1 || cap(mesh.Projected) < 1 {
		t.Error("empty mesh buffers should keep a minimum allocation")
	}
	if len(mesh.Triangles) != 0 {
		t.Errorf("got %d triangles, want 0", len(mesh.Triangles))
	}
}

func TestDecodeMesh_OneVertexNoTriangles(t *testing.T) {
	blob := buildMesh([][3]int{{3, -3, 3}}, nil)
	mesh, diag := DecodeMesh(NewReader(blob), fix.One)
	if len(mesh.Vertices) != 1 || len(mesh.Projected) != 1 {
		t.Fatalf("lengths = %d/%d, want 1/1", len(mesh.Vertices), len(mesh.Projected))
	}
	if len(mesh.Triangles) != 0 {
		t.Errorf("got %d triangles, want 0", len(mesh.Triangles))
	}
	if !diag.Clean() {
		t.Errorf("unexpected diagnostics: %+v", diag)
	}
}

func TestDecodeMesh_SharedCursor(t *testing.T) {
	blob := append(simpleBlob(), buildMesh([][3]int{{9, 9, 9}}, nil)...)
	r := NewReader(blob)

	first, _ := DecodeMesh(r, fix.One)
	second, _ := DecodeMesh(r, fix.One)

	if len(first.Vertices) != 3 {
		t.Errorf("first mesh has %d vertices, want 3", len(first.Vertices))
	}
	if len(second.Vertices) != 1 {
		t.Fatalf("second mesh has %d vertices, want 1", len(second.Vertices))
	}
	if second.Vertices[0].X != fix.FromInt(9) {
		t.Errorf("second mesh vertex X = %v, want 9", second.Vertices[0].X.Float())
	}
}

func TestDecodeMesh_ExhaustedBufferReadsZero(t *testing.T) {
	// Vertex count claims 2 but only one vertex of data follows.
	blob := []byte{enc(2), enc(5), enc(5), enc(5)}
	mesh, _ := DecodeMesh(NewReader(blob), fix.One)
	if len(mesh.Vertices) != 2 {
		t.Fatalf("got %d vertices, want 2", len(mesh.Vertices))
	}
	if mesh.Vertices[1].X != 0 || mesh.Vertices[1].Y != 0 {
		t.Errorf("truncated vertex = %v, want zeros", mesh.Vertices[1])
	}
}
