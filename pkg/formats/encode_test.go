package formats

import (
	"errors"
	"reflect"
	"testing"

	"github.com/wrenbyte/starlance/pkg/fix"
	"github.com/wrenbyte/starlance/pkg/geom"
)

func TestEncodeMesh_RoundTrip(t *testing.T) {
	original, _ := DecodeMesh(NewReader(simpleBlob()), fix.One)

	blob, err := EncodeMesh(original)
	if err != nil {
		t.Fatalf("EncodeMesh: %v", err)
	}
	decoded, diag := DecodeMesh(NewReader(blob), fix.One)

	if !diag.Clean() {
		t.Errorf("re-decode diagnostics: %+v", diag)
	}
	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("round trip changed the mesh:\n got %+v\nwant %+v", decoded, original)
	}
}

func TestEncodeMesh_UnusedSlotSurvives(t *testing.T) {
	blob := buildMesh(
		[][3]int{{1, 1, 1}},
		[][3][4]int{{
			{0, 0, 0, 0},
			{1, 0, 1, 2},
			{1, 0, 3, 4},
		}},
	)
	original, _ := DecodeMesh(NewReader(blob), fix.One)
	reblob, err := EncodeMesh(original)
	if err != nil {
		t.Fatalf("EncodeMesh: %v", err)
	}
	decoded, _ := DecodeMesh(NewReader(reblob), fix.One)

	if decoded.Triangles[0].Index[0] != -1 {
		t.Errorf("sentinel index = %d, want -1", decoded.Triangles[0].Index[0])
	}
}

func TestEncodeMesh_RejectsOversizedMesh(t *testing.T) {
	// 64 entries double past the signed count byte, which would
	// re-decode as a negative count.
	m := &Mesh{Vertices: make([]geom.Vec3, MaxEncodableEntries+1)}
	if _, err := EncodeMesh(m); !errors.Is(err, ErrMeshTooLarge) {
		t.Errorf("EncodeMesh(64 vertices) err = %v, want ErrMeshTooLarge", err)
	}

	m = &Mesh{Triangles: make([]Triangle, MaxEncodableEntries+1)}
	if _, err := EncodeMesh(m); !errors.Is(err, ErrMeshTooLarge) {
		t.Errorf("EncodeMesh(64 triangles) err = %v, want ErrMeshTooLarge", err)
	}

	m = &Mesh{Vertices: make([]geom.Vec3, MaxEncodableEntries)}
	if _, err := EncodeMesh(m); err != nil {
		t.Errorf("EncodeMesh(63 vertices) err = %v, want nil", err)
	}
}
