package render

import (
	"testing"

	"github.com/wrenbyte/starlance/pkg/fix"
	"github.com/wrenbyte/starlance/pkg/formats"
	"github.com/wrenbyte/starlance/pkg/geom"
)

// sortFixture builds three disjoint triangles whose per-corner weights
// sum to the given totals.
func sortFixture(sums ...int) ([]formats.Triangle, []geom.Vec3) {
	var tris []formats.Triangle
	var projs []geom.Vec3
	for ti, sum := range sums {
		base := ti * 3
		each := fix.FromInt(sum).Div(fix.FromInt(3))
		projs = append(projs,
			geom.Vec3{Z: each},
			geom.Vec3{Z: each},
			geom.Vec3{Z: fix.FromInt(sum) - each - each},
		)
		tris = append(tris, formats.Triangle{
			Index: [3]int{base, base + 1, base + 2},
			// Tag the triangle through a UV so reordering is visible.
			UV: [3][2]fix.T{{fix.FromInt(sum), 0}},
		})
	}
	return tris, projs
}

func TestSortTriangles_BackToFront(t *testing.T) {
	tris, projs := sortFixture(5, 1, 9)
	SortTriangles(tris, projs)

	var got []int
	for _, tr := range tris {
		got = append(got, tr.UV[0][0].Int())
	}
	want := []int{1, 5, 9}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sorted order = %v, want %v", got, want)
		}
	}
}

func TestSortTriangles_ComputesKeySum(t *testing.T) {
	tris, projs := sortFixture(6)
	SortTriangles(tris, projs)
	if tris[0].Depth != fix.FromInt(6) {
		t.Errorf("Depth = %v, want 6", tris[0].Depth.Float())
	}
}

func TestSortTriangles_StableOnEqualKeys(t *testing.T) {
	tris, projs := sortFixture(4, 4, 4)
	// Distinguish the equal-key triangles by their second UV.
	for i := range tris {
		tris[i].UV[1][0] = fix.FromInt(i)
	}
	SortTriangles(tris, projs)
	for i := range tris {
		if tris[i].UV[1][0] != fix.FromInt(i) {
			t.Fatalf("equal keys reordered: slot %d holds tag %v", i, tris[i].UV[1][0].Float())
		}
	}
}

func TestSortTriangles_UnusedSlotsFirst(t *testing.T) {
	tris, projs := sortFixture(5, 2)
	tris[0].Index[0] = -1
	SortTriangles(tris, projs)

	if tris[0].Index[0] != -1 {
		t.Error("unused slot should sort to the front with a zero key")
	}
	if tris[0].Depth != 0 {
		t.Errorf("unused slot Depth = %v, want 0", tris[0].Depth.Float())
	}
}
