package render

import (
	"github.com/wrenbyte/starlance/pkg/formats"
	"github.com/wrenbyte/starlance/pkg/geom"
)

// SortTriangles orders a mesh's triangles back-to-front for correct
// opaque overdraw without a z-buffer. The key is the sum of the three
// corners' perspective weights: under this projection a larger weight
// means closer to the camera, so ascending order draws far triangles
// first. Unused slots key to zero and end up drawn (and culled) first.
//
// Insertion sort keeps equal keys stable and beats a comparison sort
// for the typical under-20-triangle meshes.
func SortTriangles(tris []formats.Triangle, projs []geom.Vec3) {
	for i := range tris {
		tri := &tris[i]
		tri.Depth = 0
		if tri.Index[0] < 0 || tri.Index[1] < 0 || tri.Index[2] < 0 {
			continue
		}
		tri.Depth = projs[tri.Index[0]].Z + projs[tri.Index[1]].Z + projs[tri.Index[2]].Z
	}

	for i := 1; i < len(tris); i++ {
		tmp := tris[i]
		j := i - 1
		for j >= 0 && tris[j].Depth > tmp.Depth {
			tris[j+1] = tris[j]
			j--
		}
		tris[j+1] = tmp
	}
}
