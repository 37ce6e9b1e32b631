package slicer

import (
	"github.com/matzehuels/meshslice/pkg/geom"
	"github.com/matzehuels/meshslice/pkg/mesh"
)

// EdgeKey identifies an edge by its unordered vertex index pair.
// Two distinct edges never collapse to the same key.
type EdgeKey [2]int

// KeyOf returns the canonical key for an edge's vertex pair.
func KeyOf(e mesh.Edge) EdgeKey {
	if e.V1 > e.V2 {
		return EdgeKey{e.V2, e.V1}
	}
	return EdgeKey{e.V1, e.V2}
}

// CrossingEdges finds every edge of the snapshot that crosses the
// horizontal plane at height h and the intersection point on each.
//
// An edge (v1, v2) crosses iff (v1.Z-h)*(v2.Z-h) <= 0, which includes
// edges tangent to the plane at a single endpoint. Edge indices are
// returned in ascending order, so the result is deterministic for a
// given (snapshot, h) pair.
func CrossingEdges(s *mesh.Snapshot, h float64) ([]int, map[EdgeKey]geom.Vec3) {
	var crossing []int
	points := make(map[EdgeKey]geom.Vec3)

	for i := 0; i < s.EdgeCount(); i++ {
		v1, v2 := s.EdgeEndpoints(i)
		if (v1.Z-h)*(v2.Z-h) > 0 {
			continue
		}
		crossing = append(crossing, i)
		points[KeyOf(s.Edge(i))] = intersect(v1, v2, h)
	}
	return crossing, points
}

// intersect computes the point where edge (v1, v2) meets the plane z=h
// by linear interpolation. The result's Z is pinned to exactly h.
//
// When the edge lies entirely in the plane the first endpoint is used;
// this keeps the computation deterministic and division-free.
func intersect(v1, v2 geom.Vec3, h float64) geom.Vec3 {
	if v1.Z == v2.Z {
		return v1.WithZ(h)
	}
	t := (h - v1.Z) / (v2.Z - v1.Z)
	return v1.Add(v2.Sub(v1).Scale(t)).WithZ(h)
}
