package slicer

import (
	"github.com/matzehuels/meshslice/pkg/mesh"
)

// TraceContours links the crossing edges at height h into contours by
// walking face adjacency.
//
// Starting from each unused crossing edge, the walk repeatedly marks
// the current edge used, appends its intersection point, and moves to
// an unused crossing edge sharing a face with the current one. On a
// manifold mesh each face holds exactly two crossing edges at a generic
// height, so the walk deterministically traces each loop without any
// notion of 2D winding order and handles multiple disjoint loops per
// slice.
//
// Contours with two or fewer points are discarded. Non-manifold
// topology or a height grazing a vertex can end a walk before it closes;
// the truncated contour is kept (if long enough) with Closed=false.
func TraceContours(s *mesh.Snapshot, h float64) []Contour {
	crossing, points := CrossingEdges(s, h)
	if len(crossing) == 0 {
		return nil
	}

	isCrossing := make(map[int]bool, len(crossing))
	for _, e := range crossing {
		isCrossing[e] = true
	}
	used := make(map[int]bool, len(crossing))

	var contours []Contour
	for _, start := range crossing {
		if used[start] {
			continue
		}

		c := Contour{Height: h}
		cur := start
		for {
			used[cur] = true
			c.Points = append(c.Points, points[KeyOf(s.Edge(cur))])

			next := nextEdge(s, cur, isCrossing, used)
			if next < 0 {
				// No continuation: either the loop is complete (the
				// only remaining neighbor is the used start edge) or
				// the surface is broken here.
				c.Closed = sharesFace(s, cur, start)
				break
			}
			cur = next
		}

		if c.PointCount() > 2 {
			contours = append(contours, c)
		}
	}
	return contours
}

// nextEdge finds an unused crossing edge sharing a face with cur, or -1.
func nextEdge(s *mesh.Snapshot, cur int, isCrossing, used map[int]bool) int {
	for _, f := range s.Edge(cur).Faces {
		for _, fe := range s.Face(f).Edges {
			if fe != cur && isCrossing[fe] && !used[fe] {
				return fe
			}
		}
	}
	return -1
}

// sharesFace reports whether edges a and b border a common face.
// A walk whose last edge touches its start edge has closed the loop.
func sharesFace(s *mesh.Snapshot, a, b int) bool {
	if a == b {
		return false
	}
	for _, f := range s.Edge(a).Faces {
		for _, fe := range s.Face(f).Edges {
			if fe == b {
				return true
			}
		}
	}
	return false
}
