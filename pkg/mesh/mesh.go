// Package mesh builds an immutable, world-space snapshot of a triangle
// mesh with full edge/face adjacency, and reads meshes from STL files.
//
// The snapshot is an arena of vertices, edges, and faces addressed by
// dense integer indices: each edge stores the faces it borders and each
// face stores its ordered edge list. This gives the slicer O(1)
// adjacency lookups without reference cycles. A snapshot is never
// mutated after Build returns, so it can be shared freely across
// concurrent slice computations.
package mesh

import (
	"github.com/matzehuels/meshslice/pkg/errors"
	"github.com/matzehuels/meshslice/pkg/geom"
)

// Triangle is one input facet of a triangle soup, in model space.
type Triangle struct {
	V1, V2, V3 geom.Vec3
}

// Edge is an unordered pair of vertex indices plus the indices of every
// face that borders it. Manifold interior edges have exactly two faces;
// boundary or non-manifold edges are tolerated with fewer or more.
type Edge struct {
	V1, V2 int
	Faces  []int
}

// Face is an ordered cycle of edge indices bounding one facet.
type Face struct {
	Edges []int
}

// Snapshot is an immutable world-space copy of a mesh with adjacency.
// Vertex, edge, and face identities are stable for the snapshot's
// lifetime and shared across every slice height computed from it.
type Snapshot struct {
	verts  []geom.Vec3
	edges  []Edge
	faces  []Face
	bounds geom.Box
}

// Build welds a triangle soup into an indexed snapshot, transformed into
// world space. Vertices are welded by exact position, so triangles that
// share coordinates share vertices and the edges between them carry the
// adjacency the contour tracer walks.
//
// Triangles that collapse to fewer than three distinct vertices after
// welding are dropped. An input with no vertices or no surviving faces
// yields a DEGENERATE_MESH error.
func Build(tris []Triangle, t geom.Transform) (*Snapshot, error) {
	if len(tris) == 0 {
		return nil, errors.New(errors.ErrCodeDegenerateMesh, "mesh has no faces")
	}

	s := &Snapshot{bounds: geom.NewBox()}
	vertIndex := make(map[geom.Vec3]int)
	edgeIndex := make(map[[2]int]int)

	vertexOf := func(p geom.Vec3) int {
		p = t.Apply(p)
		if i, ok := vertIndex[p]; ok {
			return i
		}
		i := len(s.verts)
		vertIndex[p] = i
		s.verts = append(s.verts, p)
		s.bounds.Extend(p)
		return i
	}

	edgeOf := func(a, b int) int {
		key := [2]int{a, b}
		if a > b {
			key = [2]int{b, a}
		}
		if i, ok := edgeIndex[key]; ok {
			return i
		}
		i := len(s.edges)
		edgeIndex[key] = i
		s.edges = append(s.edges, Edge{V1: key[0], V2: key[1]})
		return i
	}

	for _, tri := range tris {
		a, b, c := vertexOf(tri.V1), vertexOf(tri.V2), vertexOf(tri.V3)
		if a == b || b == c || c == a {
			// Sliver collapsed by welding; no area, nothing to slice.
			continue
		}
		fi := len(s.faces)
		e1, e2, e3 := edgeOf(a, b), edgeOf(b, c), edgeOf(c, a)
		s.faces = append(s.faces, Face{Edges: []int{e1, e2, e3}})
		s.edges[e1].Faces = append(s.edges[e1].Faces, fi)
		s.edges[e2].Faces = append(s.edges[e2].Faces, fi)
		s.edges[e3].Faces = append(s.edges[e3].Faces, fi)
	}

	if len(s.verts) == 0 || len(s.faces) == 0 {
		return nil, errors.New(errors.ErrCodeDegenerateMesh,
			"mesh has no usable geometry (%d triangles, all degenerate)", len(tris))
	}
	return s, nil
}

// VertexCount returns the number of welded vertices.
func (s *Snapshot) VertexCount() int { return len(s.verts) }

// EdgeCount returns the number of unique edges.
func (s *Snapshot) EdgeCount() int { return len(s.edges) }

// FaceCount returns the number of faces.
func (s *Snapshot) FaceCount() int { return len(s.faces) }

// Vertex returns the world-space position of vertex i.
func (s *Snapshot) Vertex(i int) geom.Vec3 { return s.verts[i] }

// Edge returns edge i.
func (s *Snapshot) Edge(i int) Edge { return s.edges[i] }

// Face returns face i.
func (s *Snapshot) Face(i int) Face { return s.faces[i] }

// EdgeEndpoints returns the world-space endpoint positions of edge i.
func (s *Snapshot) EdgeEndpoints(i int) (geom.Vec3, geom.Vec3) {
	e := s.edges[i]
	return s.verts[e.V1], s.verts[e.V2]
}

// Bounds returns the world-space bounding box of the mesh.
func (s *Snapshot) Bounds() geom.Box { return s.bounds }

// LowestZ returns the Z coordinate of the lowest vertex.
func (s *Snapshot) LowestZ() float64 { return s.bounds.Min.Z }

// NonManifoldEdges counts edges that do not border exactly two faces.
// A watertight manifold mesh has zero; anything else can break contour
// closure during tracing.
func (s *Snapshot) NonManifoldEdges() int {
	n := 0
	for _, e := range s.edges {
		if len(e.Faces) != 2 {
			n++
		}
	}
	return n
}
