// Package pkg provides the core libraries for meshslice.
//
// # Overview
//
// meshslice cuts a closed triangulated 3D mesh into horizontal planar
// cross-sections and exports each one as a 2D vector-polygon file. The
// pkg directory is organized into:
//
//  1. [geom] - Vector, bounding box, and transform primitives
//  2. [mesh] - STL reading and the immutable adjacency snapshot
//  3. [slicer] - Plane intersection, contour tracing, run orchestration
//  4. [outline] - Protective outline polygons (bounding rect, offset)
//  5. [export] - DXF/SVG/JSON slice writers and the run manifest
//
// # Architecture
//
// The data flow through a slicing run:
//
//	STL file
//	     ↓
//	[mesh] package (weld vertices, build edge/face adjacency)
//	     ↓ per height
//	[slicer] package (crossing edges → intersection points → contours)
//	     ↓ optional
//	[outline] package (bounding rect or offset outline)
//	     ↓
//	[export] package (DXF/SVG/JSON output units)
//
// # Quick Start
//
// Slice a mesh and export DXF files:
//
//	tris, _ := mesh.LoadSTL("model.stl")
//	snap, _ := mesh.Build(tris, geom.Identity())
//
//	s, _ := slicer.New(slicer.Options{NumLayers: 10}, nil)
//	writer, _ := export.NewWriter(export.FormatDXF, "out")
//	summary, _ := s.Run(context.Background(), snap, writer)
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/meshslice/pkg/geom
// [mesh]: https://pkg.go.dev/github.com/matzehuels/meshslice/pkg/mesh
// [slicer]: https://pkg.go.dev/github.com/matzehuels/meshslice/pkg/slicer
// [outline]: https://pkg.go.dev/github.com/matzehuels/meshslice/pkg/outline
// [export]: https://pkg.go.dev/github.com/matzehuels/meshslice/pkg/export
package pkg
