// Package slicer cuts a mesh snapshot into horizontal cross-sections.
//
// # Pipeline
//
// For each slice height the pipeline runs three pure stages:
//
//  1. [CrossingEdges] classifies every mesh edge against the plane and
//     interpolates an intersection point per crossing edge.
//  2. [TraceContours] links the intersection points into contours by
//     walking shared faces between consecutive crossing edges.
//  3. The optional outline stage pads the slice with a protective
//     polygon from [github.com/matzehuels/meshslice/pkg/outline].
//
// [Slicer.Run] drives the height loop, forwards finished contour sets
// to a [SliceWriter], and reports a [Summary]. Slice heights are
// independent of each other, so runs can execute on multiple workers;
// the snapshot and the shared outline contour are only ever read once
// slicing starts.
//
// # Leniency
//
// Contour tracing is best-effort on imperfect meshes: a walk that never
// returns to its starting edge still yields a contour when it collected
// more than two points, marked with Closed=false rather than dropped.
// Non-manifold topology and heights grazing a vertex exactly are
// tolerated the same way, not treated as errors.
package slicer
