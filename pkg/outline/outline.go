// Package outline computes protective outline polygons around slice
// contours: either a bounding rectangle around everything in a slice,
// or an offset copy of one contour displaced along its local normals.
package outline

import (
	"github.com/matzehuels/meshslice/pkg/errors"
	"github.com/matzehuels/meshslice/pkg/geom"
)

// Offset displaces every vertex of a closed polygon outward by d along
// its local perpendicular. The tangent at vertex i is the chord from
// its predecessor to its successor (indices wrap); rotating it 90° in
// the slice plane gives the normal direction. The result has the same
// point count and ordering as the input.
//
// Which side of the polygon the displacement lands on depends on the
// input winding; reversing the point order flips it. Winding is not
// verified or normalized here.
//
// Fewer than three input points is an OUTLINE_FAILED error; callers
// treat that as "skip the outline", not as fatal.
func Offset(points []geom.Vec3, d float64) ([]geom.Vec3, error) {
	n := len(points)
	if n < 3 {
		return nil, errors.New(errors.ErrCodeOutlineFailed,
			"contour has %d points, need at least 3 to offset", n)
	}

	out := make([]geom.Vec3, n)
	for i, p := range points {
		prev := points[(i-1+n)%n]
		next := points[(i+1)%n]
		tangent := next.Sub(prev)
		// Coincident neighbors leave a zero tangent; Normalize maps it
		// to zero and the vertex stays put.
		normal := geom.Vec3{X: -tangent.Y, Y: tangent.X}.Normalize()
		out[i] = p.Add(normal.Scale(d))
	}
	return out, nil
}

// BoundingRect returns a 4-point axis-aligned rectangle enclosing every
// point of every input set, outset by d on each side. The rectangle
// lies at the Z of the first point and is wound counter-clockwise.
// It is well defined for any non-empty input, including a single point
// or collinear sets; empty input is an OUTLINE_FAILED error.
func BoundingRect(sets [][]geom.Vec3, d float64) ([]geom.Vec3, error) {
	var minX, minY, maxX, maxY, z float64
	first := true
	for _, set := range sets {
		for _, p := range set {
			if first {
				minX, maxX = p.X, p.X
				minY, maxY = p.Y, p.Y
				z = p.Z
				first = false
				continue
			}
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}
	if first {
		return nil, errors.New(errors.ErrCodeOutlineFailed, "no points to outline")
	}

	return []geom.Vec3{
		{X: minX - d, Y: minY - d, Z: z},
		{X: maxX + d, Y: minY - d, Z: z},
		{X: maxX + d, Y: maxY + d, Z: z},
		{X: minX - d, Y: maxY + d, Z: z},
	}, nil
}
