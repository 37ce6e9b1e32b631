package slicer

import "github.com/matzehuels/meshslice/pkg/geom"

// Contour is an ordered sequence of intersection points at one slice
// height, intended to describe one closed polygon boundary.
//
// Closed reports whether the tracing walk returned to its starting
// edge. Open contours with more than two points are still kept and
// exported; downstream consumers that assume closure can inspect the
// flag instead of being silently handed a broken loop.
type Contour struct {
	Points []geom.Vec3 `json:"points"`
	Height float64     `json:"height"`
	Closed bool        `json:"closed"`
}

// PointCount returns the number of points in the contour.
func (c Contour) PointCount() int { return len(c.Points) }

// AtHeight returns a copy of the contour with every point's Z
// coordinate, and the contour height, rewritten to z. Used to reuse the
// one-time outline contour across all slice heights.
func (c Contour) AtHeight(z float64) Contour {
	pts := make([]geom.Vec3, len(c.Points))
	for i, p := range c.Points {
		pts[i] = p.WithZ(z)
	}
	return Contour{Points: pts, Height: z, Closed: c.Closed}
}
