// Package geom provides the small set of geometric primitives shared by
// the mesh, slicer, and outline packages: 3D vectors, axis-aligned
// bounding boxes, and a simple world transform.
package geom

import "math"

// Vec3 is a point or direction in 3D space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length.
// The zero vector normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// WithZ returns a copy of v with its Z coordinate replaced.
func (v Vec3) WithZ(z float64) Vec3 {
	return Vec3{v.X, v.Y, z}
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min Vec3 `json:"min"`
	Max Vec3 `json:"max"`
}

// NewBox returns an empty box ready to be extended.
func NewBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// Extend grows the box to include p.
func (b *Box) Extend(p Vec3) {
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Min.Z = math.Min(b.Min.Z, p.Z)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
	b.Max.Z = math.Max(b.Max.Z, p.Z)
}

// IsEmpty reports whether the box has never been extended.
func (b Box) IsEmpty() bool {
	return b.Min.X > b.Max.X
}

// Size returns the extent of the box along each axis.
func (b Box) Size() Vec3 {
	if b.IsEmpty() {
		return Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// Transform maps model-space points into world space. Scale is applied
// first, then the XYZ Euler rotation (degrees), then the translation.
type Transform struct {
	Translation Vec3
	Rotation    Vec3 // Euler angles in degrees, applied X then Y then Z
	Scale       float64
}

// Identity returns the transform that leaves points unchanged.
func Identity() Transform {
	return Transform{Scale: 1}
}

// Apply transforms p into world space.
func (t Transform) Apply(p Vec3) Vec3 {
	s := t.Scale
	if s == 0 {
		s = 1
	}
	p = p.Scale(s)

	if t.Rotation != (Vec3{}) {
		p = rotateX(p, radians(t.Rotation.X))
		p = rotateY(p, radians(t.Rotation.Y))
		p = rotateZ(p, radians(t.Rotation.Z))
	}

	return p.Add(t.Translation)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func rotateX(p Vec3, a float64) Vec3 {
	sin, cos := math.Sincos(a)
	return Vec3{p.X, p.Y*cos - p.Z*sin, p.Y*sin + p.Z*cos}
}

func rotateY(p Vec3, a float64) Vec3 {
	sin, cos := math.Sincos(a)
	return Vec3{p.X*cos + p.Z*sin, p.Y, -p.X*sin + p.Z*cos}
}

func rotateZ(p Vec3, a float64) Vec3 {
	sin, cos := math.Sincos(a)
	return Vec3{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos, p.Z}
}
