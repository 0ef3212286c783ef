package spatialmath

import (
	"github.com/golang/geo/r3"
)

// Triangle is a three-sided planar face. The vertex order defines the outward
// face normal by the right-hand rule; mass-property integration depends on
// every triangle of a mesh being consistently wound.
type Triangle struct {
	p0 r3.Vector
	p1 r3.Vector
	p2 r3.Vector

	normal r3.Vector
}

// NewTriangle creates a Triangle from three vertices, caching its unit normal.
func NewTriangle(p0, p1, p2 r3.Vector) *Triangle {
	return &Triangle{
		p0:     p0,
		p1:     p1,
		p2:     p2,
		normal: PlaneNormal(p0, p1, p2),
	}
}

// Points returns the three vertices of the triangle.
func (t *Triangle) Points() []r3.Vector {
	return []r3.Vector{t.p0, t.p1, t.p2}
}

// Normal returns the unit normal defined by the winding of the triangle.
func (t *Triangle) Normal() r3.Vector {
	return t.normal
}

// Area returns the surface area of the triangle.
func (t *Triangle) Area() float64 {
	return t.p1.Sub(t.p0).Cross(t.p2.Sub(t.p0)).Norm() / 2
}

// Centroid returns the arithmetic mean of the vertices.
func (t *Triangle) Centroid() r3.Vector {
	return t.p0.Add(t.p1).Add(t.p2).Mul(1. / 3.)
}

// Transform returns a new Triangle with all vertices moved by the given rigid
// transform. Winding, and therefore the outward normal convention, is preserved.
func (t *Triangle) Transform(tf *RigidTransform) *Triangle {
	return NewTriangle(
		tf.TransformPoint(t.p0),
		tf.TransformPoint(t.p1),
		tf.TransformPoint(t.p2),
	)
}

// Flipped returns the triangle with reversed winding, inverting its normal.
func (t *Triangle) Flipped() *Triangle {
	return NewTriangle(t.p0, t.p2, t.p1)
}

// PlaneNormal returns the unit normal of the plane through three points, using
// the right-hand rule on their order. Returns the zero vector for a degenerate
// (collinear) triple.
func PlaneNormal(p0, p1, p2 r3.Vector) r3.Vector {
	return p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
}
