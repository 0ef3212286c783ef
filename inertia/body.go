package inertia

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"sync"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"github.com/dajusc/trimesh/spatialmath"
)

// Body binds a mesh to a density and lazily computes its mass properties,
// caching the result for the life of the body. A body is immutable; applying a
// transform yields a new body with a fresh cache.
type Body struct {
	mesh    *spatialmath.Mesh
	density float64

	// Computed on first use and cached; expensive for large meshes.
	props *MassProperties
	err   error
	once  sync.Once
}

// NewBody creates a body from a watertight mesh and a uniform density.
func NewBody(mesh *spatialmath.Mesh, density float64) (*Body, error) {
	if density <= 0 || math.IsNaN(density) || math.IsInf(density, 0) {
		return nil, newBadDensityError(density)
	}
	return &Body{mesh: mesh, density: density}, nil
}

// Mesh returns the body's mesh.
func (b *Body) Mesh() *spatialmath.Mesh {
	return b.mesh
}

// Density returns the body's density.
func (b *Body) Density() float64 {
	return b.density
}

// MassProperties returns the body's mass properties, computing them on first
// use and caching thereafter.
func (b *Body) MassProperties() (*MassProperties, error) {
	b.once.Do(func() {
		b.props, b.err = ComputeMassProperties(b.mesh.Triangles(), b.density, false)
	})
	return b.props, b.err
}

// Volume returns the enclosed volume.
func (b *Body) Volume() (float64, error) {
	props, err := b.MassProperties()
	if err != nil {
		return 0, err
	}
	return props.Volume, nil
}

// CenterOfMass returns the center of mass.
func (b *Body) CenterOfMass() (r3.Vector, error) {
	props, err := b.MassProperties()
	if err != nil {
		return r3.Vector{}, err
	}
	return props.CenterOfMass, nil
}

// MomentInertia returns the inertia tensor about the center of mass.
func (b *Body) MomentInertia() (*mat.SymDense, error) {
	props, err := b.MassProperties()
	if err != nil {
		return nil, err
	}
	return props.Inertia, nil
}

// PrincipalInertia returns the principal moments and axes of the body's
// inertia tensor. Equivalent to calling PrincipalAxis on MomentInertia.
func (b *Body) PrincipalInertia() (*PrincipalAxes, error) {
	tensor, err := b.MomentInertia()
	if err != nil {
		return nil, err
	}
	return PrincipalAxis(tensor)
}

// ApplyTransform returns a new body whose mesh has been rigidly moved. Mass
// properties are recomputed on demand for the new pose.
func (b *Body) ApplyTransform(tf *spatialmath.RigidTransform) *Body {
	return &Body{mesh: b.mesh.Transform(tf), density: b.density}
}

// Hash is a content hash of the body's geometry and density, usable as a
// memoization key by callers caching mass properties across bodies.
func (b *Body) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	write := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	write(b.density)
	for _, tri := range b.mesh.Triangles() {
		for _, p := range tri.Points() {
			write(p.X)
			write(p.Y)
			write(p.Z)
		}
	}
	return h.Sum64()
}
