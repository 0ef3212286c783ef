package inertia

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/dajusc/trimesh/spatialmath"
)

// PrimitiveKind names a canonical solid with a known closed-form inertia tensor.
type PrimitiveKind string

// Primitive kinds with registered closed forms.
const (
	KindCylinder PrimitiveKind = "cylinder"
	KindSphere   PrimitiveKind = "sphere"
	KindBox      PrimitiveKind = "box"
)

// PrimitiveParams carries the canonical local-frame dimensions of a primitive.
// Which fields are read depends on the kind: Radius and Height for a cylinder,
// Radius for a sphere, Dims for a box.
type PrimitiveParams struct {
	Radius float64
	Height float64
	Dims   r3.Vector
}

// ClosedForm computes the local-frame inertia tensor of a primitive about its
// own center of mass.
type ClosedForm func(mass float64, params PrimitiveParams) (*mat.SymDense, error)

var closedForms = map[PrimitiveKind]ClosedForm{
	KindCylinder: cylinderClosedForm,
	KindSphere:   sphereClosedForm,
	KindBox:      boxClosedForm,
}

// RegisterClosedForm adds or replaces the closed-form strategy for a primitive
// kind. Kinds without a registered form fall back to mesh integration at the
// call sites that tessellate.
func RegisterClosedForm(kind PrimitiveKind, f ClosedForm) {
	closedForms[kind] = f
}

// AnalyticInertia returns the inertia tensor of a primitive of the given kind
// and mass, about its center of mass, expressed in world axes. The transform
// places the primitive's local frame in the world; only its rotation block
// affects the result, since the tensor is already about the center of mass. A
// nil transform returns the local-frame tensor.
func AnalyticInertia(kind PrimitiveKind, mass float64, params PrimitiveParams, tf *spatialmath.RigidTransform) (*mat.SymDense, error) {
	form, ok := closedForms[kind]
	if !ok {
		return nil, errors.Wrapf(ErrNoClosedForm, "kind %q", kind)
	}
	if mass <= 0 {
		return nil, errors.Errorf("primitive mass must be positive, got %g", mass)
	}
	local, err := form(mass, params)
	if err != nil {
		return nil, err
	}
	if tf == nil {
		return local, nil
	}
	return TransformInertia(tf, local)
}

// CylinderInertia is the closed-form inertia tensor of a solid cylinder of the
// given mass, about its center of mass, posed in the world by the transform.
func CylinderInertia(mass, radius, height float64, tf *spatialmath.RigidTransform) (*mat.SymDense, error) {
	return AnalyticInertia(KindCylinder, mass, PrimitiveParams{Radius: radius, Height: height}, tf)
}

// SphereInertia is the closed-form inertia tensor of a solid sphere of the
// given mass about its center.
func SphereInertia(mass, radius float64) (*mat.SymDense, error) {
	return AnalyticInertia(KindSphere, mass, PrimitiveParams{Radius: radius}, nil)
}

// BoxInertia is the closed-form inertia tensor of a solid box of the given mass
// and full extents, about its center of mass, posed in the world by the transform.
func BoxInertia(mass float64, dims r3.Vector, tf *spatialmath.RigidTransform) (*mat.SymDense, error) {
	return AnalyticInertia(KindBox, mass, PrimitiveParams{Dims: dims}, tf)
}

// The symmetry (long) axis of a cylinder is local Z: I_axial = m·r²/2 about it,
// I_radial = m·(3r² + h²)/12 about the two perpendicular axes.
func cylinderClosedForm(mass float64, params PrimitiveParams) (*mat.SymDense, error) {
	if params.Radius <= 0 || params.Height <= 0 {
		return nil, errors.Errorf("cylinder radius and height must be positive, got r=%g h=%g", params.Radius, params.Height)
	}
	r2 := params.Radius * params.Radius
	radial := mass * (3*r2 + params.Height*params.Height) / 12
	axial := mass * r2 / 2
	return diagTensor(radial, radial, axial), nil
}

func sphereClosedForm(mass float64, params PrimitiveParams) (*mat.SymDense, error) {
	if params.Radius <= 0 {
		return nil, errors.Errorf("sphere radius must be positive, got %g", params.Radius)
	}
	moment := 2 * mass * params.Radius * params.Radius / 5
	return diagTensor(moment, moment, moment), nil
}

func boxClosedForm(mass float64, params PrimitiveParams) (*mat.SymDense, error) {
	d := params.Dims
	if d.X <= 0 || d.Y <= 0 || d.Z <= 0 {
		return nil, errors.Errorf("box dimensions must be positive, got %v", d)
	}
	return diagTensor(
		mass*(d.Y*d.Y+d.Z*d.Z)/12,
		mass*(d.X*d.X+d.Z*d.Z)/12,
		mass*(d.X*d.X+d.Y*d.Y)/12,
	), nil
}

func diagTensor(xx, yy, zz float64) *mat.SymDense {
	return mat.NewSymDense(3, []float64{
		xx, 0, 0,
		0, yy, 0,
		0, 0, zz,
	})
}
