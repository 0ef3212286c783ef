// Package primitives tessellates canonical solids into watertight,
// consistently wound triangle meshes, and exposes their exact mass properties
// where a closed form exists.
package primitives

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/dajusc/trimesh/inertia"
	"github.com/dajusc/trimesh/spatialmath"
)

// Solid is a posed primitive that can tessellate itself.
type Solid interface {
	// Kind keys the closed-form inertia strategy for this primitive.
	Kind() inertia.PrimitiveKind
	// Params are the primitive's canonical local-frame dimensions.
	Params() inertia.PrimitiveParams
	// Pose places the primitive's local frame in world space.
	Pose() *spatialmath.RigidTransform
	// Volume is the exact enclosed volume.
	Volume() float64
	// Mesh tessellates the boundary into a watertight triangle mesh in world
	// space. Sections controls the tessellation fineness for curved surfaces.
	Mesh(sections int) (*spatialmath.Mesh, error)
}

// Inertia returns a solid's inertia tensor about its center of mass in world
// axes, using the registered closed form for its kind when one exists and
// falling back to mesh integration otherwise.
func Inertia(s Solid, density float64, sections int) (*mat.SymDense, error) {
	tensor, err := inertia.AnalyticInertia(s.Kind(), density*s.Volume(), s.Params(), s.Pose())
	if err == nil {
		return tensor, nil
	}
	if !errors.Is(err, inertia.ErrNoClosedForm) {
		return nil, err
	}
	mesh, err := s.Mesh(sections)
	if err != nil {
		return nil, err
	}
	props, err := inertia.ComputeMassProperties(mesh.Triangles(), density, false)
	if err != nil {
		return nil, err
	}
	return props.Inertia, nil
}

func newBadDimensionsError(kind inertia.PrimitiveKind, params inertia.PrimitiveParams) error {
	return errors.Errorf("%s dimensions must be positive, got %+v", kind, params)
}

func newBadSectionsError(sections int) error {
	return errors.Errorf("tessellation needs at least 3 sections, got %d", sections)
}
