package inertia

import (
	"github.com/pkg/errors"
)

var (
	// ErrDegenerateGeometry is returned when a triangle soup does not enclose a
	// measurable volume, e.g. it is empty, open, or collapsed to a surface.
	ErrDegenerateGeometry = errors.New("degenerate geometry: triangles do not enclose a volume")

	// ErrNonSymmetricTensor is returned when a matrix that must be a symmetric
	// inertia tensor is asymmetric beyond numerical noise.
	ErrNonSymmetricTensor = errors.New("tensor is not symmetric")

	// ErrNonFiniteValue is returned when an input contains NaN or Inf entries.
	ErrNonFiniteValue = errors.New("input contains non-finite values")

	// ErrNoClosedForm is returned when no analytic formula is registered for a
	// primitive kind; callers should fall back to mesh integration.
	ErrNoClosedForm = errors.New("no closed-form inertia registered for primitive kind")
)

func newDegenerateGeometryError(volume float64, numTriangles int) error {
	return errors.Wrapf(ErrDegenerateGeometry, "accumulated volume %g over %d triangles", volume, numTriangles)
}

func newNonSymmetricTensorError(delta float64) error {
	return errors.Wrapf(ErrNonSymmetricTensor, "max asymmetry %g", delta)
}

func newBadDensityError(density float64) error {
	return errors.Errorf("density must be a positive finite scalar, got %g", density)
}
