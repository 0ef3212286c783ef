package inertia_test

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"

	"github.com/dajusc/trimesh/inertia"
	"github.com/dajusc/trimesh/primitives"
)

func TestPrincipalAxisDiagonal(t *testing.T) {
	tensor := mat.NewSymDense(3, []float64{
		3, 0, 0,
		0, 1, 0,
		0, 0, 2,
	})
	axes, err := inertia.PrincipalAxis(tensor)
	test.That(t, err, test.ShouldBeNil)

	minIdx := axes.MinComponent()
	maxIdx := axes.MaxComponent()
	test.That(t, axes.Components[minIdx], test.ShouldAlmostEqual, 1, 1e-12)
	test.That(t, axes.Components[maxIdx], test.ShouldAlmostEqual, 3, 1e-12)

	// the axis of the smallest moment is ±Y, the largest ±X
	minVec := axes.Vector(minIdx)
	test.That(t, math.Abs(minVec[1]), test.ShouldAlmostEqual, 1, 1e-12)
	maxVec := axes.Vector(maxIdx)
	test.That(t, math.Abs(maxVec[0]), test.ShouldAlmostEqual, 1, 1e-12)
}

func TestPrincipalAxisVectorsOrthonormal(t *testing.T) {
	tensor := mat.NewSymDense(3, []float64{
		5, 1, 0.5,
		1, 4, -0.25,
		0.5, -0.25, 3,
	})
	axes, err := inertia.PrincipalAxis(tensor)
	test.That(t, err, test.ShouldBeNil)

	var vvt mat.Dense
	vvt.Mul(axes.Vectors, axes.Vectors.T())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			test.That(t, vvt.At(i, j), test.ShouldAlmostEqual, want, 1e-12)
		}
	}
}

func TestCylinderPrincipalAxis(t *testing.T) {
	pose := testPose(t)
	cyl, err := primitives.NewCylinder(1, 10, pose)
	test.That(t, err, test.ShouldBeNil)
	mesh, err := cyl.Mesh(720)
	test.That(t, err, test.ShouldBeNil)

	props, err := inertia.ComputeMassProperties(mesh.Triangles(), 1, false)
	test.That(t, err, test.ShouldBeNil)
	axes, err := inertia.PrincipalAxis(props.Inertia)
	test.That(t, err, test.ShouldBeNil)

	// rotation about the long axis meets the least resistance, so the axis
	// direction corresponds to the smallest principal moment. Eigenvector sign
	// is arbitrary; align it before comparing.
	axis := axes.Vector(axes.MinComponent())
	direction := cyl.Direction()
	if axis[0]*direction.X+axis[1]*direction.Y+axis[2]*direction.Z < 0 {
		for i := range axis {
			axis[i] = -axis[i]
		}
	}
	test.That(t, math.Abs(axis[0]/direction.X-1), test.ShouldBeLessThan, 1e-8)
	test.That(t, math.Abs(axis[1]/direction.Y-1), test.ShouldBeLessThan, 1e-8)
	test.That(t, math.Abs(axis[2]/direction.Z-1), test.ShouldBeLessThan, 1e-8)

	// the two moments perpendicular to the symmetry axis are degenerate; their
	// individual eigenvectors are arbitrary but the moments must agree
	var radial []float64
	for i, c := range axes.Components {
		if i != axes.MinComponent() {
			radial = append(radial, c)
		}
	}
	test.That(t, len(radial), test.ShouldEqual, 2)
	test.That(t, math.Abs(radial[0]/radial[1]-1), test.ShouldBeLessThan, 1e-8)
}

func TestPrincipalAxisRejectsNonSymmetric(t *testing.T) {
	tensor := mat.NewDense(3, 3, []float64{
		1, 0.5, 0,
		0.1, 1, 0,
		0, 0, 1,
	})
	_, err := inertia.PrincipalAxis(tensor)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, inertia.ErrNonSymmetricTensor), test.ShouldBeTrue)
}

func TestPrincipalAxisRejectsNonFinite(t *testing.T) {
	tensor := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, math.NaN(), 0,
		0, 0, 1,
	})
	_, err := inertia.PrincipalAxis(tensor)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, inertia.ErrNonFiniteValue), test.ShouldBeTrue)

	tensor.Set(1, 1, math.Inf(1))
	_, err = inertia.PrincipalAxis(tensor)
	test.That(t, errors.Is(err, inertia.ErrNonFiniteValue), test.ShouldBeTrue)
}

func TestPrincipalAxisRejectsBadShape(t *testing.T) {
	_, err := inertia.PrincipalAxis(mat.NewDense(2, 2, nil))
	test.That(t, err, test.ShouldNotBeNil)
}
