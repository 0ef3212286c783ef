// Package spatialmath defines the spatial mathematical operations used to
// describe rigid bodies: triangles, meshes, and rigid transformations.
package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"

	"github.com/dajusc/trimesh/utils"
)

// Any rotation block whose R·Rᵗ deviates from identity by more than this is
// rejected as not rigid.
const orthonormalEpsilon = 1e-8

// ErrInvalidTransform is returned when a transform's rotation block is not
// orthonormal, i.e. the transform would shear or scale rather than rigidly move.
var ErrInvalidTransform = errors.New("invalid transform: rotation block is not orthonormal")

// RigidTransform is a rigid motion in 3D space, the rotation and translation
// blocks of a 4x4 homogeneous transformation matrix. The rotation block is
// validated to be orthonormal at construction.
type RigidTransform struct {
	rot   *mat.Dense // 3x3
	trans r3.Vector
}

// NewZeroRigidTransform returns the identity transform.
func NewZeroRigidTransform() *RigidTransform {
	return &RigidTransform{rot: identity3(), trans: r3.Vector{}}
}

// NewRigidTransform constructs a rigid transform from a 3x3 rotation matrix and
// a translation vector.
func NewRigidTransform(rotation mat.Matrix, translation r3.Vector) (*RigidTransform, error) {
	r, c := rotation.Dims()
	if r != 3 || c != 3 {
		return nil, errors.Errorf("rotation block must be 3x3, got %dx%d", r, c)
	}
	if err := checkOrthonormal(rotation); err != nil {
		return nil, err
	}
	rot := mat.NewDense(3, 3, nil)
	rot.Copy(rotation)
	return &RigidTransform{rot: rot, trans: translation}, nil
}

// NewRigidTransformFromMatrix constructs a rigid transform from a 4x4
// homogeneous transformation matrix.
func NewRigidTransformFromMatrix(m mat.Matrix) (*RigidTransform, error) {
	r, c := m.Dims()
	if r != 4 || c != 4 {
		return nil, errors.Errorf("homogeneous transform must be 4x4, got %dx%d", r, c)
	}
	for j, want := range []float64{0, 0, 0, 1} {
		if math.Abs(m.At(3, j)-want) > orthonormalEpsilon {
			return nil, errors.Errorf("bottom row of homogeneous transform must be [0 0 0 1], got %v at column %d", m.At(3, j), j)
		}
	}
	rot := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rot.Set(i, j, m.At(i, j))
		}
	}
	return NewRigidTransform(rot, r3.Vector{X: m.At(0, 3), Y: m.At(1, 3), Z: m.At(2, 3)})
}

// NewRigidTransformFromAxisAngle constructs a rigid transform rotating by theta
// radians about the given axis and then translating.
func NewRigidTransformFromAxisAngle(axis r3.Vector, theta float64, translation r3.Vector) (*RigidTransform, error) {
	if axis.Norm() == 0 {
		return nil, errors.New("axis of rotation must be nonzero")
	}
	return &RigidTransform{rot: rotationFromAxisAngle(axis, theta), trans: translation}, nil
}

// Rotation returns a copy of the 3x3 rotation block.
func (t *RigidTransform) Rotation() *mat.Dense {
	rot := mat.NewDense(3, 3, nil)
	rot.Copy(t.rot)
	return rot
}

// Translation returns the translation component.
func (t *RigidTransform) Translation() r3.Vector {
	return t.trans
}

// Matrix returns the transform as a 4x4 homogeneous matrix.
func (t *RigidTransform) Matrix() *mat.Dense {
	m := mat.NewDense(4, 4, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, t.rot.At(i, j))
		}
	}
	m.Set(0, 3, t.trans.X)
	m.Set(1, 3, t.trans.Y)
	m.Set(2, 3, t.trans.Z)
	m.Set(3, 3, 1)
	return m
}

// Compose returns the transform equivalent to applying other first and then t.
func (t *RigidTransform) Compose(other *RigidTransform) *RigidTransform {
	rot := mat.NewDense(3, 3, nil)
	rot.Mul(t.rot, other.rot)
	return &RigidTransform{
		rot:   rot,
		trans: t.TransformPoint(other.trans),
	}
}

// TransformPoint applies the rigid motion to a point.
func (t *RigidTransform) TransformPoint(p r3.Vector) r3.Vector {
	return t.RotatePoint(p).Add(t.trans)
}

// RotatePoint applies only the rotation block to a vector, appropriate for
// directions and other quantities unaffected by translation.
func (t *RigidTransform) RotatePoint(p r3.Vector) r3.Vector {
	return r3.Vector{
		X: t.rot.At(0, 0)*p.X + t.rot.At(0, 1)*p.Y + t.rot.At(0, 2)*p.Z,
		Y: t.rot.At(1, 0)*p.X + t.rot.At(1, 1)*p.Y + t.rot.At(1, 2)*p.Z,
		Z: t.rot.At(2, 0)*p.X + t.rot.At(2, 1)*p.Y + t.rot.At(2, 2)*p.Z,
	}
}

func identity3() *mat.Dense {
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
}

// checkOrthonormal verifies R·Rᵗ = I to within orthonormalEpsilon.
func checkOrthonormal(rotation mat.Matrix) error {
	var rrt mat.Dense
	rrt.Mul(rotation, rotation.T())
	worst := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if delta := math.Abs(rrt.At(i, j) - want); delta > worst {
				worst = delta
			}
		}
	}
	if !utils.Float64AlmostEqual(worst, 0, orthonormalEpsilon) {
		return errors.Wrapf(ErrInvalidTransform, "R·Rᵗ deviates from identity by %g", worst)
	}
	return nil
}

// rotationFromAxisAngle builds the rotation matrix for a rotation of theta
// radians about the given axis, by conjugating the basis vectors with the
// corresponding unit quaternion.
func rotationFromAxisAngle(axis r3.Vector, theta float64) *mat.Dense {
	axis = axis.Normalize()
	s := math.Sin(theta / 2)
	q := quat.Number{Real: math.Cos(theta / 2), Imag: s * axis.X, Jmag: s * axis.Y, Kmag: s * axis.Z}
	rot := mat.NewDense(3, 3, nil)
	basis := []quat.Number{
		{Imag: 1},
		{Jmag: 1},
		{Kmag: 1},
	}
	for col, e := range basis {
		rotated := quat.Mul(quat.Mul(q, e), quat.Conj(q))
		rot.Set(0, col, rotated.Imag)
		rot.Set(1, col, rotated.Jmag)
		rot.Set(2, col, rotated.Kmag)
	}
	return rot
}
