package inertia

import (
	"gonum.org/v1/gonum/mat"

	"github.com/dajusc/trimesh/spatialmath"
)

// TransformInertia re-expresses an inertia tensor under a rigid motion of the
// body. A tensor taken about the center of mass is invariant under pure
// translation (the reference point moves with the body), so only the rotation
// block acts on the tensor: I' = R·I·Rᵗ. Propagation composes: transforming by
// t0 then t1 equals transforming by t1·t0.
func TransformInertia(tf *spatialmath.RigidTransform, tensor mat.Matrix) (*mat.SymDense, error) {
	sym, err := checkTensor(tensor)
	if err != nil {
		return nil, err
	}
	rot := tf.Rotation()

	var ri mat.Dense
	ri.Mul(rot, sym)

	// Fill only the upper triangle of R·I·Rᵗ so the result is symmetric by
	// construction.
	out := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			v := 0.0
			for k := 0; k < 3; k++ {
				v += ri.At(i, k) * rot.At(j, k)
			}
			out.SetSym(i, j, v)
		}
	}
	return out, nil
}
