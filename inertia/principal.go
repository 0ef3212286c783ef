package inertia

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Asymmetry beyond this fraction of the largest entry magnitude is treated as a
// genuinely non-symmetric tensor rather than numerical noise.
const symmetryRelTol = 1e-8

// PrincipalAxes is the eigen-decomposition of an inertia tensor: three
// principal moments and their matching unit axes. Components[i] corresponds to
// row i of Vectors. No ordering of the components is guaranteed; select the
// extreme moments by argmin/argmax, not by position. When two moments coincide
// (an axially symmetric body) the matching rows span the eigenspace but are
// individually arbitrary within it.
type PrincipalAxes struct {
	Components [3]float64
	Vectors    *mat.Dense
}

// MinComponent returns the index of the smallest principal moment.
func (p *PrincipalAxes) MinComponent() int {
	idx := 0
	for i := 1; i < 3; i++ {
		if p.Components[i] < p.Components[idx] {
			idx = i
		}
	}
	return idx
}

// MaxComponent returns the index of the largest principal moment.
func (p *PrincipalAxes) MaxComponent() int {
	idx := 0
	for i := 1; i < 3; i++ {
		if p.Components[i] > p.Components[idx] {
			idx = i
		}
	}
	return idx
}

// Vector returns the unit axis matching Components[i].
func (p *PrincipalAxes) Vector(i int) []float64 {
	return []float64{p.Vectors.At(i, 0), p.Vectors.At(i, 1), p.Vectors.At(i, 2)}
}

// PrincipalAxis eigen-decomposes a symmetric 3x3 inertia tensor into its
// principal moments and orthonormal principal axes. Inputs that are
// non-symmetric beyond numerical noise, non-finite, or not 3x3 are rejected.
func PrincipalAxis(tensor mat.Matrix) (*PrincipalAxes, error) {
	sym, err := checkTensor(tensor)
	if err != nil {
		return nil, err
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return nil, errors.New("eigen-decomposition of inertia tensor failed to converge")
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	axes := &PrincipalAxes{Vectors: mat.NewDense(3, 3, nil)}
	copy(axes.Components[:], eig.Values(nil))
	// gonum returns eigenvectors as columns; rows align with Components here.
	axes.Vectors.Copy(vecs.T())
	return axes, nil
}

// checkTensor validates that a matrix is a finite, symmetric 3x3 tensor and
// converts it to symmetric storage.
func checkTensor(tensor mat.Matrix) (*mat.SymDense, error) {
	r, c := tensor.Dims()
	if r != 3 || c != 3 {
		return nil, errors.Errorf("inertia tensor must be 3x3, got %dx%d", r, c)
	}
	scale := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := tensor.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, errors.Wrapf(ErrNonFiniteValue, "tensor entry (%d,%d) is %g", i, j, v)
			}
			if abs := math.Abs(v); abs > scale {
				scale = abs
			}
		}
	}
	worst := 0.0
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if delta := math.Abs(tensor.At(i, j) - tensor.At(j, i)); delta > worst {
				worst = delta
			}
		}
	}
	if worst > symmetryRelTol*math.Max(scale, 1) {
		return nil, newNonSymmetricTensorError(worst)
	}

	sym := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			sym.SetSym(i, j, tensor.At(i, j))
		}
	}
	return sym, nil
}
