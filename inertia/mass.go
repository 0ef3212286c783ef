// Package inertia computes rigid-body mass properties of solids bounded by
// triangle meshes, and provides the tensor algebra needed to use them:
// principal-axis decomposition, rigid-transform propagation, and closed-form
// formulas for canonical primitives.
package inertia

import (
	"math"

	"github.com/golang/geo/r3"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/mat"

	"github.com/dajusc/trimesh/spatialmath"
	"github.com/dajusc/trimesh/utils"
)

// Meshes with at least this many triangles are integrated with a partitioned
// parallel reduction. A var so tests can exercise both paths.
var parallelThreshold = 2048

// A net volume smaller than this fraction of the gross (unsigned) accumulated
// volume is indistinguishable from an open or collapsed surface.
const degenerateRelTol = 1e-9

// MassProperties are the rigid-body mass properties of a solid with uniform
// density, in the coordinate frame of the input mesh.
type MassProperties struct {
	// Volume of the enclosed solid, always non-negative.
	Volume float64
	// Mass is density times volume.
	Mass float64
	// CenterOfMass of the solid.
	CenterOfMass r3.Vector
	// Inertia is the inertia tensor about CenterOfMass, nil if the caller
	// skipped the second-order pass.
	Inertia *mat.SymDense
	// OrientationFlipped reports that the accumulated volume came out negative,
	// meaning the input winding was inverted, and a global sign flip was applied.
	OrientationFlipped bool
}

// ComputeMassProperties integrates volume, center of mass, and the inertia
// tensor of the solid bounded by the given consistently wound, watertight
// triangles. Triangles and the coordinate origin form signed tetrahedra whose
// closed-form moment contributions are summed over the surface; the choice of
// origin does not affect the result. Set skipInertia to skip the costlier
// second-order pass when only volume and center of mass are needed.
func ComputeMassProperties(triangles []*spatialmath.Triangle, density float64, skipInertia bool) (*MassProperties, error) {
	var err error
	if density <= 0 || math.IsNaN(density) || math.IsInf(density, 0) {
		err = multierr.Append(err, newBadDensityError(density))
	}
	if len(triangles) == 0 {
		err = multierr.Append(err, newDegenerateGeometryError(0, 0))
	}
	if err != nil {
		return nil, err
	}

	acc := reduceMoments(triangles, !skipInertia)
	acc.finalize()

	flipped := false
	if acc.volume < 0 {
		// Net-negative volume means the winding is globally inverted; a single
		// sign flip of every integral recovers the correctly oriented solid.
		acc.negate()
		flipped = true
	}
	if acc.gross <= 0 || acc.volume <= degenerateRelTol*acc.gross {
		return nil, newDegenerateGeometryError(acc.volume, len(triangles))
	}

	com := r3.Vector{
		X: acc.first[0] / acc.volume,
		Y: acc.first[1] / acc.volume,
		Z: acc.first[2] / acc.volume,
	}
	props := &MassProperties{
		Volume:             acc.volume,
		Mass:               density * acc.volume,
		CenterOfMass:       com,
		OrientationFlipped: flipped,
	}
	if !skipInertia {
		props.Inertia = assembleInertia(acc.second, acc.volume, com, density)
	}
	return props, nil
}

// assembleInertia maps the six second-order volume integrals about the origin
// into the inertia tensor about the center of mass: parallel-axis correction,
// then the fixed sign table (diagonal entries sum the two orthogonal squared
// integrals, products of inertia are negated), then density scaling. The
// tensor is symmetric by construction.
func assembleInertia(second [6]float64, volume float64, com r3.Vector, density float64) *mat.SymDense {
	xx := second[0] - volume*com.X*com.X
	yy := second[1] - volume*com.Y*com.Y
	zz := second[2] - volume*com.Z*com.Z
	xy := second[3] - volume*com.X*com.Y
	yz := second[4] - volume*com.Y*com.Z
	zx := second[5] - volume*com.Z*com.X

	return mat.NewSymDense(3, []float64{
		density * (yy + zz), density * -xy, density * -zx,
		density * -xy, density * (xx + zz), density * -yz,
		density * -zx, density * -yz, density * (xx + yy),
	})
}

// momentAccumulator holds the raw per-triangle sums of the zeroth, first, and
// second order volume integrals, before the shared polynomial coefficients are
// applied. It is the unit of the parallel reduction: add folds in one triangle,
// combine merges two partial sums, and both are commutative and associative.
type momentAccumulator struct {
	wantSecond bool

	volume float64
	gross  float64
	first  [3]float64
	// xx, yy, zz, xy, yz, zx
	second [6]float64
}

func (a *momentAccumulator) add(tri *spatialmath.Triangle) {
	pts := tri.Points()
	p0, p1, p2 := pts[0], pts[1], pts[2]
	d := p1.Sub(p0).Cross(p2.Sub(p0))

	f1x, f2x, f3x, g0x, g1x, g2x := integralSubexpressions(p0.X, p1.X, p2.X)
	_, f2y, f3y, g0y, g1y, g2y := integralSubexpressions(p0.Y, p1.Y, p2.Y)
	_, f2z, f3z, g0z, g1z, g2z := integralSubexpressions(p0.Z, p1.Z, p2.Z)

	a.volume += d.X * f1x
	a.gross += math.Abs(d.X * f1x)
	a.first[0] += d.X * f2x
	a.first[1] += d.Y * f2y
	a.first[2] += d.Z * f2z
	if a.wantSecond {
		a.second[0] += d.X * f3x
		a.second[1] += d.Y * f3y
		a.second[2] += d.Z * f3z
		a.second[3] += d.X * (p0.Y*g0x + p1.Y*g1x + p2.Y*g2x)
		a.second[4] += d.Y * (p0.Z*g0y + p1.Z*g1y + p2.Z*g2y)
		a.second[5] += d.Z * (p0.X*g0z + p1.X*g1z + p2.X*g2z)
	}
}

func (a *momentAccumulator) combine(other *momentAccumulator) {
	a.volume += other.volume
	a.gross += other.gross
	for i := range a.first {
		a.first[i] += other.first[i]
	}
	for i := range a.second {
		a.second[i] += other.second[i]
	}
}

// finalize applies the shared polynomial coefficients of the divergence-theorem
// reduction to the raw sums. Call exactly once, after all triangles are folded.
func (a *momentAccumulator) finalize() {
	a.volume /= 6
	a.gross /= 6
	for i := range a.first {
		a.first[i] /= 24
	}
	for i := 0; i < 3; i++ {
		a.second[i] /= 60
	}
	for i := 3; i < 6; i++ {
		a.second[i] /= 120
	}
}

func (a *momentAccumulator) negate() {
	a.volume = -a.volume
	for i := range a.first {
		a.first[i] = -a.first[i]
	}
	for i := range a.second {
		a.second[i] = -a.second[i]
	}
}

// integralSubexpressions computes, for one coordinate axis with vertex
// components w0, w1, w2, the shared polynomial terms of the per-triangle
// contributions to the first, second, and product moments.
func integralSubexpressions(w0, w1, w2 float64) (f1, f2, f3, g0, g1, g2 float64) {
	temp0 := w0 + w1
	f1 = temp0 + w2
	temp1 := w0 * w0
	temp2 := temp1 + w1*temp0
	f2 = temp2 + w2*f1
	f3 = w0*temp1 + w1*temp2 + w2*f2
	g0 = f2 + w0*(f1+w0)
	g1 = f2 + w1*(f1+w1)
	g2 = f2 + w2*(f1+w2)
	return f1, f2, f3, g0, g1, g2
}

// reduceMoments folds every triangle into a single accumulator. Large inputs
// are partitioned across workers and the partial sums merged in group order,
// which the commutative combine makes equivalent to the serial fold.
func reduceMoments(triangles []*spatialmath.Triangle, wantSecond bool) *momentAccumulator {
	if len(triangles) < parallelThreshold || utils.ParallelFactor <= 1 {
		acc := &momentAccumulator{wantSecond: wantSecond}
		for _, tri := range triangles {
			acc.add(tri)
		}
		return acc
	}

	var partials []momentAccumulator
	utils.GroupWorkParallel(
		len(triangles),
		func(numGroups int) {
			partials = make([]momentAccumulator, numGroups)
		},
		func(groupNum, groupSize, from, to int) (utils.MemberWorkFunc, utils.GroupWorkDoneFunc) {
			acc := &partials[groupNum]
			acc.wantSecond = wantSecond
			return func(memberNum, workNum int) {
				acc.add(triangles[workNum])
			}, nil
		},
	)

	total := &momentAccumulator{wantSecond: wantSecond}
	for i := range partials {
		total.combine(&partials[i])
	}
	return total
}
