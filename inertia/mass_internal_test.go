package inertia

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/dajusc/trimesh/spatialmath"
)

// unitCubeAt hand-builds the 12 outward-wound triangles of a unit cube
// centered on the given point.
func unitCubeAt(center r3.Vector) []*spatialmath.Triangle {
	v := func(dx, dy, dz float64) r3.Vector {
		return r3.Vector{X: center.X + dx/2, Y: center.Y + dy/2, Z: center.Z + dz/2}
	}
	quads := [][4]r3.Vector{
		{v(1, -1, -1), v(1, 1, -1), v(1, 1, 1), v(1, -1, 1)},     // +x
		{v(-1, -1, -1), v(-1, -1, 1), v(-1, 1, 1), v(-1, 1, -1)}, // -x
		{v(-1, 1, -1), v(-1, 1, 1), v(1, 1, 1), v(1, 1, -1)},     // +y
		{v(-1, -1, -1), v(1, -1, -1), v(1, -1, 1), v(-1, -1, 1)}, // -y
		{v(-1, -1, 1), v(1, -1, 1), v(1, 1, 1), v(-1, 1, 1)},     // +z
		{v(-1, -1, -1), v(-1, 1, -1), v(1, 1, -1), v(1, -1, -1)}, // -z
	}
	triangles := make([]*spatialmath.Triangle, 0, 12)
	for _, q := range quads {
		triangles = append(triangles,
			spatialmath.NewTriangle(q[0], q[1], q[2]),
			spatialmath.NewTriangle(q[0], q[2], q[3]),
		)
	}
	return triangles
}

// cubeGrid builds a disjoint grid of unit cubes, enough triangles to cross the
// parallel threshold.
func cubeGrid(n int) []*spatialmath.Triangle {
	var triangles []*spatialmath.Triangle
	for i := 0; i < n; i++ {
		center := r3.Vector{X: float64(3 * (i % 16)), Y: float64(3 * (i / 16)), Z: 0}
		triangles = append(triangles, unitCubeAt(center)...)
	}
	return triangles
}

func TestParallelReductionMatchesSerial(t *testing.T) {
	triangles := cubeGrid(300) // 3600 triangles, above parallelThreshold
	test.That(t, len(triangles), test.ShouldBeGreaterThan, parallelThreshold)

	parallel := reduceMoments(triangles, true)
	parallel.finalize()

	defer func(old int) { parallelThreshold = old }(parallelThreshold)
	parallelThreshold = 1 << 30
	serial := reduceMoments(triangles, true)
	serial.finalize()

	// the combine operation is a component-wise sum, so partitioning may only
	// reorder floating-point addition
	test.That(t, parallel.volume, test.ShouldAlmostEqual, serial.volume, 1e-8)
	for i := range serial.first {
		test.That(t, parallel.first[i], test.ShouldAlmostEqual, serial.first[i], 1e-7)
	}
	for i := range serial.second {
		test.That(t, parallel.second[i], test.ShouldAlmostEqual, serial.second[i], 1e-6)
	}

	// and the volume is what the grid of unit cubes says it must be
	test.That(t, serial.volume, test.ShouldAlmostEqual, 300, 1e-9)
}

func TestAccumulatorCombineOrderIndependent(t *testing.T) {
	triangles := unitCubeAt(r3.Vector{X: 1, Y: 2, Z: 3})

	whole := &momentAccumulator{wantSecond: true}
	for _, tri := range triangles {
		whole.add(tri)
	}

	front := &momentAccumulator{wantSecond: true}
	back := &momentAccumulator{wantSecond: true}
	for i, tri := range triangles {
		if i < len(triangles)/2 {
			front.add(tri)
		} else {
			back.add(tri)
		}
	}
	back.combine(front)

	test.That(t, back.volume, test.ShouldAlmostEqual, whole.volume, 1e-12)
	test.That(t, back.gross, test.ShouldAlmostEqual, whole.gross, 1e-12)
	for i := range whole.first {
		test.That(t, back.first[i], test.ShouldAlmostEqual, whole.first[i], 1e-12)
	}
	for i := range whole.second {
		test.That(t, back.second[i], test.ShouldAlmostEqual, whole.second[i], 1e-12)
	}
}

func TestSkipSecondOrderLeavesRawZeros(t *testing.T) {
	acc := &momentAccumulator{wantSecond: false}
	for _, tri := range unitCubeAt(r3.Vector{}) {
		acc.add(tri)
	}
	acc.finalize()

	test.That(t, acc.volume, test.ShouldAlmostEqual, 1, 1e-12)
	for _, v := range acc.second {
		test.That(t, v, test.ShouldEqual, 0)
	}
}
