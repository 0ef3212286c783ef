package primitives

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/dajusc/trimesh/inertia"
	"github.com/dajusc/trimesh/spatialmath"
)

func meshVolume(t *testing.T, mesh *spatialmath.Mesh) float64 {
	t.Helper()
	props, err := inertia.ComputeMassProperties(mesh.Triangles(), 1, true)
	test.That(t, err, test.ShouldBeNil)
	return props.Volume
}

func TestCylinderMeshVolume(t *testing.T) {
	cyl, err := NewCylinder(2, 5, nil)
	test.That(t, err, test.ShouldBeNil)

	sections := 64
	mesh, err := cyl.Mesh(sections)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(mesh.Triangles()), test.ShouldEqual, 4*sections)

	// the tessellation is an inscribed prism with n isoceles wedges
	n := float64(sections)
	wedgeVolume := n / 2 * 4 * math.Sin(2*math.Pi/n) * 5
	test.That(t, meshVolume(t, mesh), test.ShouldAlmostEqual, wedgeVolume, 1e-9)
}

func TestCylinderDirection(t *testing.T) {
	pose, err := spatialmath.NewRigidTransformFromAxisAngle(r3.Vector{X: 1}, math.Pi/2, r3.Vector{})
	test.That(t, err, test.ShouldBeNil)
	cyl, err := NewCylinder(1, 2, pose)
	test.That(t, err, test.ShouldBeNil)

	// a quarter turn about X sends the local Z axis to -Y
	dir := cyl.Direction()
	test.That(t, dir.X, test.ShouldAlmostEqual, 0, 1e-12)
	test.That(t, dir.Y, test.ShouldAlmostEqual, -1, 1e-12)
	test.That(t, dir.Z, test.ShouldAlmostEqual, 0, 1e-12)
	test.That(t, dir.Norm(), test.ShouldAlmostEqual, 1, 1e-12)
}

func TestBoxMeshExact(t *testing.T) {
	dims := r3.Vector{X: 1, Y: 2, Z: 3}
	box, err := NewBox(dims, nil)
	test.That(t, err, test.ShouldBeNil)
	mesh, err := box.Mesh(0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(mesh.Triangles()), test.ShouldEqual, 12)

	// a box tessellates exactly
	test.That(t, meshVolume(t, mesh), test.ShouldAlmostEqual, box.Volume(), 1e-12)

	// every triangle faces away from the center
	for _, tri := range mesh.Triangles() {
		test.That(t, tri.Normal().Dot(tri.Centroid()), test.ShouldBeGreaterThan, 0)
	}
}

func TestSphereMeshVolume(t *testing.T) {
	sphere, err := NewSphere(1.5, nil)
	test.That(t, err, test.ShouldBeNil)
	mesh, err := sphere.Mesh(64)
	test.That(t, err, test.ShouldBeNil)

	// an inscribed UV sphere under-measures by the discretization error
	volume := meshVolume(t, mesh)
	test.That(t, volume, test.ShouldBeLessThan, sphere.Volume())
	test.That(t, volume, test.ShouldAlmostEqual, sphere.Volume(), 0.02*sphere.Volume())
}

func TestSphereMeshNormalsOutward(t *testing.T) {
	sphere, err := NewSphere(1, nil)
	test.That(t, err, test.ShouldBeNil)
	mesh, err := sphere.Mesh(16)
	test.That(t, err, test.ShouldBeNil)

	for _, tri := range mesh.Triangles() {
		test.That(t, tri.Normal().Dot(tri.Centroid()), test.ShouldBeGreaterThan, 0)
	}
}

func TestInertiaUsesClosedForm(t *testing.T) {
	cyl, err := NewCylinder(1, 10, nil)
	test.That(t, err, test.ShouldBeNil)

	density := 2.0
	tensor, err := Inertia(cyl, density, 0) // sections unused when a closed form exists
	test.That(t, err, test.ShouldBeNil)

	want, err := inertia.CylinderInertia(density*cyl.Volume(), 1, 10, nil)
	test.That(t, err, test.ShouldBeNil)
	for i := 0; i < 3; i++ {
		test.That(t, tensor.At(i, i), test.ShouldAlmostEqual, want.At(i, i), 1e-12)
	}
}

// blob is a solid with no registered closed form; Inertia must fall back to
// integrating its tessellation.
type blob struct {
	*Box
}

func (b *blob) Kind() inertia.PrimitiveKind { return "blob" }

func TestInertiaFallsBackToMesh(t *testing.T) {
	box, err := NewBox(r3.Vector{X: 1, Y: 2, Z: 3}, nil)
	test.That(t, err, test.ShouldBeNil)

	density := 1.5
	tensor, err := Inertia(&blob{box}, density, 8)
	test.That(t, err, test.ShouldBeNil)

	want, err := inertia.BoxInertia(density*box.Volume(), r3.Vector{X: 1, Y: 2, Z: 3}, nil)
	test.That(t, err, test.ShouldBeNil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			test.That(t, tensor.At(i, j), test.ShouldAlmostEqual, want.At(i, j), 1e-9)
		}
	}
}

func TestBadDimensions(t *testing.T) {
	_, err := NewCylinder(0, 1, nil)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = NewCylinder(1, -2, nil)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = NewBox(r3.Vector{X: 1, Y: 0, Z: 1}, nil)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = NewSphere(-1, nil)
	test.That(t, err, test.ShouldNotBeNil)

	cyl, err := NewCylinder(1, 1, nil)
	test.That(t, err, test.ShouldBeNil)
	_, err = cyl.Mesh(2)
	test.That(t, err, test.ShouldNotBeNil)
	sphere, err := NewSphere(1, nil)
	test.That(t, err, test.ShouldBeNil)
	_, err = sphere.Mesh(1)
	test.That(t, err, test.ShouldNotBeNil)
}
