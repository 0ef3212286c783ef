package primitives

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"github.com/dajusc/trimesh/inertia"
	"github.com/dajusc/trimesh/spatialmath"
)

// Cylinder is a solid finite cylinder. In its local frame the symmetry axis is
// Z and the centroid is the origin; the pose places that frame in world space.
type Cylinder struct {
	radius float64
	height float64
	pose   *spatialmath.RigidTransform
}

// NewCylinder creates a cylinder with the given radius, height, and pose. A nil
// pose means the local frame is the world frame.
func NewCylinder(radius, height float64, pose *spatialmath.RigidTransform) (*Cylinder, error) {
	if radius <= 0 || height <= 0 {
		return nil, newBadDimensionsError(inertia.KindCylinder, inertia.PrimitiveParams{Radius: radius, Height: height})
	}
	if pose == nil {
		pose = spatialmath.NewZeroRigidTransform()
	}
	return &Cylinder{radius: radius, height: height, pose: pose}, nil
}

// Kind returns the cylinder primitive kind.
func (c *Cylinder) Kind() inertia.PrimitiveKind {
	return inertia.KindCylinder
}

// Params returns the cylinder's local-frame dimensions.
func (c *Cylinder) Params() inertia.PrimitiveParams {
	return inertia.PrimitiveParams{Radius: c.radius, Height: c.height}
}

// Pose returns the transform placing the cylinder in world space.
func (c *Cylinder) Pose() *spatialmath.RigidTransform {
	return c.pose
}

// Volume returns the exact volume π·r²·h.
func (c *Cylinder) Volume() float64 {
	return math.Pi * c.radius * c.radius * c.height
}

// Direction returns the cylinder's symmetry axis in world space.
func (c *Cylinder) Direction() r3.Vector {
	return c.pose.RotatePoint(r3.Vector{Z: 1})
}

// Center returns the centroid in world space.
func (c *Cylinder) Center() r3.Vector {
	return c.pose.TransformPoint(r3.Vector{})
}

// Mesh tessellates the cylinder into 4·sections triangles: quads along the
// barrel split in two, and triangle fans closing each cap. All triangles are
// wound with outward normals, so the mesh is watertight and consistently
// oriented.
func (c *Cylinder) Mesh(sections int) (*spatialmath.Mesh, error) {
	if sections < 3 {
		return nil, newBadSectionsError(sections)
	}

	halfH := c.height / 2
	bottom := make([]r3.Vector, sections)
	top := make([]r3.Vector, sections)
	for i := 0; i < sections; i++ {
		theta := 2 * math.Pi * float64(i) / float64(sections)
		x := c.radius * math.Cos(theta)
		y := c.radius * math.Sin(theta)
		bottom[i] = r3.Vector{X: x, Y: y, Z: -halfH}
		top[i] = r3.Vector{X: x, Y: y, Z: halfH}
	}
	bottomCenter := r3.Vector{Z: -halfH}
	topCenter := r3.Vector{Z: halfH}

	triangles := make([]*spatialmath.Triangle, 0, 4*sections)
	for i := 0; i < sections; i++ {
		j := (i + 1) % sections
		// Barrel quad, normals radially outward.
		triangles = append(triangles,
			spatialmath.NewTriangle(bottom[i], bottom[j], top[j]),
			spatialmath.NewTriangle(bottom[i], top[j], top[i]),
		)
		// Caps, normals along -Z and +Z.
		triangles = append(triangles,
			spatialmath.NewTriangle(bottomCenter, bottom[j], bottom[i]),
			spatialmath.NewTriangle(topCenter, top[i], top[j]),
		)
	}

	label := fmt.Sprintf("cylinder_r%g_h%g", c.radius, c.height)
	return spatialmath.NewMesh(triangles, label).Transform(c.pose), nil
}
