package primitives

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/dajusc/trimesh/inertia"
	"github.com/dajusc/trimesh/spatialmath"
)

// Box is a solid rectangular prism, axis-aligned and centered at the origin in
// its local frame.
type Box struct {
	dims r3.Vector
	pose *spatialmath.RigidTransform
}

// NewBox creates a box with the given full extents and pose. A nil pose means
// the local frame is the world frame.
func NewBox(dims r3.Vector, pose *spatialmath.RigidTransform) (*Box, error) {
	if dims.X <= 0 || dims.Y <= 0 || dims.Z <= 0 {
		return nil, newBadDimensionsError(inertia.KindBox, inertia.PrimitiveParams{Dims: dims})
	}
	if pose == nil {
		pose = spatialmath.NewZeroRigidTransform()
	}
	return &Box{dims: dims, pose: pose}, nil
}

// Kind returns the box primitive kind.
func (b *Box) Kind() inertia.PrimitiveKind {
	return inertia.KindBox
}

// Params returns the box's local-frame dimensions.
func (b *Box) Params() inertia.PrimitiveParams {
	return inertia.PrimitiveParams{Dims: b.dims}
}

// Pose returns the transform placing the box in world space.
func (b *Box) Pose() *spatialmath.RigidTransform {
	return b.pose
}

// Volume returns the exact volume of the box.
func (b *Box) Volume() float64 {
	return b.dims.X * b.dims.Y * b.dims.Z
}

// Each face is described by its outward normal axis and two tangent axes whose
// cross product equals the normal, so the generated winding is always outward.
var boxFaces = [6]struct {
	normal, u, v r3.Vector
}{
	{r3.Vector{X: 1}, r3.Vector{Y: 1}, r3.Vector{Z: 1}},
	{r3.Vector{X: -1}, r3.Vector{Z: 1}, r3.Vector{Y: 1}},
	{r3.Vector{Y: 1}, r3.Vector{Z: 1}, r3.Vector{X: 1}},
	{r3.Vector{Y: -1}, r3.Vector{X: 1}, r3.Vector{Z: 1}},
	{r3.Vector{Z: 1}, r3.Vector{X: 1}, r3.Vector{Y: 1}},
	{r3.Vector{Z: -1}, r3.Vector{Y: 1}, r3.Vector{X: 1}},
}

// Mesh tessellates the box into 12 consistently wound triangles, two per face.
// Sections is ignored; a box has no curved surfaces.
func (b *Box) Mesh(sections int) (*spatialmath.Mesh, error) {
	half := b.dims.Mul(0.5)
	scale := func(v r3.Vector) r3.Vector {
		return r3.Vector{X: v.X * half.X, Y: v.Y * half.Y, Z: v.Z * half.Z}
	}

	triangles := make([]*spatialmath.Triangle, 0, 12)
	for _, face := range boxFaces {
		c0 := scale(face.normal.Sub(face.u).Sub(face.v))
		c1 := scale(face.normal.Add(face.u).Sub(face.v))
		c2 := scale(face.normal.Add(face.u).Add(face.v))
		c3 := scale(face.normal.Sub(face.u).Add(face.v))
		triangles = append(triangles,
			spatialmath.NewTriangle(c0, c1, c2),
			spatialmath.NewTriangle(c0, c2, c3),
		)
	}

	label := fmt.Sprintf("box_%gx%gx%g", b.dims.X, b.dims.Y, b.dims.Z)
	return spatialmath.NewMesh(triangles, label).Transform(b.pose), nil
}
