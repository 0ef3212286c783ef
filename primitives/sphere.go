package primitives

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"github.com/dajusc/trimesh/inertia"
	"github.com/dajusc/trimesh/spatialmath"
)

// Sphere is a solid ball centered at the origin of its local frame.
type Sphere struct {
	radius float64
	pose   *spatialmath.RigidTransform
}

// NewSphere creates a sphere with the given radius and pose. A nil pose means
// the local frame is the world frame.
func NewSphere(radius float64, pose *spatialmath.RigidTransform) (*Sphere, error) {
	if radius <= 0 {
		return nil, newBadDimensionsError(inertia.KindSphere, inertia.PrimitiveParams{Radius: radius})
	}
	if pose == nil {
		pose = spatialmath.NewZeroRigidTransform()
	}
	return &Sphere{radius: radius, pose: pose}, nil
}

// Kind returns the sphere primitive kind.
func (s *Sphere) Kind() inertia.PrimitiveKind {
	return inertia.KindSphere
}

// Params returns the sphere's local-frame dimensions.
func (s *Sphere) Params() inertia.PrimitiveParams {
	return inertia.PrimitiveParams{Radius: s.radius}
}

// Pose returns the transform placing the sphere in world space.
func (s *Sphere) Pose() *spatialmath.RigidTransform {
	return s.pose
}

// Volume returns the exact volume 4/3·π·r³.
func (s *Sphere) Volume() float64 {
	return 4 * math.Pi * s.radius * s.radius * s.radius / 3
}

// Mesh tessellates the sphere as a UV sphere with the given number of
// longitudinal sections and half as many latitudinal rings: pole fans at the
// top and bottom, split quads in between, all wound outward.
func (s *Sphere) Mesh(sections int) (*spatialmath.Mesh, error) {
	if sections < 3 {
		return nil, newBadSectionsError(sections)
	}
	rings := sections / 2
	if rings < 2 {
		rings = 2
	}

	// rows[i][j] is the vertex at polar angle i·π/rings, azimuth j·2π/sections.
	rows := make([][]r3.Vector, rings+1)
	for i := 0; i <= rings; i++ {
		polar := math.Pi * float64(i) / float64(rings)
		rows[i] = make([]r3.Vector, sections)
		for j := 0; j < sections; j++ {
			azimuth := 2 * math.Pi * float64(j) / float64(sections)
			rows[i][j] = r3.Vector{
				X: s.radius * math.Sin(polar) * math.Cos(azimuth),
				Y: s.radius * math.Sin(polar) * math.Sin(azimuth),
				Z: s.radius * math.Cos(polar),
			}
		}
	}
	topPole := r3.Vector{Z: s.radius}
	bottomPole := r3.Vector{Z: -s.radius}

	triangles := make([]*spatialmath.Triangle, 0, 2*sections*(rings-1))
	for j := 0; j < sections; j++ {
		k := (j + 1) % sections
		triangles = append(triangles,
			spatialmath.NewTriangle(topPole, rows[1][j], rows[1][k]),
			spatialmath.NewTriangle(bottomPole, rows[rings-1][k], rows[rings-1][j]),
		)
		for i := 1; i < rings-1; i++ {
			triangles = append(triangles,
				spatialmath.NewTriangle(rows[i][j], rows[i+1][j], rows[i+1][k]),
				spatialmath.NewTriangle(rows[i][j], rows[i+1][k], rows[i][k]),
			)
		}
	}

	label := fmt.Sprintf("sphere_r%g", s.radius)
	return spatialmath.NewMesh(triangles, label).Transform(s.pose), nil
}
