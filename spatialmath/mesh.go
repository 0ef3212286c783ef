package spatialmath

// Mesh is a triangle soup: a set of triangles with consistent outward winding
// that together bound a solid. The mesh owns no adjacency structure; it is the
// minimal representation the mass-property integrator needs.
type Mesh struct {
	triangles []*Triangle
	label     string
}

// NewMesh creates a mesh from a set of triangles.
func NewMesh(triangles []*Triangle, label string) *Mesh {
	return &Mesh{
		triangles: triangles,
		label:     label,
	}
}

// Triangles returns the triangles of the mesh.
func (m *Mesh) Triangles() []*Triangle {
	return m.triangles
}

// Label returns the label of the mesh.
func (m *Mesh) Label() string {
	return m.label
}

// Transform returns a new mesh with every vertex moved by the given rigid
// transform. The receiver is unchanged.
func (m *Mesh) Transform(tf *RigidTransform) *Mesh {
	transformed := make([]*Triangle, 0, len(m.triangles))
	for _, t := range m.triangles {
		transformed = append(transformed, t.Transform(tf))
	}
	return &Mesh{
		triangles: transformed,
		label:     m.label,
	}
}

// Flipped returns a new mesh with the winding of every triangle reversed,
// turning outward normals inward.
func (m *Mesh) Flipped() *Mesh {
	flipped := make([]*Triangle, 0, len(m.triangles))
	for _, t := range m.triangles {
		flipped = append(flipped, t.Flipped())
	}
	return &Mesh{
		triangles: flipped,
		label:     m.label,
	}
}

// Concat returns a mesh containing the triangles of both meshes. For two
// disjoint closed solids the result is a valid multi-body solid whose volume is
// the sum of the parts.
func (m *Mesh) Concat(other *Mesh) *Mesh {
	triangles := make([]*Triangle, 0, len(m.triangles)+len(other.triangles))
	triangles = append(triangles, m.triangles...)
	triangles = append(triangles, other.triangles...)
	return &Mesh{
		triangles: triangles,
		label:     m.label,
	}
}
