package orrery

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/fogleman/simplify"
)

type Mesh struct {
	Triangles []*Triangle
	box       *Box
}

func NewTriangleMesh(triangles []*Triangle) *Mesh {
	return &Mesh{Triangles: triangles}
}

// LoadMesh picks a loader by file extension.
func LoadMesh(path string) (*Mesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return LoadOBJ(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	default:
		return nil, fmt.Errorf("load mesh %s: unsupported extension %q", path, ext)
	}
}

func (m *Mesh) BoundingBox() Box {
	if m.box == nil {
		box := EmptyBox
		for i, t := range m.Triangles {
			if i == 0 {
				box = t.BoundingBox()
			} else {
				box = BoxForBoxes([]Box{box, t.BoundingBox()})
			}
		}
		m.box = &box
	}
	return *m.box
}

func (m *Mesh) SetColor(c Color) {
	for _, t := range m.Triangles {
		t.SetColor(c)
	}
}

// VertexArray flattens the mesh into a triangle list: every three
// consecutive vertices form one triangle.
func (m *Mesh) VertexArray() []Vertex {
	vs := make([]Vertex, 0, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		vs = append(vs, t.V1, t.V2, t.V3)
	}
	return vs
}

// Simplify reduces the triangle count to roughly factor times its current
// count using quadric error collapse. Normals of the result point away from the
// mesh's bounding box centre, which is exact for the spheres used here.
func (m *Mesh) Simplify(factor float64) *Mesh {
	if factor <= 0 || factor >= 1 || len(m.Triangles) == 0 {
		return m
	}
	in := make([]*simplify.Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		in[i] = simplify.NewTriangle(
			toSimplify(t.V1.Position), toSimplify(t.V2.Position), toSimplify(t.V3.Position))
	}
	out := simplify.NewMesh(in).Simplify(factor)

	center := m.BoundingBox().Center()
	triangles := make([]*Triangle, 0, len(out.Triangles))
	for _, t := range out.Triangles {
		tri := &Triangle{}
		tri.V1 = radialVertex(fromSimplify(t.V1), center)
		tri.V2 = radialVertex(fromSimplify(t.V2), center)
		tri.V3 = radialVertex(fromSimplify(t.V3), center)
		if tri.Area() == 0 {
			continue
		}
		triangles = append(triangles, tri)
	}
	return NewTriangleMesh(triangles)
}

func toSimplify(v Vector) simplify.Vector {
	return simplify.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

func fromSimplify(v simplify.Vector) Vector {
	return Vector{v.X, v.Y, v.Z}
}

func radialVertex(p, center Vector) Vertex {
	return Vertex{Position: p, Normal: p.Sub(center).Normalize()}
}

// NewSphereMesh builds a unit UV sphere centred on the origin with outward
// normals. stacks and slices are clamped to at least 2 and 3.
func NewSphereMesh(stacks, slices int) *Mesh {
	stacks = max(stacks, 2)
	slices = max(slices, 3)

	point := func(stack, slice int) Vertex {
		theta := float64(stack) * math.Pi / float64(stacks)
		phi := float64(slice) * 2 * math.Pi / float64(slices)
		st, ct := math.Sincos(theta)
		sp, cp := math.Sincos(phi)
		p := Vector{cp * st, ct, sp * st}
		return Vertex{
			Position: p,
			Normal:   p,
			Texture:  Vector{float64(slice) / float64(slices), float64(stack) / float64(stacks), 0},
		}
	}

	var triangles []*Triangle
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := point(i, j)
			b := point(i+1, j)
			c := point(i, j+1)
			d := point(i+1, j+1)
			// the pole rows would otherwise produce degenerate triangles
			if i != 0 {
				triangles = append(triangles, &Triangle{a, c, b})
			}
			if i != stacks-1 {
				triangles = append(triangles, &Triangle{c, d, b})
			}
		}
	}
	return NewTriangleMesh(triangles)
}
