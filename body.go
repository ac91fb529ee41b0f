package orrery

import (
	"log"
	"math"
)

// Body is an orbiting object: a triangle list, the shader that colors it and
// its orbital parameters. Bodies with a zero orbit radius stay at the origin.
type Body struct {
	Name          string
	Vertices      []Vertex
	Shader        ShaderKind
	OrbitRadius   float64
	RotationSpeed float64
	OrbitSpeed    float64
	Scale         float64

	// scratch reused across frames
	transformed []Vertex
	fragments   []Fragment
}

func NewBody(name string, mesh *Mesh, shader ShaderKind) *Body {
	b := &Body{Name: name, Shader: shader, Scale: 1}
	if mesh != nil {
		b.Vertices = mesh.VertexArray()
	}
	return b
}

// orbit returns the planar orbit offset and the spin angle at time.
func (b *Body) orbit(time float64) (Vector, float64) {
	s, c := math.Sincos(b.OrbitSpeed * time)
	return Vector{b.OrbitRadius * c, 0, b.OrbitRadius * s}, b.RotationSpeed * time
}

// ModelMatrix places the body on its orbit in the XZ plane and spins it
// about the world y axis.
func (b *Body) ModelMatrix(time float64) Matrix {
	translation, spin := b.orbit(time)
	return ModelMatrix(translation, b.Scale, Vector{0, spin, 0})
}

// WorldPosition is the body's centre at time, the translation of
// ModelMatrix(time).
func (b *Body) WorldPosition(time float64) Vector {
	p, _ := b.orbit(time)
	return p
}

// Render runs the vertex stage, rasterizes each complete triple of
// vertices, shades the fragments that land inside target and writes them
// with their depth. Trailing vertices that do not fill a triangle are
// ignored, as are triangles with a vertex behind the eye.
func (b *Body) Render(target Target, u *Uniforms, r *Rasterizer) {
	if len(b.Vertices) < 3 {
		log.Printf("orrery: body %q has no triangles to render", b.Name)
		return
	}
	width, height := target.Size()
	shader := b.Shader.Shader()

	b.transformed = transformVertices(b.transformed, b.Vertices, u)
	vs := b.transformed
	for i := 0; i+2 < len(vs); i += 3 {
		v0, v1, v2 := vs[i], vs[i+1], vs[i+2]
		if v0.W <= 0 || v1.W <= 0 || v2.W <= 0 {
			continue
		}
		b.fragments = r.Triangle(b.fragments[:0], v0, v1, v2)
		for _, f := range b.fragments {
			x, y := int(f.Position.X), int(f.Position.Y)
			if f.Position.X < 0 || f.Position.Y < 0 || x >= width || y >= height {
				continue
			}
			target.SetCurrentColor(shader(f, u).Hex())
			target.Point(x, y, f.Depth)
		}
	}
}
