package orrery

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func screenVertex(x, y, z float64) Vertex {
	return Vertex{
		Position:            V(x, y, z),
		TransformedPosition: V(x, y, z),
		TransformedNormal:   V(0, 0, 1),
		W:                   1,
	}
}

func TestRasterizeTriangle(t *testing.T) {
	r := NewRasterizer(10, 10, V(0, 0, 2))
	assert.Equal(t, V(0, 0, 1), r.LightDirection)

	v0 := screenVertex(0, 0, 0.5)
	v1 := screenVertex(4, 0, 0.5)
	v2 := screenVertex(0, 4, 0.5)

	frags := r.Triangle(nil, v0, v1, v2)
	assert.Len(t, frags, 10)
	for _, f := range frags {
		assert.LessOrEqual(t, f.Position.X+f.Position.Y, 3.0)
		assert.InDelta(t, 0.5, f.Depth, 1e-12)
		assert.InDelta(t, 1, f.Intensity, 1e-12)
		assert.Equal(t, math.Floor(f.Position.X), f.Position.X)
	}

	// the other winding covers the same pixels
	reversed := r.Triangle(nil, v0, v2, v1)
	assert.Len(t, reversed, len(frags))
	for i := range reversed {
		assert.Equal(t, frags[i].Position, reversed[i].Position)
	}
}

func TestRasterizeInterpolates(t *testing.T) {
	r := NewRasterizer(0, 0, V(0, 0, 1))
	v0 := screenVertex(0, 0, 0)
	v1 := screenVertex(100, 0, 1)
	v2 := screenVertex(0, 100, 1)

	frags := r.Triangle(nil, v0, v1, v2)
	assert.NotEmpty(t, frags)
	first := frags[0]
	assert.Equal(t, Vector{}, first.Position)
	assert.InDelta(t, 0.01, first.Depth, 1e-12)
	assertVector(t, V(0.5, 0.5, 0.01), first.VertexPosition, 1e-12)
}

func TestRasterizePerspectiveCorrect(t *testing.T) {
	r := NewRasterizer(0, 0, V(0, 0, 1))
	v0 := screenVertex(0, 0, 0)
	v1 := screenVertex(64, 0, 0)
	v2 := screenVertex(0, 64, 0)
	v1.Position = V(1, 0, 0)
	v0.Position = Vector{}
	v2.Position = Vector{}
	v1.W = 3

	// halfway across in screen space is less than halfway in object space
	// when the far vertex has the larger w
	for _, f := range r.Triangle(nil, v0, v1, v2) {
		if f.Position.Y == 0 && f.Position.X == 31 {
			assert.Less(t, f.VertexPosition.X, 0.5)
			assert.Greater(t, f.VertexPosition.X, 0.0)
			return
		}
	}
	t.Fatal("pixel (31, 0) not covered")
}

func TestRasterizeLighting(t *testing.T) {
	r := NewRasterizer(10, 10, V(0, 0, 1))
	v0 := screenVertex(0, 0, 0)
	v1 := screenVertex(4, 0, 0)
	v2 := screenVertex(0, 4, 0)
	for _, v := range []*Vertex{&v0, &v1, &v2} {
		v.TransformedNormal = V(0, 0, -1)
	}
	for _, f := range r.Triangle(nil, v0, v1, v2) {
		assert.Equal(t, 0.0, f.Intensity)
	}
}

func TestRasterizeRejects(t *testing.T) {
	r := NewRasterizer(10, 10, V(0, 0, 1))

	collinear := r.Triangle(nil, screenVertex(0, 0, 0), screenVertex(2, 2, 0), screenVertex(4, 4, 0))
	assert.Empty(t, collinear)

	offscreen := r.Triangle(nil, screenVertex(20, 20, 0), screenVertex(30, 20, 0), screenVertex(20, 30, 0))
	assert.Empty(t, offscreen)

	nan := r.Triangle(nil, screenVertex(math.NaN(), 0, 0), screenVertex(3, 0, 0), screenVertex(0, 3, 0))
	assert.Empty(t, nan)
}

func TestRasterizeClipsToBounds(t *testing.T) {
	r := NewRasterizer(5, 5, V(0, 0, 1))
	frags := r.Triangle(nil, screenVertex(-10, -10, 0), screenVertex(30, -10, 0), screenVertex(-10, 30, 0))
	assert.Len(t, frags, 25)
	for _, f := range frags {
		assert.True(t, f.Position.X >= 0 && f.Position.X < 5)
		assert.True(t, f.Position.Y >= 0 && f.Position.Y < 5)
	}
}
