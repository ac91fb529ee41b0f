package orrery

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelMatrixPureTranslation(t *testing.T) {
	m := ModelMatrix(V(1, 2, 3), 1, Vector{})
	assert.Equal(t, Translate(V(1, 2, 3)), m)
	assert.Equal(t, V(1, 2, 3), m.Translation())
	assert.Equal(t, V(2, 2, 3), m.MulPosition(V(1, 0, 0)))
}

func TestModelMatrixRotationOrder(t *testing.T) {
	// x first: (0,1,0) -> (0,0,1); then y: (0,0,1) -> (1,0,0)
	m := ModelMatrix(Vector{}, 1, V(math.Pi/2, math.Pi/2, 0))
	assertVector(t, V(1, 0, 0), m.MulPosition(V(0, 1, 0)), tol)

	// scale applies after rotation and before translation
	m = ModelMatrix(V(10, 0, 0), 2, V(0, math.Pi/2, 0))
	assertVector(t, V(10, 0, -2), m.MulPosition(V(1, 0, 0)), tol)
}

func TestViewMatrix(t *testing.T) {
	view := ViewMatrix(V(0, 0, 20), Vector{}, V(0, 1, 0))
	assertVector(t, Vector{}, view.MulPosition(V(0, 0, 20)), tol)
	assertVector(t, V(0, 0, -20), view.MulPosition(Vector{}), tol)

	view = ViewMatrix(V(0, 20, 0), Vector{}, V(0, 0, -1))
	assertVector(t, V(0, 0, -20), view.MulPosition(Vector{}), tol)
}

func TestPerspectiveMatrix(t *testing.T) {
	p := PerspectiveMatrix(600, 600)
	near := p.MulPositionW(V(0, 0, -NearPlane))
	far := p.MulPositionW(V(0, 0, -FarPlane))
	assert.InDelta(t, -1, near.Z/near.W, 1e-9)
	assert.InDelta(t, 1, far.Z/far.W, 1e-9)
	assert.InDelta(t, NearPlane, near.W, 1e-12)

	// the top of the frustum at distance 1 is tan(fov/2)
	top := math.Tan(Radians(FieldOfView) / 2)
	edge := p.MulPositionW(V(0, top, -1))
	assert.InDelta(t, 1, edge.Y/edge.W, 1e-9)
}

func TestViewportMatrix(t *testing.T) {
	v := ViewportMatrix(600, 400)
	assertVector(t, V(300, 200, 0.25), v.MulPosition(V(0, 0, 0.25)), tol)
	assertVector(t, V(0, 0, 0), v.MulPosition(V(-1, 1, 0)), tol)
	assertVector(t, V(600, 400, 0), v.MulPosition(V(1, -1, 0)), tol)
}
