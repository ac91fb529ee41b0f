package orrery

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	FieldOfView = 45.0
	NearPlane   = 0.1
	FarPlane    = 1000.0
)

// ModelMatrix rotates in object space about x, then y, then z, and then
// applies a uniform scale and the translation.
func ModelMatrix(translation Vector, scale float64, rotation Vector) Matrix {
	r := RotateZ(rotation.Z).Mul(RotateY(rotation.Y)).Mul(RotateX(rotation.X))
	st := Matrix{
		scale, 0, 0, translation.X,
		0, scale, 0, translation.Y,
		0, 0, scale, translation.Z,
		0, 0, 0, 1}
	return st.Mul(r)
}

// ViewMatrix is the world-to-camera look-at transform. eye must differ
// from center.
func ViewMatrix(eye, center, up Vector) Matrix {
	return matrixFromMgl(mgl64.LookAtV(eye.mgl(), center.mgl(), up.mgl()))
}

// PerspectiveMatrix uses a fixed 45° vertical field of view.
func PerspectiveMatrix(width, height float64) Matrix {
	fovy := FieldOfView * math.Pi / 180
	return matrixFromMgl(mgl64.Perspective(fovy, width/height, NearPlane, FarPlane))
}

// ViewportMatrix maps normalized device coordinates to pixels with y
// growing downward. z passes through.
func ViewportMatrix(width, height float64) Matrix {
	return Matrix{
		width / 2, 0, 0, width / 2,
		0, -height / 2, 0, height / 2,
		0, 0, 1, 0,
		0, 0, 0, 1}
}
