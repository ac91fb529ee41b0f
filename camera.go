package orrery

import "math"

type CameraMode int

const (
	CameraNormal CameraMode = iota
	CameraBirdsEye
)

func (m CameraMode) String() string {
	switch m {
	case CameraBirdsEye:
		return "birds-eye"
	default:
		return "normal"
	}
}

// Pose is an eye/center/up triple.
type Pose struct {
	Eye    Vector `yaml:"eye"`
	Center Vector `yaml:"center"`
	Up     Vector `yaml:"up"`
}

var (
	NormalPose   = Pose{Vector{0, 0, 20}, Vector{0, 0, 0}, Vector{0, 1, 0}}
	BirdsEyePose = Pose{Vector{0, 20, 0}, Vector{0, 0, 0}, Vector{0, 0, -1}}
)

// pitchLimit keeps orbit away from the poles where the look-at basis
// degenerates.
const pitchLimit = math.Pi/2 - 0.1

// panStep is the rotation in radians per unit of pan direction.
const panStep = 0.05

// Camera is owned by the frame driver and mutated only from it. eye must
// never equal center.
type Camera struct {
	Eye        Vector
	Center     Vector
	Up         Vector
	HasChanged bool
	Mode       CameraMode

	// Poses the mode switches cut to.
	NormalPose   Pose
	BirdsEyePose Pose

	warp warp
}

type warp struct {
	startEye     Vector
	startCenter  Vector
	targetEye    Vector
	targetCenter Vector
	progress     float64
	duration     float64
	active       bool
}

func NewCamera(eye, center, up Vector) *Camera {
	return &Camera{
		Eye:          eye,
		Center:       center,
		Up:           up,
		HasChanged:   true,
		Mode:         CameraNormal,
		NormalPose:   NormalPose,
		BirdsEyePose: BirdsEyePose,
		warp: warp{
			startEye:     eye,
			startCenter:  center,
			targetEye:    eye,
			targetCenter: center,
		},
	}
}

func (c *Camera) Pose() Pose {
	return Pose{c.Eye, c.Center, c.Up}
}

func (c *Camera) ViewMatrix() Matrix {
	return ViewMatrix(c.Eye, c.Center, c.Up)
}

func (c *Camera) IsAnimating() bool {
	return c.warp.active
}

// Progress is the linear warp progress in [0, 1].
func (c *Camera) Progress() float64 {
	return c.warp.progress
}

// Orbit moves the eye over the sphere around center, keeping its radius.
// Pitch is clamped to ±(π/2 - 0.1).
func (c *Camera) Orbit(deltaYaw, deltaPitch float64) {
	rv := c.Eye.Sub(c.Center)
	radius := rv.Length()

	yaw := math.Atan2(rv.Z, rv.X)
	pitch := math.Atan2(-rv.Y, math.Sqrt(rv.X*rv.X+rv.Z*rv.Z))

	yaw = math.Mod(yaw+deltaYaw, 2*math.Pi)
	pitch = Clamp(pitch+deltaPitch, -pitchLimit, pitchLimit)

	sy, cy := math.Sincos(yaw)
	sp, cp := math.Sincos(pitch)
	c.Eye = c.Center.Add(Vector{radius * cy * cp, -radius * sp, radius * sy * cp})
	c.HasChanged = true
}

// Zoom moves the eye toward center by delta; negative delta backs away.
// Nothing stops the eye from passing through center.
func (c *Camera) Zoom(delta float64) {
	dir := c.Center.Sub(c.Eye).Normalize()
	c.Eye = c.Eye.Add(dir.MulScalar(delta))
	c.HasChanged = true
}

// MoveCenter swings the look-at target around the eye: direction.X turns it
// about the world y axis and direction.Y about the resulting right axis.
func (c *Camera) MoveCenter(direction Vector) {
	rv := c.Center.Sub(c.Eye)
	radius := rv.Length()

	rotated := rv.RotateAbout(direction.X*panStep, Vector{0, 1, 0})
	right := rotated.Cross(c.Up).Normalize()
	rotated = rotated.RotateAbout(direction.Y*panStep, right)

	c.Center = c.Eye.Add(rotated.Normalize().MulScalar(radius))
	c.HasChanged = true
}

func (c *Camera) SwitchToBirdsEye() {
	c.setPose(c.BirdsEyePose)
	c.Mode = CameraBirdsEye
}

func (c *Camera) SwitchToNormal() {
	c.setPose(c.NormalPose)
	c.Mode = CameraNormal
}

func (c *Camera) SetMode(m CameraMode) {
	if m == CameraBirdsEye {
		c.SwitchToBirdsEye()
	} else {
		c.SwitchToNormal()
	}
}

func (c *Camera) setPose(p Pose) {
	c.Eye = p.Eye
	c.Center = p.Center
	c.Up = p.Up
	c.HasChanged = true
}

// StartWarp animates from the current pose to the target over duration
// seconds. Calling it mid-warp restarts from wherever the camera is now.
// A zero duration completes on the next Update.
func (c *Camera) StartWarp(targetEye, targetCenter Vector, duration float64) {
	c.warp = warp{
		startEye:     c.Eye,
		startCenter:  c.Center,
		targetEye:    targetEye,
		targetCenter: targetCenter,
		duration:     duration,
		active:       true,
	}
}

// Update advances an in-flight warp by dt seconds.
func (c *Camera) Update(dt float64) {
	w := &c.warp
	if !w.active {
		return
	}
	if w.duration > 0 {
		w.progress += dt / w.duration
	} else {
		w.progress = 1
	}
	c.HasChanged = true
	if w.progress >= 1 {
		w.progress = 1
		w.active = false
		c.Eye = w.targetEye
		c.Center = w.targetCenter
		return
	}
	t := smoothStep(w.progress)
	c.Eye = w.startEye.Lerp(w.targetEye, t)
	c.Center = w.startCenter.Lerp(w.targetCenter, t)
}

// BasisChange maps a camera-local vector (right, up, back) into world space
// and normalizes it.
func (c *Camera) BasisChange(v Vector) Vector {
	forward := c.Center.Sub(c.Eye).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	rotated := right.MulScalar(v.X).
		Add(up.MulScalar(v.Y)).
		Sub(forward.MulScalar(v.Z))
	return rotated.Normalize()
}
