package orrery

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 48
	cfg.Height = 48
	cfg.Mesh = MeshConfig{Stacks: 8, Slices: 12}
	return cfg
}

func newTestScene(t *testing.T) *Scene {
	t.Helper()
	s, err := NewScene(smallConfig())
	require.NoError(t, err)
	return s
}

func TestNewScene(t *testing.T) {
	s := newTestScene(t)
	assert.Len(t, s.Bodies, 5)
	assert.Equal(t, "Sun", s.Sun.Name)
	assert.Equal(t, "Earth", s.Body(0).Name)
	assert.Nil(t, s.Body(5))
	assert.Nil(t, s.Body(-1))
	assert.Equal(t, NormalPose, s.Camera.Pose())
	assert.Equal(t, 48, s.Framebuffer.Width)

	// bodies without their own mesh share the generated sphere
	assert.Equal(t, len(s.Sun.Vertices), len(s.Body(0).Vertices))

	cfg := smallConfig()
	cfg.Width = 0
	_, err := NewScene(cfg)
	assert.Error(t, err)

	cfg = smallConfig()
	cfg.Bodies[0].Mesh = "missing.obj"
	_, err = NewScene(cfg)
	assert.ErrorContains(t, err, "Earth")
}

func TestSceneRender(t *testing.T) {
	s := newTestScene(t)
	s.Frame(Input{}, 16*time.Millisecond)
	assert.Equal(t, uint32(1), s.Time)
	assert.False(t, s.Camera.HasChanged)

	bg := s.Config.BackgroundColor()
	assert.Equal(t, bg, s.Framebuffer.At(0, 0))

	// the sun sits in the middle of the default view, white at its centre
	centre := s.Framebuffer.At(24, 24)
	assert.Equal(t, 255.0, centre.R)
	assert.Equal(t, 255.0, centre.G)
	assert.Greater(t, centre.B, 180.0)

	drawn := 0
	for y := 0; y < 48; y++ {
		for x := 0; x < 48; x++ {
			if s.Framebuffer.At(x, y) != bg {
				drawn++
			}
		}
	}
	assert.Greater(t, drawn, 100)
}

func TestSceneSupersampling(t *testing.T) {
	cfg := smallConfig()
	cfg.Scale = 2
	s, err := NewScene(cfg)
	require.NoError(t, err)
	assert.Equal(t, 96, s.Framebuffer.Width)
	s.Render()

	var buf bytes.Buffer
	require.NoError(t, s.WritePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 48, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, s.SavePNG(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestSceneUniforms(t *testing.T) {
	s := newTestScene(t)
	s.Time = 10
	earth := s.Body(0)
	u := s.Uniforms(earth, s.Camera.ViewMatrix())
	assert.Equal(t, uint32(10), u.Time)
	assert.Equal(t, earth.ModelMatrix(10), u.Model)
	assert.Equal(t, Vector{}, u.SunPosition)
	assert.Equal(t, s.Projection, u.Projection)
}

func TestSceneWarpTo(t *testing.T) {
	s := newTestScene(t)
	s.Time = 50
	assert.False(t, s.WarpTo(-1))
	assert.False(t, s.WarpTo(5))
	assert.False(t, s.Camera.IsAnimating())

	require.True(t, s.WarpTo(1))
	target := s.Body(1).WorldPosition(50)
	assert.True(t, s.Camera.IsAnimating())

	s.Step(time.Second)
	assert.True(t, s.Camera.IsAnimating())
	s.Step(time.Second)
	assert.False(t, s.Camera.IsAnimating())
	assert.Equal(t, target.Add(s.Config.Warp.Offset), s.Camera.Eye)
	assert.Equal(t, target, s.Camera.Center)
	assert.Equal(t, uint32(52), s.Time)
}

func TestSceneWarpInstant(t *testing.T) {
	cfg := smallConfig()
	cfg.Warp.Duration = 0
	s, err := NewScene(cfg)
	require.NoError(t, err)

	s.Frame(Input{Warp: 3}, cfg.FrameDelay)
	target := s.Body(2).WorldPosition(0)
	assert.Equal(t, target, s.Camera.Center)
	assert.False(t, s.Camera.IsAnimating())
}

func TestHandleInput(t *testing.T) {
	s := newTestScene(t)
	cam := s.Camera

	s.HandleInput(Input{OrbitLeft: true})
	assert.InDelta(t, 20, cam.Eye.Length(), 1e-9)
	assertVector(t, V(-20*math.Sin(math.Pi/50), 0, 20*math.Cos(math.Pi/50)), cam.Eye, 1e-9)

	s.HandleInput(Input{OrbitLeft: true, OrbitRight: true})
	assertVector(t, V(-20*math.Sin(math.Pi/50), 0, 20*math.Cos(math.Pi/50)), cam.Eye, 1e-9)

	s.HandleInput(Input{Normal: true})
	s.HandleInput(Input{OrbitUp: true})
	assert.Greater(t, cam.Eye.Y, 0.0)

	s.HandleInput(Input{Normal: true})
	s.HandleInput(Input{ZoomIn: true})
	assertVector(t, V(0, 0, 19.9), cam.Eye, 1e-12)
	s.HandleInput(Input{ZoomOut: true})
	assertVector(t, V(0, 0, 20), cam.Eye, 1e-12)

	s.HandleInput(Input{PanUp: true})
	assert.Greater(t, cam.Center.Y, 0.0)
	assert.InDelta(t, 20, cam.Center.Distance(cam.Eye), 1e-9)

	s.HandleInput(Input{BirdsEye: true})
	assert.Equal(t, CameraBirdsEye, cam.Mode)
	assert.Equal(t, BirdsEyePose, cam.Pose())

	// N wins when both mode keys land in one frame
	s.HandleInput(Input{BirdsEye: true, Normal: true})
	assert.Equal(t, CameraNormal, cam.Mode)

	s.HandleInput(Input{Warp: 1})
	assert.True(t, cam.IsAnimating())
	s.HandleInput(Input{Warp: 9})
	assert.True(t, cam.IsAnimating())
}
