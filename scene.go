package orrery

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

// Scene is the frame driver: it owns the camera, the bodies and the
// framebuffer and advances them one tick per frame.
type Scene struct {
	Config      Config
	Framebuffer *Framebuffer
	Camera      *Camera
	Rasterizer  *Rasterizer
	Bodies      []*Body
	Sun         *Body
	Projection  Matrix
	Viewport    Matrix
	// Time counts frames since the scene was created.
	Time uint32
}

// NewScene validates cfg, loads or generates geometry and places the camera
// at the configured pose.
func NewScene(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	meshes := newMeshCache(cfg.Mesh)

	newBody := func(bc BodyConfig) (*Body, error) {
		mesh, err := meshes.get(bc.Mesh)
		if err != nil {
			return nil, fmt.Errorf("body %s: %w", bc.Name, err)
		}
		b := NewBody(bc.Name, mesh, bc.Shader)
		b.OrbitRadius = bc.OrbitRadius
		b.RotationSpeed = bc.RotationSpeed
		b.OrbitSpeed = bc.OrbitSpeed
		b.Scale = bc.Scale
		return b, nil
	}

	s := &Scene{Config: cfg}
	for _, bc := range cfg.Bodies {
		b, err := newBody(bc)
		if err != nil {
			return nil, err
		}
		s.Bodies = append(s.Bodies, b)
	}
	sun, err := newBody(cfg.Sun)
	if err != nil {
		return nil, err
	}
	s.Sun = sun

	w, h := cfg.Width*cfg.Scale, cfg.Height*cfg.Scale
	s.Framebuffer = NewFramebuffer(w, h)
	s.Framebuffer.SetBackground(cfg.BackgroundColor())
	s.Rasterizer = NewRasterizer(w, h, cfg.LightDirection)
	s.Projection = PerspectiveMatrix(float64(w), float64(h))
	s.Viewport = ViewportMatrix(float64(w), float64(h))

	s.Camera = NewCamera(cfg.Camera.Eye, cfg.Camera.Center, cfg.Camera.Up)
	s.Camera.NormalPose = cfg.Camera
	s.Camera.BirdsEyePose = cfg.BirdsEye
	return s, nil
}

type meshCache struct {
	cfg    MeshConfig
	meshes map[string]*Mesh
}

func newMeshCache(cfg MeshConfig) *meshCache {
	return &meshCache{cfg: cfg, meshes: map[string]*Mesh{}}
}

// get returns the mesh at path, or the shared mesh when path is empty.
func (c *meshCache) get(path string) (*Mesh, error) {
	if path == "" {
		path = c.cfg.Path
	}
	if m, ok := c.meshes[path]; ok {
		return m, nil
	}
	var mesh *Mesh
	if path == "" {
		mesh = NewSphereMesh(c.cfg.Stacks, c.cfg.Slices)
	} else {
		var err error
		if mesh, err = LoadMesh(path); err != nil {
			return nil, err
		}
	}
	if c.cfg.Simplify > 0 {
		before := len(mesh.Triangles)
		mesh = mesh.Simplify(c.cfg.Simplify)
		log.Printf("orrery: simplified %q from %d to %d triangles", path, before, len(mesh.Triangles))
	}
	c.meshes[path] = mesh
	return mesh, nil
}

// Body returns the i-th planet, or nil.
func (s *Scene) Body(i int) *Body {
	if i < 0 || i >= len(s.Bodies) {
		return nil
	}
	return s.Bodies[i]
}

// Step advances simulation time by one tick and the camera by dt.
func (s *Scene) Step(dt time.Duration) {
	s.Time++
	s.Camera.Update(dt.Seconds())
}

// Uniforms builds the bundle for drawing b with the given view matrix.
func (s *Scene) Uniforms(b *Body, view Matrix) Uniforms {
	return Uniforms{
		Model:       b.ModelMatrix(float64(s.Time)),
		View:        view,
		Projection:  s.Projection,
		Viewport:    s.Viewport,
		Time:        s.Time,
		SunPosition: s.Sun.WorldPosition(float64(s.Time)),
	}
}

// Render clears the framebuffer and draws the planets in order, then the
// sun.
func (s *Scene) Render() {
	s.Framebuffer.Clear()
	view := s.Camera.ViewMatrix()
	for _, b := range s.Bodies {
		u := s.Uniforms(b, view)
		b.Render(s.Framebuffer, &u, s.Rasterizer)
	}
	u := s.Uniforms(s.Sun, view)
	s.Sun.Render(s.Framebuffer, &u, s.Rasterizer)
	s.Camera.HasChanged = false
}

// Frame applies one frame of input, steps and renders.
func (s *Scene) Frame(in Input, dt time.Duration) {
	s.HandleInput(in)
	s.Step(dt)
	s.Render()
}

// WarpTo starts a warp toward the i-th planet's current position. It
// reports false for an unknown index.
func (s *Scene) WarpTo(i int) bool {
	b := s.Body(i)
	if b == nil {
		return false
	}
	target := b.WorldPosition(float64(s.Time))
	s.Camera.StartWarp(target.Add(s.Config.Warp.Offset), target, s.Config.Warp.Duration.Seconds())
	return true
}

// WritePNG encodes the last rendered frame at the configured output size.
func (s *Scene) WritePNG(w io.Writer) error {
	return s.Framebuffer.WritePNG(w, s.Config.Scale)
}

func (s *Scene) SavePNG(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := s.WritePNG(file); err != nil {
		file.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return file.Close()
}
