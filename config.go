package orrery

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config describes the whole system: output surface, camera presets,
// controls and the bodies to draw.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Scale renders at Scale times the output size and filters down.
	Scale          int           `yaml:"scale"`
	Background     string        `yaml:"background"`
	FrameDelay     time.Duration `yaml:"frame_delay"`
	LightDirection Vector        `yaml:"light_direction"`

	Camera   Pose       `yaml:"camera"`
	BirdsEye Pose       `yaml:"birds_eye"`
	Controls Controls   `yaml:"controls"`
	Warp     WarpConfig `yaml:"warp"`
	Mesh     MeshConfig `yaml:"mesh"`

	Sun    BodyConfig   `yaml:"sun"`
	Bodies []BodyConfig `yaml:"bodies"`
}

type Controls struct {
	MovementSpeed float64 `yaml:"movement_speed"`
	RotationSpeed float64 `yaml:"rotation_speed"`
	ZoomSpeed     float64 `yaml:"zoom_speed"`
}

// WarpConfig controls the fly-to-body animation. A zero duration cuts
// straight to the target.
type WarpConfig struct {
	Duration time.Duration `yaml:"duration"`
	Offset   Vector        `yaml:"offset"`
}

// MeshConfig selects the shared body geometry: a mesh file when Path is set,
// otherwise a generated sphere. Simplify in (0, 1) reduces the triangle
// count.
type MeshConfig struct {
	Path     string  `yaml:"path"`
	Stacks   int     `yaml:"stacks"`
	Slices   int     `yaml:"slices"`
	Simplify float64 `yaml:"simplify"`
}

type BodyConfig struct {
	Name          string     `yaml:"name"`
	Shader        ShaderKind `yaml:"shader"`
	OrbitRadius   float64    `yaml:"orbit_radius"`
	RotationSpeed float64    `yaml:"rotation_speed"`
	OrbitSpeed    float64    `yaml:"orbit_speed"`
	Scale         float64    `yaml:"scale"`
	// Mesh overrides the shared geometry for this body.
	Mesh string `yaml:"mesh,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Width:          600,
		Height:         600,
		Scale:          1,
		Background:     "#333355",
		FrameDelay:     16 * time.Millisecond,
		LightDirection: Vector{0, 0, 1},
		Camera:         NormalPose,
		BirdsEye:       BirdsEyePose,
		Controls: Controls{
			MovementSpeed: 1,
			RotationSpeed: math.Pi / 50,
			ZoomSpeed:     0.1,
		},
		Warp: WarpConfig{
			Duration: 2 * time.Second,
			Offset:   Vector{0, 2, 10},
		},
		Mesh: MeshConfig{Stacks: 16, Slices: 24},
		Sun: BodyConfig{
			Name: "Sun", Shader: ShaderSun,
			RotationSpeed: 0.01, Scale: 2.5,
		},
		Bodies: []BodyConfig{
			{Name: "Earth", Shader: ShaderEarth, OrbitRadius: 4, RotationSpeed: 0.05, OrbitSpeed: 0.015, Scale: 1},
			{Name: "Mars", Shader: ShaderMars, OrbitRadius: 5, RotationSpeed: 0.045, OrbitSpeed: 0.0095, Scale: 0.8},
			{Name: "Jupiter", Shader: ShaderJupiter, OrbitRadius: 7, RotationSpeed: 0.07, OrbitSpeed: 0.0085, Scale: 1.5},
			{Name: "Venus", Shader: ShaderVenus, OrbitRadius: 3, RotationSpeed: 0.01, OrbitSpeed: 0.03, Scale: 0.9},
			{Name: "Mercury", Shader: ShaderMercury, OrbitRadius: 2, RotationSpeed: 0.02, OrbitSpeed: 0.05, Scale: 0.5},
		},
	}
}

// LoadConfig reads a YAML file over the defaults and validates the result.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Scale < 1 {
		errs = append(errs, fmt.Errorf("scale %d must be at least 1", c.Scale))
	}
	if _, err := ParseHexColor(c.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	if c.FrameDelay < 0 {
		errs = append(errs, fmt.Errorf("frame_delay %v is negative", c.FrameDelay))
	}
	if c.Warp.Duration < 0 {
		errs = append(errs, fmt.Errorf("warp duration %v is negative", c.Warp.Duration))
	}
	if c.LightDirection == (Vector{}) {
		errs = append(errs, errors.New("light_direction must not be zero"))
	}
	if c.Camera.Eye == c.Camera.Center {
		errs = append(errs, fmt.Errorf("camera: eye and center coincide at %v", c.Camera.Eye))
	}
	if c.BirdsEye.Eye == c.BirdsEye.Center {
		errs = append(errs, fmt.Errorf("birds_eye: eye and center coincide at %v", c.BirdsEye.Eye))
	}
	if c.Mesh.Simplify < 0 || c.Mesh.Simplify >= 1 {
		errs = append(errs, fmt.Errorf("mesh simplify %g must be in [0, 1)", c.Mesh.Simplify))
	}
	for i, b := range append([]BodyConfig{c.Sun}, c.Bodies...) {
		if b.Scale <= 0 {
			errs = append(errs, fmt.Errorf("body %d (%s): scale must be positive", i, b.Name))
		}
	}
	return errors.Join(errs...)
}

// BackgroundColor returns the parsed background; call Validate first.
func (c Config) BackgroundColor() Color {
	return HexColor(c.Background)
}
