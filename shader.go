package orrery

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Uniforms is rebuilt once per body per frame and never mutated while the
// body is drawn.
type Uniforms struct {
	Model       Matrix
	View        Matrix
	Projection  Matrix
	Viewport    Matrix
	Time        uint32
	SunPosition Vector
}

// VertexShader projects v into screen space and transforms its normal by the
// inverse transpose of the model matrix. Object-space attributes pass
// through. w near zero is not guarded.
func VertexShader(v Vertex, u *Uniforms) Vertex {
	clip := u.Projection.Mul(u.View).Mul(u.Model).MulPositionW(v.Position)
	ndc := VectorW{clip.X / clip.W, clip.Y / clip.W, clip.Z / clip.W, 1}
	screen := u.Viewport.MulVectorW(ndc)

	v.TransformedPosition = screen.Vector()
	v.TransformedNormal = u.Model.NormalMatrix().MulDirection(v.Normal).Normalize()
	v.W = clip.W
	return v
}

// parallelThreshold is the vertex count below which goroutines cost more
// than they save.
const parallelThreshold = 4096

// transformVertices runs the vertex stage over vs into dst, striping the
// work across CPUs for large meshes. Each worker writes only its own slots.
func transformVertices(dst, vs []Vertex, u *Uniforms) []Vertex {
	if cap(dst) < len(vs) {
		dst = make([]Vertex, len(vs))
	}
	dst = dst[:len(vs)]
	if len(vs) < parallelThreshold {
		for i, v := range vs {
			dst[i] = VertexShader(v, u)
		}
		return dst
	}

	var wg sync.WaitGroup
	wn := runtime.NumCPU()
	wg.Add(wn)
	for wi := 0; wi < wn; wi++ {
		go func(wi int) {
			defer wg.Done()
			for i := wi; i < len(vs); i += wn {
				dst[i] = VertexShader(vs[i], u)
			}
		}(wi)
	}
	wg.Wait()
	return dst
}

// FragmentShader resolves the final color of one fragment. Implementations
// are pure.
type FragmentShader func(f Fragment, u *Uniforms) Color

// ShaderKind selects a planet's fragment shader.
type ShaderKind uint8

const (
	ShaderNeptune ShaderKind = iota
	ShaderJupiter
	ShaderVenus
	ShaderMars
	ShaderEarth
	ShaderMercury
	ShaderSun
	shaderCount
)

var fragmentShaders = [shaderCount]FragmentShader{
	ShaderNeptune: NeptuneShader,
	ShaderJupiter: JupiterShader,
	ShaderVenus:   VenusShader,
	ShaderMars:    MarsShader,
	ShaderEarth:   EarthShader,
	ShaderMercury: MercuryShader,
	ShaderSun:     SunShader,
}

var shaderNames = [shaderCount]string{
	ShaderNeptune: "neptune",
	ShaderJupiter: "jupiter",
	ShaderVenus:   "venus",
	ShaderMars:    "mars",
	ShaderEarth:   "earth",
	ShaderMercury: "mercury",
	ShaderSun:     "sun",
}

// legacyShaderTags are the integer planet selectors of older configs.
// Unlisted integers mean Neptune.
var legacyShaderTags = map[int]ShaderKind{
	1: ShaderJupiter,
	4: ShaderVenus,
	5: ShaderMars,
	6: ShaderEarth,
	7: ShaderMercury,
	8: ShaderSun,
}

// Shader returns the fragment shader for k. Unknown kinds fall back to
// Neptune.
func (k ShaderKind) Shader() FragmentShader {
	if k >= shaderCount {
		return NeptuneShader
	}
	return fragmentShaders[k]
}

func (k ShaderKind) Fragment(f Fragment, u *Uniforms) Color {
	return k.Shader()(f, u)
}

func (k ShaderKind) String() string {
	if k >= shaderCount {
		return "ShaderKind(" + strconv.Itoa(int(k)) + ")"
	}
	return shaderNames[k]
}

// ParseShaderKind accepts a planet name or one of the legacy integer tags.
func ParseShaderKind(s string) (ShaderKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range shaderNames {
		if n == name {
			return ShaderKind(k), nil
		}
	}
	if tag, err := strconv.Atoi(name); err == nil {
		if k, ok := legacyShaderTags[tag]; ok {
			return k, nil
		}
		return ShaderNeptune, nil
	}
	return 0, fmt.Errorf("unknown shader %q", s)
}

func (k *ShaderKind) UnmarshalYAML(node *yaml.Node) error {
	kind, err := ParseShaderKind(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*k = kind
	return nil
}

func (k ShaderKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}
