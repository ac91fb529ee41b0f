package orrery

import "math"

// Rasterizer scan-converts screen-space triangles into fragments.
type Rasterizer struct {
	// Width and Height bound the pixel scan; zero means unbounded.
	Width  int
	Height int
	// LightDirection is the unit direction toward the light used for the
	// per-fragment intensity.
	LightDirection Vector
}

func NewRasterizer(width, height int, light Vector) *Rasterizer {
	return &Rasterizer{Width: width, Height: height, LightDirection: light.Normalize()}
}

func edge(a, b, c Vector) float64 {
	return (b.X-c.X)*(a.Y-c.Y) - (b.Y-c.Y)*(a.X-c.X)
}

// Triangle appends to dst one fragment per pixel centre covered by the
// triangle, in row-major order. Either winding is accepted; degenerate
// triangles produce nothing. Attributes are interpolated with perspective
// correction when the vertices carry a clip w, depth linearly in screen
// space.
func (r *Rasterizer) Triangle(dst []Fragment, v0, v1, v2 Vertex) []Fragment {
	s0 := v0.TransformedPosition
	s1 := v1.TransformedPosition
	s2 := v2.TransformedPosition

	area := edge(s0, s1, s2)
	if area == 0 || math.IsNaN(area) || math.IsInf(area, 0) {
		return dst
	}
	ra := 1 / area

	min := s0.Min(s1.Min(s2)).Floor()
	max := s0.Max(s1.Max(s2)).Ceil()
	x0, x1 := int(min.X), int(max.X)
	y0, y1 := int(min.Y), int(max.Y)
	if r.Width > 0 {
		if x1 < 0 || x0 >= r.Width {
			return dst
		}
		x0 = ClampInt(x0, 0, r.Width-1)
		x1 = ClampInt(x1, 0, r.Width-1)
	}
	if r.Height > 0 {
		if y1 < 0 || y0 >= r.Height {
			return dst
		}
		y0 = ClampInt(y0, 0, r.Height-1)
		y1 = ClampInt(y1, 0, r.Height-1)
	}

	r0, r1, r2 := 1.0, 1.0, 1.0
	if v0.W != 0 && v1.W != 0 && v2.W != 0 {
		r0, r1, r2 = 1/v0.W, 1/v1.W, 1/v2.W
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := Vector{float64(x) + 0.5, float64(y) + 0.5, 0}
			b0 := edge(s1, s2, p) * ra
			b1 := edge(s2, s0, p) * ra
			b2 := edge(s0, s1, p) * ra
			if b0 < 0 || b1 < 0 || b2 < 0 {
				continue
			}

			// perspective-correct weights
			c0, c1, c2 := b0*r0, b1*r1, b2*r2
			cs := 1 / (c0 + c1 + c2)
			c0, c1, c2 = c0*cs, c1*cs, c2*cs

			position := interpolate(v0.Position, v1.Position, v2.Position, c0, c1, c2)
			normal := interpolate(v0.TransformedNormal, v1.TransformedNormal, v2.TransformedNormal, c0, c1, c2)
			intensity := 0.0
			if normal != (Vector{}) {
				intensity = math.Max(normal.Normalize().Dot(r.LightDirection), 0)
			}

			dst = append(dst, Fragment{
				Position:       Vector{float64(x), float64(y), 0},
				Depth:          b0*s0.Z + b1*s1.Z + b2*s2.Z,
				VertexPosition: position,
				Normal:         normal,
				Intensity:      intensity,
			})
		}
	}
	return dst
}

func interpolate(a, b, c Vector, wa, wb, wc float64) Vector {
	return a.MulScalar(wa).Add(b.MulScalar(wb)).Add(c.MulScalar(wc))
}
