package orrery

import "math"

// The planet shaders synthesize their pattern from the fragment's
// object-space position, so patterns stay glued to the body as it moves.

func radiusXY(p Vector) float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

const sunRadius = 0.8

// SunShader fades from white at the centre to yellow at sunRadius.
func SunShader(f Fragment, _ *Uniforms) Color {
	t := radiusXY(f.VertexPosition) / sunRadius
	if t < 1 {
		return White.Lerp(Yellow, t)
	}
	return Yellow
}

var (
	jupiterInner = Color{255, 178, 102}
	jupiterMid   = Color{255, 255, 255}
	jupiterOuter = Color{178, 125, 102}
)

func JupiterShader(f Fragment, _ *Uniforms) Color {
	d := radiusXY(f.VertexPosition)
	var c Color
	if d < 0.5 {
		c = jupiterInner.Lerp(jupiterMid, d*2)
	} else {
		c = jupiterMid.Lerp(jupiterOuter, (d-0.5)*2)
	}
	return c.MulScalar(f.Intensity)
}

var (
	neptuneInner = Color{70, 130, 180}
	neptuneOuter = Color{173, 216, 230}
)

func NeptuneShader(f Fragment, _ *Uniforms) Color {
	d := math.Min(radiusXY(f.VertexPosition), 1)
	return neptuneInner.Lerp(neptuneOuter, d).MulScalar(f.Intensity)
}

var (
	marsBase      = Color{210, 80, 0}
	marsVariation = Color{20, 20, 20}
)

func MarsShader(f Fragment, _ *Uniforms) Color {
	p := f.VertexPosition
	noise := math.Sin(p.X*10+p.Z*10)*0.5 + 0.5
	return marsBase.Add(marsVariation.MulScalar(noise)).MulScalar(f.Intensity)
}

var (
	venusBase  = Color{255, 223, 160}
	venusDark  = Color{150, 100, 50}
	venusLight = Color{200, 160, 100}
	venusMid   = Color{180, 140, 80}
)

func VenusShader(f Fragment, _ *Uniforms) Color {
	p := f.VertexPosition
	stripe := math.Abs(math.Sin(p.Y*3+p.Z*3))*0.5 + 0.5
	var band Color
	switch {
	case stripe > 0.95:
		band = venusDark
	case stripe > 0.78:
		band = venusLight
	default:
		band = venusMid
	}
	return venusBase.MulScalar(0.6).Add(band.MulScalar(0.4)).MulScalar(f.Intensity)
}

var (
	earthLand  = Color{34, 139, 34}
	earthSea   = Color{0, 105, 148}
	earthCloud = Color{255, 255, 255}
)

const (
	earthNoiseScale = 5.0
	earthCloudSpeed = 0.1
)

// EarthShader picks land or sea from a sinusoidal noise proxy and lays
// drifting clouds over it. Brightness comes from the fragment intensity
// only; the sun direction does not shade Earth.
func EarthShader(f Fragment, u *Uniforms) Color {
	p := f.VertexPosition
	noise := math.Abs(math.Sin(p.X*earthNoiseScale) + math.Cos(p.Y*earthNoiseScale))
	c := earthSea
	if noise > 0.5 {
		c = earthLand
	}

	phase := float64(u.Time) * earthCloudSpeed
	clouds := math.Abs(math.Sin(p.X*10+phase) * math.Cos(p.Y*10+phase))
	if clouds > 0.7 {
		c = earthCloud
	}
	return c.MulScalar(f.Intensity)
}

var (
	mercuryBase   = Color{169, 169, 169}
	mercuryCrater = Color{200, 200, 200}
)

const (
	mercuryCraterFreq = 1.0
	mercuryNoiseScale = 10.0
	mercuryThreshold  = 0.6
)

func MercuryShader(f Fragment, _ *Uniforms) Color {
	p := f.VertexPosition
	n1 := math.Sin(p.X * mercuryCraterFreq)
	n2 := math.Cos(p.Y * mercuryCraterFreq)
	random := math.Sin(p.X*mercuryNoiseScale) * math.Cos(p.Y*mercuryNoiseScale)
	c := mercuryBase
	if math.Abs(n1+n2+random) > mercuryThreshold {
		c = mercuryCrater
	}
	return c.MulScalar(f.Intensity)
}

// ComputeLighting is the Lambertian term between the fragment normal and
// the direction from the surface to the sun.
func ComputeLighting(f Fragment, sun Vector) float64 {
	n := f.Normal.Normalize()
	l := sun.Sub(f.VertexPosition).Normalize()
	return math.Max(n.Dot(l), 0)
}
