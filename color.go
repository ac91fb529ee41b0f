package orrery

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color holds three unclamped channels on the conventional [0, 255] scale.
// All operators return new values.
type Color struct {
	R, G, B float64
}

var (
	Black  = Color{0, 0, 0}
	White  = Color{255, 255, 255}
	Yellow = Color{255, 255, 0}
)

func NewColor(r, g, b float64) Color {
	return Color{r, g, b}
}

// HexColor parses "rgb", "rrggbb" or either form with a leading '#'.
// Malformed input yields black.
func HexColor(x string) Color {
	c, err := ParseHexColor(x)
	if err != nil {
		return Black
	}
	return c
}

func ParseHexColor(x string) (Color, error) {
	x = strings.TrimSpace(x)
	if !strings.HasPrefix(x, "#") {
		x = "#" + x
	}
	c, err := colorful.Hex(x)
	if err != nil {
		return Black, fmt.Errorf("parse color %q: %w", x, err)
	}
	return Color{math.Round(c.R * 255), math.Round(c.G * 255), math.Round(c.B * 255)}, nil
}

// ColorFromHex unpacks a 0xRRGGBB value.
func ColorFromHex(x uint32) Color {
	r := float64((x >> 16) & 0xff)
	g := float64((x >> 8) & 0xff)
	b := float64(x & 0xff)
	return Color{r, g, b}
}

// Hex packs the color as 0xRRGGBB. Each channel is clamped into [0, 255]
// and truncated.
func (c Color) Hex() uint32 {
	c = c.Clamp()
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func (c Color) NRGBA() color.NRGBA {
	c = c.Clamp()
	return color.NRGBA{uint8(c.R), uint8(c.G), uint8(c.B), 0xff}
}

func (c Color) Clamp() Color {
	return Color{Clamp(c.R, 0, 255), Clamp(c.G, 0, 255), Clamp(c.B, 0, 255)}
}

func (c Color) Add(b Color) Color {
	return Color{c.R + b.R, c.G + b.G, c.B + b.B}
}

func (c Color) MulScalar(b float64) Color {
	return Color{c.R * b, c.G * b, c.B * b}
}

// Lerp blends toward b by t clamped into [0, 1], rounding each channel.
// The endpoints come back unchanged.
func (c Color) Lerp(b Color, t float64) Color {
	switch {
	case t <= 0:
		return c
	case t >= 1:
		return b
	}
	return Color{
		math.Round(c.R + (b.R-c.R)*t),
		math.Round(c.G + (b.G-c.G)*t),
		math.Round(c.B + (b.B-c.B)*t),
	}
}

// Mix is an unclamped, unrounded a*(1-t) + b*t.
func Mix(a, b Color, t float64) Color {
	return a.MulScalar(1 - t).Add(b.MulScalar(t))
}

func (c Color) String() string {
	return fmt.Sprintf("Color(r: %g, g: %g, b: %g)", c.R, c.G, c.B)
}

func (c Color) channels(b Color, fn func(base, blend float64) float64) Color {
	return Color{fn(c.R, b.R), fn(c.G, b.G), fn(c.B, b.B)}
}

func overlayChannel(base, blend float64) float64 {
	a, s := base/255, blend/255
	if a < 0.5 {
		return 255 * math.Min(2*a*s, 1)
	}
	return 255 * math.Max(1-2*(1-a)*(1-s), 0)
}

func (c Color) Overlay(b Color) Color {
	return c.channels(b, overlayChannel)
}

// HardLight is overlay with the layers swapped.
func (c Color) HardLight(b Color) Color {
	return b.channels(c, overlayChannel)
}

func (c Color) SoftLight(b Color) Color {
	return c.channels(b, func(base, blend float64) float64 {
		a, s := base/255, blend/255
		if s <= 0.5 {
			return math.Round(255 * (a - (1-2*s)*a*(1-a)))
		}
		d := math.Sqrt(a)
		if a <= 0.25 {
			d = ((16*a-12)*a + 4) * a
		}
		return math.Round(255 * (a + (2*s-1)*(d-a)))
	})
}

func (c Color) Darken(b Color) Color {
	return c.channels(b, math.Min)
}

func (c Color) Lighten(b Color) Color {
	return c.channels(b, math.Max)
}

func (c Color) Dodge(b Color) Color {
	return c.channels(b, func(base, blend float64) float64 {
		if blend >= 255 {
			return 255
		}
		return math.Min(base*255/(255-blend), 255)
	})
}

func (c Color) Burn(b Color) Color {
	return c.channels(b, func(base, blend float64) float64 {
		if blend <= 0 {
			return 0
		}
		return 255 - math.Min((255-base)*255/blend, 255)
	})
}

func (c Color) Difference(b Color) Color {
	return c.channels(b, func(base, blend float64) float64 {
		return math.Abs(base - blend)
	})
}

func (c Color) Exclusion(b Color) Color {
	return c.channels(b, func(base, blend float64) float64 {
		return Clamp(base+blend-2*base*blend/255, 0, 255)
	})
}

func (c Color) Additive(b Color) Color {
	return c.channels(b, func(base, blend float64) float64 {
		return math.Min(base+blend, 255)
	})
}
