package orrery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorLerp(t *testing.T) {
	a := Color{10.4, 20.6, 30}
	b := Color{200, 100, 0}

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, a, a.Lerp(b, -3))
	assert.Equal(t, b, a.Lerp(b, 2))

	assert.Equal(t, Color{255, 255, 128}, White.Lerp(Yellow, 0.5))
	assert.Equal(t, Color{105, 60, 15}, a.Lerp(b, 0.5))
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, uint32(0xff8000), Color{255, 128, 0}.Hex())
	assert.Equal(t, uint32(0xffffff), White.Hex())
	assert.Equal(t, uint32(0), Black.Hex())
	assert.Equal(t, uint32(0xff0000), Color{300, -20, 0}.Hex())
	assert.Equal(t, Color{0x12, 0x34, 0x56}, ColorFromHex(0x123456))
	assert.Equal(t, uint32(0x123456), ColorFromHex(0x123456).Hex())
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#333355")
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x333355), c.Hex())

	c, err = ParseHexColor("ff8000")
	assert.NoError(t, err)
	assert.Equal(t, uint32(0xff8000), c.Hex())

	_, err = ParseHexColor("#zzzzzz")
	assert.Error(t, err)
	assert.Equal(t, Black, HexColor("nope"))
}

func TestColorNRGBA(t *testing.T) {
	n := Color{12.9, 300, -4}.NRGBA()
	assert.Equal(t, uint8(12), n.R)
	assert.Equal(t, uint8(255), n.G)
	assert.Equal(t, uint8(0), n.B)
	assert.Equal(t, uint8(255), n.A)
}

func TestBlendModes(t *testing.T) {
	base := Color{100, 200, 0}
	gray := Color{127.5, 127.5, 127.5}

	assert.Equal(t, Color{100, 127.5, 0}, base.Darken(gray))
	assert.Equal(t, Color{127.5, 200, 127.5}, base.Lighten(gray))
	assert.Equal(t, Color{227.5, 255, 127.5}, base.Additive(gray))
	assert.Equal(t, Color{27.5, 72.5, 127.5}, base.Difference(gray))
	assert.Equal(t, Color{155, 55, 255}, base.Exclusion(White))
	assert.Equal(t, base, base.Exclusion(Black))

	// overlay keeps black and white bases fixed
	assert.Equal(t, Color{0, 255, 0}, Color{0, 255, 0}.Overlay(gray))
	assert.Equal(t, Color{0, 255, 0}, gray.HardLight(Color{0, 255, 0}))
	assert.Equal(t, base.HardLight(gray), gray.Overlay(base))

	// a mid gray soft light is neutral
	assert.Equal(t, base, base.SoftLight(gray))
	assert.Equal(t, Black, Black.SoftLight(White))
	assert.Equal(t, White, White.SoftLight(Black))

	assert.Equal(t, Color{255, 255, 255}, base.Dodge(White))
	assert.Equal(t, base, base.Dodge(Black))
	assert.Equal(t, Color{0, 0, 0}, base.Burn(Black))
	assert.Equal(t, base, base.Burn(White))
}

func TestMix(t *testing.T) {
	assert.Equal(t, Color{50, 100, 150}, Mix(Black, Color{100, 200, 300}, 0.5))
	assert.Equal(t, White, Mix(White, Black, 0))
}
