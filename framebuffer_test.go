package orrery

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	assert.Len(t, fb.Pix(), 4*3*4)
	assert.Equal(t, Black, fb.At(3, 2))

	fb.SetBackground(HexColor("#333355"))
	fb.Clear()
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, Color{0x33, 0x33, 0x55}, fb.At(x, y))
		}
	}
	for _, d := range fb.DepthBuffer {
		assert.Equal(t, math.MaxFloat64, d)
	}
	assert.Equal(t, uint8(255), fb.Pix()[3])
}

func TestFramebufferDepthTest(t *testing.T) {
	fb := NewFramebuffer(4, 4)

	fb.SetCurrentColor(0xff0000)
	fb.Point(1, 1, 0.5)
	assert.Equal(t, Color{255, 0, 0}, fb.At(1, 1))

	// farther loses
	fb.SetCurrentColor(0x0000ff)
	fb.Point(1, 1, 0.7)
	assert.Equal(t, Color{255, 0, 0}, fb.At(1, 1))
	assert.Equal(t, 0.5, fb.DepthBuffer[1*4+1])

	// ties go to the last writer
	fb.SetCurrentColor(0x00ff00)
	fb.Point(1, 1, 0.5)
	assert.Equal(t, Color{0, 255, 0}, fb.At(1, 1))

	fb.SetCurrentColor(0xffffff)
	fb.Point(1, 1, -0.2)
	assert.Equal(t, White, fb.At(1, 1))
	assert.Equal(t, -0.2, fb.DepthBuffer[1*4+1])

	// neighbours are untouched
	assert.Equal(t, Black, fb.At(2, 1))
	assert.Equal(t, Black, fb.At(1, 2))

	fb.ClearDepthBuffer()
	fb.SetCurrentColor(0x000000)
	fb.Point(1, 1, 0.9)
	assert.Equal(t, Black, fb.At(1, 1))
}

func TestFramebufferWritePNG(t *testing.T) {
	fb := NewFramebuffer(8, 6)
	fb.SetBackground(Yellow)
	fb.Clear()

	var buf bytes.Buffer
	require.NoError(t, fb.WritePNG(&buf, 2))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())
	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0}, []uint32{r, g, b})

	buf.Reset()
	require.NoError(t, fb.WritePNG(&buf, 0))
	img, err = png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Same(t, fb.ColorBuffer, fb.Downsample(8, 6))
}
