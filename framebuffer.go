package orrery

import (
	"image"
	"image/png"
	"io"
	"math"

	"github.com/nfnt/resize"
)

// Target receives shaded fragments. Callers bounds-check x and y against
// Size before calling Point.
type Target interface {
	Size() (w, h int)
	SetCurrentColor(c uint32)
	Point(x, y int, depth float64)
}

// Framebuffer is a depth-tested color buffer. A point is written when its
// depth is nearer than or equal to what is stored, so equal depths resolve
// to the last writer.
type Framebuffer struct {
	Width       int
	Height      int
	ColorBuffer *image.NRGBA
	DepthBuffer []float64
	Background  Color

	current Color
}

var _ Target = (*Framebuffer)(nil)

func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{}
	fb.Width = width
	fb.Height = height
	fb.ColorBuffer = image.NewNRGBA(image.Rect(0, 0, width, height))
	fb.DepthBuffer = make([]float64, width*height)
	fb.Background = Black
	fb.current = White
	fb.Clear()
	return fb
}

func (fb *Framebuffer) Size() (int, int) {
	return fb.Width, fb.Height
}

func (fb *Framebuffer) Image() image.Image {
	return fb.ColorBuffer
}

// Pix exposes the RGBA bytes, alpha always opaque.
func (fb *Framebuffer) Pix() []byte {
	return fb.ColorBuffer.Pix
}

func (fb *Framebuffer) SetBackground(c Color) {
	fb.Background = c
}

func (fb *Framebuffer) SetCurrentColor(c uint32) {
	fb.current = ColorFromHex(c)
}

func (fb *Framebuffer) Clear() {
	fb.ClearColorBufferWith(fb.Background)
	fb.ClearDepthBuffer()
}

// ClearColorBufferWith fills one row and copies it down the buffer.
func (fb *Framebuffer) ClearColorBufferWith(c Color) {
	nrgba := c.NRGBA()
	row := make([]uint8, fb.Width*4)
	for x := 0; x < fb.Width; x++ {
		i := x * 4
		row[i+0] = nrgba.R
		row[i+1] = nrgba.G
		row[i+2] = nrgba.B
		row[i+3] = nrgba.A
	}
	pix := fb.ColorBuffer.Pix
	stride := fb.ColorBuffer.Stride
	for y := 0; y < fb.Height; y++ {
		copy(pix[y*stride:], row)
	}
}

func (fb *Framebuffer) ClearDepthBuffer() {
	for i := range fb.DepthBuffer {
		fb.DepthBuffer[i] = math.MaxFloat64
	}
}

func (fb *Framebuffer) Point(x, y int, depth float64) {
	i := y*fb.Width + x
	if depth > fb.DepthBuffer[i] {
		return
	}
	fb.DepthBuffer[i] = depth
	nrgba := fb.current.NRGBA()
	j := fb.ColorBuffer.PixOffset(x, y)
	pix := fb.ColorBuffer.Pix
	pix[j+0] = nrgba.R
	pix[j+1] = nrgba.G
	pix[j+2] = nrgba.B
	pix[j+3] = nrgba.A
}

// At returns the color stored at (x, y).
func (fb *Framebuffer) At(x, y int) Color {
	c := fb.ColorBuffer.NRGBAAt(x, y)
	return Color{float64(c.R), float64(c.G), float64(c.B)}
}

// Downsample returns the buffer resized to width x height with bilinear
// filtering. It is the identity when the sizes already match.
func (fb *Framebuffer) Downsample(width, height int) image.Image {
	if width == fb.Width && height == fb.Height {
		return fb.ColorBuffer
	}
	return resize.Resize(uint(width), uint(height), fb.ColorBuffer, resize.Bilinear)
}

// WritePNG encodes the buffer downsampled by scale.
func (fb *Framebuffer) WritePNG(w io.Writer, scale int) error {
	if scale < 1 {
		scale = 1
	}
	return png.Encode(w, fb.Downsample(fb.Width/scale, fb.Height/scale))
}
