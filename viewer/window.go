package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/netisu/orrery"
)

var warpKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// RunWindow opens a window showing the scene and blocks until it closes.
func RunWindow(scene *orrery.Scene) error {
	g := &game{scene: scene}
	cfg := scene.Config
	ebiten.SetWindowTitle("Orrery")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.FrameDelay > 0 {
		ebiten.SetTPS(int(1e9 / cfg.FrameDelay.Nanoseconds()))
	}
	return ebiten.RunGame(g)
}

type game struct {
	scene *orrery.Scene
	fbImg *ebiten.Image
}

func pollInput() orrery.Input {
	in := orrery.Input{
		OrbitLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		OrbitRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		OrbitUp:    ebiten.IsKeyPressed(ebiten.KeyW),
		OrbitDown:  ebiten.IsKeyPressed(ebiten.KeyS),
		PanLeft:    ebiten.IsKeyPressed(ebiten.KeyA),
		PanRight:   ebiten.IsKeyPressed(ebiten.KeyD),
		PanUp:      ebiten.IsKeyPressed(ebiten.KeyQ),
		PanDown:    ebiten.IsKeyPressed(ebiten.KeyE),
		ZoomIn:     ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		ZoomOut:    ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		BirdsEye:   inpututil.IsKeyJustPressed(ebiten.KeyB),
		Normal:     inpututil.IsKeyJustPressed(ebiten.KeyN),
	}
	for i, k := range warpKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.Warp = i + 1
		}
	}
	return in
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.scene.Frame(pollInput(), g.scene.Config.FrameDelay)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.scene.Framebuffer
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(fb.Width, fb.Height)
	}
	g.fbImg.WritePixels(fb.Pix())

	op := &ebiten.DrawImageOptions{}
	if s := g.scene.Config.Scale; s > 1 {
		op.GeoM.Scale(1/float64(s), 1/float64(s))
		op.Filter = ebiten.FilterLinear
	}
	screen.DrawImage(g.fbImg, op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.Config.Width, g.scene.Config.Height
}
