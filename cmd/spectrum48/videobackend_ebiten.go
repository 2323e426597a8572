// videobackend_ebiten.go - windowed renderer: scales the core's 320x240
// frame buffer into an ebiten.Image each frame and reads the host
// keyboard into the Spectrum's 8x5 matrix.
//
// Grounded on the teacher's video_backend_ebiten.go: an ebiten.Game
// implementation holding a persistent *ebiten.Image sized to the
// emulated display, redrawn from a raw pixel buffer every Draw call,
// plus the teacher's own use of golang.design/x/clipboard for
// paste-to-guest (adapted here to feed keystrokes instead of a native
// input buffer).
//
// License: GPLv3 or later
package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"spectrum48/internal/machine"
	"spectrum48/internal/ula"
)

type ebitenGame struct {
	m      *machine.Machine
	img    *ebiten.Image
	pixels []byte
	keymap *keyMapper
	pasteQ *pasteQueue
}

func runWindowed(m *machine.Machine, scale int) error {
	if scale < 1 {
		scale = 1
	}

	sink, err := newBeeperSink()
	if err == nil {
		m.ULA.BeeperSink = sink.onLevelChange
	}

	g := &ebitenGame{
		m:      m,
		img:    ebiten.NewImage(ula.FrameWidth, ula.FrameHeight),
		pixels: make([]byte, ula.FrameWidth*ula.FrameHeight*4),
		keymap: newKeyMapper(m.ULA),
		pasteQ: newPasteQueue(m.ULA),
	}

	ebiten.SetWindowSize(ula.FrameWidth*scale, ula.FrameHeight*scale)
	ebiten.SetWindowTitle("ZX Spectrum 48K")
	ebiten.SetWindowResizable(true)

	return ebiten.RunGame(g)
}

func (g *ebitenGame) Update() error {
	g.keymap.poll()
	if inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		g.pasteQ.triggerPaste()
	}
	g.pasteQ.tick()
	g.m.RunFrame()
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	expandFrame(g.m.ULA.Frame(), g.m.ULA.FlashOn(), g.pixels)
	g.img.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	bounds := screen.Bounds()
	sx := float64(bounds.Dx()) / float64(ula.FrameWidth)
	sy := float64(bounds.Dy()) / float64(ula.FrameHeight)
	op.GeoM.Scale(sx, sy)
	screen.DrawImage(g.img, op)

	if g.pasteQ.active() {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("pasting... %d keys left", g.pasteQ.remaining()))
	}
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ula.FrameWidth, ula.FrameHeight
}
