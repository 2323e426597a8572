// keyboard_ebiten.go - translates ebiten's polled key state into the
// Spectrum's 8x5 active-low keyboard matrix for the windowed backend.
//
// License: GPLv3 or later
package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"spectrum48/internal/ula"
)

// matrixKey identifies one (row, bit) coordinate in the keyboard's 8
// half-rows of 5 keys each.
type matrixKey struct{ row, bit int }

// keyMapper polls a fixed set of host keys every frame and mirrors
// their up/down state into the matrix. It does not attempt to cover
// every Spectrum key combination (e.g. the full symbol-shift glyph
// table) — CAPS SHIFT and SYMBOL SHIFT are wired to the host Shift and
// Ctrl keys, and letters/digits/space/enter map directly.
type keyMapper struct {
	u    *ula.ULA
	keys map[ebiten.Key]matrixKey
}

func newKeyMapper(u *ula.ULA) *keyMapper {
	km := &keyMapper{u: u, keys: map[ebiten.Key]matrixKey{
		ebiten.KeyShift:   {0, 0}, // CAPS SHIFT
		ebiten.KeyZ:       {0, 1},
		ebiten.KeyX:       {0, 2},
		ebiten.KeyC:       {0, 3},
		ebiten.KeyV:       {0, 4},
		ebiten.KeyA:       {1, 0},
		ebiten.KeyS:       {1, 1},
		ebiten.KeyD:       {1, 2},
		ebiten.KeyF:       {1, 3},
		ebiten.KeyG:       {1, 4},
		ebiten.KeyQ:       {2, 0},
		ebiten.KeyW:       {2, 1},
		ebiten.KeyE:       {2, 2},
		ebiten.KeyR:       {2, 3},
		ebiten.KeyT:       {2, 4},
		ebiten.KeyDigit1:  {3, 0},
		ebiten.KeyDigit2:  {3, 1},
		ebiten.KeyDigit3:  {3, 2},
		ebiten.KeyDigit4:  {3, 3},
		ebiten.KeyDigit5:  {3, 4},
		ebiten.KeyDigit0:  {4, 0},
		ebiten.KeyDigit9:  {4, 1},
		ebiten.KeyDigit8:  {4, 2},
		ebiten.KeyDigit7:  {4, 3},
		ebiten.KeyDigit6:  {4, 4},
		ebiten.KeyP:       {5, 0},
		ebiten.KeyO:       {5, 1},
		ebiten.KeyI:       {5, 2},
		ebiten.KeyU:       {5, 3},
		ebiten.KeyY:       {5, 4},
		ebiten.KeyEnter:   {6, 0},
		ebiten.KeyL:       {6, 1},
		ebiten.KeyK:       {6, 2},
		ebiten.KeyJ:       {6, 3},
		ebiten.KeyH:       {6, 4},
		ebiten.KeySpace:   {7, 0},
		ebiten.KeyControl: {7, 1}, // SYMBOL SHIFT
		ebiten.KeyM:       {7, 2},
		ebiten.KeyN:       {7, 3},
		ebiten.KeyB:       {7, 4},
	}}
	return km
}

func (km *keyMapper) poll() {
	for key, mk := range km.keys {
		if ebiten.IsKeyPressed(key) {
			km.u.SetKeyDown(mk.row, mk.bit)
		} else {
			km.u.SetKeyUp(mk.row, mk.bit)
		}
	}
}
