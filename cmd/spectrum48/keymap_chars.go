// keymap_chars.go - maps a single ASCII character onto the matrix
// coordinate (plus whether CAPS SHIFT must be held) needed to type it,
// shared by the paste-to-keystrokes feature and the terminal keyboard
// host.
//
// License: GPLv3 or later
package main

import "spectrum48/internal/ula"

var letterRow = map[byte]matrixKey{
	'a': {1, 0}, 's': {1, 1}, 'd': {1, 2}, 'f': {1, 3}, 'g': {1, 4},
	'q': {2, 0}, 'w': {2, 1}, 'e': {2, 2}, 'r': {2, 3}, 't': {2, 4},
	'p': {5, 0}, 'o': {5, 1}, 'i': {5, 2}, 'u': {5, 3}, 'y': {5, 4},
	'l': {6, 1}, 'k': {6, 2}, 'j': {6, 3}, 'h': {6, 4},
	'm': {7, 2}, 'n': {7, 3}, 'b': {7, 4},
	'z': {0, 1}, 'x': {0, 2}, 'c': {0, 3}, 'v': {0, 4},
}

var digitRow = map[byte]matrixKey{
	'1': {3, 0}, '2': {3, 1}, '3': {3, 2}, '4': {3, 3}, '5': {3, 4},
	'0': {4, 0}, '9': {4, 1}, '8': {4, 2}, '7': {4, 3}, '6': {4, 4},
}

const (
	capsShiftRow, capsShiftBit     = 0, 0
	symbolShiftRow, symbolShiftBit = 7, 1
	enterRow, enterBit             = 6, 0
	spaceRow, spaceBit             = 7, 0
)

// asciiToKey resolves ch into the matrix key that must be held (and
// whether CAPS SHIFT must be held alongside it). ok is false for
// characters with no direct single-key mapping (symbol-shifted
// punctuation is out of scope for this convenience feature).
func asciiToKey(ch byte) (key matrixKey, caps bool, ok bool) {
	switch {
	case ch >= 'a' && ch <= 'z':
		return letterRow[ch], false, true
	case ch >= 'A' && ch <= 'Z':
		return letterRow[ch+('a'-'A')], true, true
	case ch >= '0' && ch <= '9':
		return digitRow[ch], false, true
	case ch == ' ':
		return matrixKey{spaceRow, spaceBit}, false, true
	case ch == '\n' || ch == '\r':
		return matrixKey{enterRow, enterBit}, false, true
	default:
		return matrixKey{}, false, false
	}
}

func pressKey(u *ula.ULA, key matrixKey, caps bool) {
	if caps {
		u.SetKeyDown(capsShiftRow, capsShiftBit)
	}
	u.SetKeyDown(key.row, key.bit)
}

func releaseKey(u *ula.ULA, key matrixKey, caps bool) {
	u.SetKeyUp(key.row, key.bit)
	if caps {
		u.SetKeyUp(capsShiftRow, capsShiftBit)
	}
}
