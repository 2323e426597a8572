// palette.go - RGB palette expansion for the core's encoded frame
// buffer. The core (internal/ula) never produces colour; per spec §6
// "the host owns palette expansion and scaling", so the 16-entry
// Spectrum palette and the border/bitmap/attribute byte decoding both
// live here, grounded on the teacher's ula_constants.go palette tables
// but moved out of the core package.
//
// License: GPLv3 or later
package main

import "spectrum48/internal/ula"

type rgb struct{ R, G, B byte }

var normalPalette = [8]rgb{
	{0, 0, 0}, {0, 0, 205}, {205, 0, 0}, {205, 0, 205},
	{0, 205, 0}, {0, 205, 205}, {205, 205, 0}, {205, 205, 205},
}

var brightPalette = [8]rgb{
	{0, 0, 0}, {0, 0, 255}, {255, 0, 0}, {255, 0, 255},
	{0, 255, 0}, {0, 255, 255}, {255, 255, 0}, {255, 255, 255},
}

func borderColor(code byte) rgb { return normalPalette[code&7] }

// Attribute bit layout, high to low: FLASH BRIGHT PAPER(3) INK(3).
const (
	attrFlashMask  = 0x80
	attrBrightMask = 0x40
	attrPaperShift = 3
	attrPaperMask  = 0x07
	attrInkMask    = 0x07
)

func inkPaperColors(attr byte, flashOn bool) (ink, paper rgb) {
	inkCode := attr & attrInkMask
	paperCode := (attr >> attrPaperShift) & attrPaperMask
	if attr&attrFlashMask != 0 && flashOn {
		inkCode, paperCode = paperCode, inkCode
	}
	pal := &normalPalette
	if attr&attrBrightMask != 0 {
		pal = &brightPalette
	}
	return pal[inkCode], pal[paperCode]
}

const (
	topBottomBorderBytes = ula.FrameWidth / 2
	sideBorderBytes      = ula.BorderLeft / 2
	mainLineBytes        = sideBorderBytes*2 + (ula.DisplayWidth/8)*2
)

// expandFrame decodes the core's native frame buffer (border colour
// codes plus raw bitmap/attribute byte pairs, per spec §3/§4.3) into a
// tightly packed RGBA pixel buffer sized ula.FrameWidth*ula.FrameHeight*4,
// doing the palette expansion and border-byte-to-pixel-pair widening
// that spec §6 assigns to the host.
func expandFrame(f *ula.FrameBuffer, flashOn bool, pixels []byte) {
	off := 0
	px := 0

	for line := 0; line < ula.BorderTop; line++ {
		for i := 0; i < topBottomBorderBytes; i++ {
			c := borderColor(f[off])
			off++
			putPixel(pixels, px, c)
			px++
			putPixel(pixels, px, c)
			px++
		}
	}

	for y := 0; y < ula.DisplayHeight; y++ {
		for i := 0; i < sideBorderBytes; i++ {
			c := borderColor(f[off])
			off++
			putPixel(pixels, px, c)
			px++
			putPixel(pixels, px, c)
			px++
		}
		for xByte := 0; xByte < ula.DisplayWidth/8; xByte++ {
			bitmapByte := f[off]
			off++
			attrByte := f[off]
			off++
			ink, paper := inkPaperColors(attrByte, flashOn)
			for bit := 0; bit < 8; bit++ {
				c := paper
				if bitmapByte&(0x80>>uint(bit)) != 0 {
					c = ink
				}
				putPixel(pixels, px, c)
				px++
			}
		}
		for i := 0; i < sideBorderBytes; i++ {
			c := borderColor(f[off])
			off++
			putPixel(pixels, px, c)
			px++
			putPixel(pixels, px, c)
			px++
		}
	}

	for line := 0; line < ula.BorderBottom; line++ {
		for i := 0; i < topBottomBorderBytes; i++ {
			c := borderColor(f[off])
			off++
			putPixel(pixels, px, c)
			px++
			putPixel(pixels, px, c)
			px++
		}
	}
}

func putPixel(pixels []byte, px int, c rgb) {
	i := px * 4
	pixels[i+0] = c.R
	pixels[i+1] = c.G
	pixels[i+2] = c.B
	pixels[i+3] = 0xFF
}
