package ula

import "testing"

const (
	bitmapSize = 0x1800
	attrSize   = 0x300
)

type fakeMem struct {
	bitmap [bitmapSize]byte
	attr   [attrSize]byte
}

func (m *fakeMem) BitmapView() []byte { return m.bitmap[:] }
func (m *fakeMem) AttrView() []byte   { return m.attr[:] }

func TestBorderWrite(t *testing.T) {
	u := New(&fakeMem{})
	u.WritePort(0x00FE, 0x05)
	if u.Border() != 5 {
		t.Fatalf("border = %d, want 5", u.Border())
	}
}

func TestBeeperSinkFiresOnEARChange(t *testing.T) {
	u := New(&fakeMem{})
	var levels []bool
	u.BeeperSink = func(level bool) { levels = append(levels, level) }
	u.WritePort(0x00FE, 0x10)
	u.WritePort(0x00FE, 0x00)
	u.WritePort(0x00FE, 0x00) // no change, should not fire again
	if len(levels) != 2 {
		t.Fatalf("beeper fired %d times, want 2", len(levels))
	}
	if !levels[0] || levels[1] {
		t.Fatalf("beeper levels = %v, want [true false]", levels)
	}
}

func TestKeyboardMatrixReadAllUp(t *testing.T) {
	u := New(&fakeMem{})
	got := u.ReadPort(0xFEFE) // row 0 selected
	// spec §8: no keys pressed, row 0 selected -> 0xFF exactly (bits
	// 5-7 fixed high including EAR, bits 0-4 all up).
	if got != 0xFF {
		t.Fatalf("ReadPort = %#02x, want 0xFF", got)
	}
}

func TestKeyboardMatrixKeyDown(t *testing.T) {
	u := New(&fakeMem{})
	u.SetKeyDown(0, 0)
	got := u.ReadPort(0xFEFE)
	if got&0x01 != 0 {
		t.Fatalf("key (0,0) still reads up: %05b", got&0x1F)
	}
	u.SetKeyUp(0, 0)
	got = u.ReadPort(0xFEFE)
	if got&0x01 == 0 {
		t.Fatalf("key (0,0) did not return to up")
	}
}

func TestAdvanceFrameFiresAt69888TStates(t *testing.T) {
	u := New(&fakeMem{})
	if u.AdvanceFrame(TStatesPerFrame - 1) {
		t.Fatalf("frame fired early")
	}
	if !u.AdvanceFrame(1) {
		t.Fatalf("frame did not fire at exactly 69888 T-states")
	}
}

func TestFlashTogglesEvery16Frames(t *testing.T) {
	u := New(&fakeMem{})
	if u.FlashOn() {
		t.Fatalf("flash on before any frame")
	}
	for i := 0; i < FlashFrames; i++ {
		u.AdvanceFrame(TStatesPerFrame)
	}
	if !u.FlashOn() {
		t.Fatalf("flash did not toggle after %d frames", FlashFrames)
	}
	for i := 0; i < FlashFrames; i++ {
		u.AdvanceFrame(TStatesPerFrame)
	}
	if u.FlashOn() {
		t.Fatalf("flash did not toggle back off after %d more frames", FlashFrames)
	}
}

func TestFrameBufferSizeMatchesSpec(t *testing.T) {
	if FrameBufferSize != 26112 {
		t.Fatalf("FrameBufferSize = %d, want 26112", FrameBufferSize)
	}
}

func TestRenderProducesBorderedFrame(t *testing.T) {
	mem := &fakeMem{}
	mem.bitmap[0] = 0xFF // top-left 8 pixels set
	mem.attr[0] = 0x07   // white ink on black paper, not bright

	u := New(mem)
	u.WritePort(0x00FE, 0x02) // border = 2
	u.AdvanceFrame(TStatesPerFrame)
	frame := u.Frame()

	if frame[0] != 2 {
		t.Fatalf("top border byte = %d, want 2", frame[0])
	}
	lastTopBorderByte := BorderTop*topBottomBorderBytes - 1
	if frame[lastTopBorderByte] != 2 {
		t.Fatalf("last top border byte = %d, want 2", frame[lastTopBorderByte])
	}

	firstMainLine := BorderTop * topBottomBorderBytes
	bitmapByteOffset := firstMainLine + sideBorderBytes
	if frame[bitmapByteOffset] != 0xFF {
		t.Fatalf("bitmap byte = %#x, want 0xFF", frame[bitmapByteOffset])
	}
	if frame[bitmapByteOffset+1] != 0x07 {
		t.Fatalf("attribute byte = %#x, want 0x07", frame[bitmapByteOffset+1])
	}

	bottomStart := firstMainLine + DisplayHeight*mainLineBytes
	if frame[bottomStart] != 2 {
		t.Fatalf("bottom border byte = %d, want 2", frame[bottomStart])
	}
	if frame[FrameBufferSize-1] != 2 {
		t.Fatalf("last frame byte = %d, want 2", frame[FrameBufferSize-1])
	}
}
