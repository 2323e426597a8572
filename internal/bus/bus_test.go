package bus

import "testing"

type fakePort struct {
	lastWriteAddr  uint16
	lastWriteValue byte
	readValue      byte
}

func (f *fakePort) ReadPort(addr uint16) byte { return f.readValue }
func (f *fakePort) WritePort(addr uint16, v byte) {
	f.lastWriteAddr, f.lastWriteValue = addr, v
}

func makeROM(fill byte) []byte {
	rom := make([]byte, romSize)
	for i := range rom {
		rom[i] = fill
	}
	return rom
}

func TestNewRejectsWrongROMSize(t *testing.T) {
	if _, err := New(make([]byte, 100), nil); err == nil {
		t.Fatalf("expected error for undersized ROM")
	}
}

func TestROMIsReadOnly(t *testing.T) {
	b, err := New(makeROM(0xAA), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b.Write(0x1234, 0xFF)
	if got := b.Read(0x1234); got != 0xAA {
		t.Fatalf("ROM write was not discarded: got %02X", got)
	}
}

func TestRAMReadWrite(t *testing.T) {
	b, _ := New(makeROM(0), nil)
	b.Write(0x8000, 0x42)
	if got := b.Read(0x8000); got != 0x42 {
		t.Fatalf("RAM read = %02X, want 42", got)
	}
}

func TestPortRouting(t *testing.T) {
	fp := &fakePort{readValue: 0x1F}
	b, _ := New(makeROM(0), fp)
	b.Out(0x00FE, 0x07)
	if fp.lastWriteValue != 0x07 {
		t.Fatalf("port write not forwarded: got %02X", fp.lastWriteValue)
	}
	if got := b.In(0x00FE); got != 0x1F {
		t.Fatalf("port read not forwarded: got %02X", got)
	}
}

func TestPortRoutingOnlyMatchesFE(t *testing.T) {
	fp := &fakePort{readValue: 0x1F}
	b, _ := New(makeROM(0), fp)

	if got := b.In(0x001F); got != 0xFF {
		t.Fatalf("unmapped port read = %02X, want 0xFF (spec §4.2)", got)
	}

	b.Out(0x001F, 0x07)
	if fp.lastWriteValue != 0 || fp.lastWriteAddr != 0 {
		t.Fatalf("unmapped port write reached the ULA: addr=%02X value=%02X", fp.lastWriteAddr, fp.lastWriteValue)
	}
}

func TestBitmapAndAttrViews(t *testing.T) {
	b, _ := New(makeROM(0), nil)
	b.Write(0x4000, 0x11)
	b.Write(0x5800, 0x22)
	if b.BitmapView()[0] != 0x11 {
		t.Fatalf("bitmap view did not see write at 0x4000")
	}
	if b.AttrView()[0] != 0x22 {
		t.Fatalf("attr view did not see write at 0x5800")
	}
	if len(b.BitmapView()) != 0x1800 {
		t.Fatalf("bitmap view length = %d, want 0x1800", len(b.BitmapView()))
	}
	if len(b.AttrView()) != 0x300 {
		t.Fatalf("attr view length = %d, want 0x300", len(b.AttrView()))
	}
}

func TestSnapshotRestore(t *testing.T) {
	b, _ := New(makeROM(0), nil)
	b.Write(0x9000, 0x99)
	snap := b.Snapshot()

	b.Write(0x9000, 0x00)
	b.Restore(snap)
	if got := b.Read(0x9000); got != 0x99 {
		t.Fatalf("restore did not bring back prior RAM state, got %02X", got)
	}
}
