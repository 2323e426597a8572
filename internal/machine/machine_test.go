package machine

import (
	"testing"

	"spectrum48/internal/ula"
)

func blankROM() []byte { return make([]byte, romSize) }

func TestNewRejectsBadROMSize(t *testing.T) {
	if _, err := New(make([]byte, 10), nil); err == nil {
		t.Fatalf("expected error for undersized ROM")
	}
}

func TestRunFrameAdvancesAndRenders(t *testing.T) {
	m, err := New(blankROM(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	frame := m.RunFrame()
	if frame == nil {
		t.Fatalf("RunFrame returned nil frame")
	}
	if m.CPU.Cycles < ula.TStatesPerFrame {
		t.Fatalf("Cycles = %d, want at least %d", m.CPU.Cycles, uint64(ula.TStatesPerFrame))
	}
}

func TestSaveRestoreRoundTrip(t *testing.T) {
	m, _ := New(blankROM(), nil)
	m.RunFrame()
	m.Bus.Write(0x8000, 0x42)

	snap := m.Save()

	m.Bus.Write(0x8000, 0x00)
	m.CPU.PC = 0x1234

	if err := m.Restore(snap); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if got := m.Bus.Read(0x8000); got != 0x42 {
		t.Fatalf("RAM not restored: got %02X", got)
	}
	if m.CPU.PC == 0x1234 {
		t.Fatalf("PC was not restored")
	}
}

func TestSnapshotEncodeDecode(t *testing.T) {
	m, _ := New(blankROM(), nil)
	m.Bus.Write(0x8000, 0x77)
	snap := m.Save()

	data, err := Encode(snap)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Memory[0x8000] != 0x77 {
		t.Fatalf("decoded memory mismatch: got %02X", got.Memory[0x8000])
	}
}
