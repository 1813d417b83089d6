package loader

import (
	"testing"

	"github.com/julesjung/risc16/vm"
)

func TestLoadCopiesImageAndResetsPC(t *testing.T) {
	m := vm.NewMachine()
	m.PC = 0x1234
	image := []byte{0x00, 0xf0, 0x01, 0x02}
	if err := Load(m, image); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.PC != 0 {
		t.Errorf("PC = %d, want 0", m.PC)
	}
	if got := m.Memory.ReadWord(0); got != 0xf000 {
		t.Errorf("word at 0 = 0x%04X, want 0xF000", got)
	}
	if got := m.Memory.ReadByte(2); got != 0x01 {
		t.Errorf("byte at 2 = 0x%02X, want 0x01", got)
	}
}

func TestLoadRejectsOversizedImage(t *testing.T) {
	m := vm.NewMachine()
	image := make([]byte, vm.MemorySize+1)
	err := Load(m, image)
	if err == nil {
		t.Fatal("expected an overflow error")
	}
	if _, ok := err.(*ErrOverflow); !ok {
		t.Fatalf("expected *ErrOverflow, got %T", err)
	}
}
