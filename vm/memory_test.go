package vm

import "testing"

func TestMemoryReadWriteWordLittleEndian(t *testing.T) {
	m := NewMemory()
	m.WriteWord(0x10, 0xABCD)
	if got := m.ReadByte(0x10); got != 0xCD {
		t.Errorf("low byte = 0x%02X, want 0xCD", got)
	}
	if got := m.ReadByte(0x11); got != 0xAB {
		t.Errorf("high byte = 0x%02X, want 0xAB", got)
	}
	if got := m.ReadWord(0x10); got != 0xABCD {
		t.Errorf("ReadWord = 0x%04X, want 0xABCD", got)
	}
}

func TestMemoryWordWrapsAtEndOfAddressSpace(t *testing.T) {
	m := NewMemory()
	m.WriteWord(0xFFFF, 0x1234)
	if got := m.ReadByte(0xFFFF); got != 0x34 {
		t.Errorf("byte at 0xFFFF = 0x%02X, want 0x34", got)
	}
	if got := m.ReadByte(0x0000); got != 0x12 {
		t.Errorf("byte at 0x0000 (wrapped) = 0x%02X, want 0x12", got)
	}
}

func TestMemoryAccessCounters(t *testing.T) {
	m := NewMemory()
	m.WriteByte(0, 1)
	m.ReadByte(0)
	m.ReadByte(1)
	if m.WriteCount != 1 || m.ReadCount != 2 || m.AccessCount != 3 {
		t.Errorf("counters = write=%d read=%d access=%d, want 1 2 3", m.WriteCount, m.ReadCount, m.AccessCount)
	}
}

func TestRegistersByteAccessors(t *testing.T) {
	var r Registers
	r.Set(0, 0x1234)
	if got := r.LowByte(0); got != 0x34 {
		t.Errorf("LowByte = 0x%02X, want 0x34", got)
	}
	if got := r.HighByte(0); got != 0x12 {
		t.Errorf("HighByte = 0x%02X, want 0x12", got)
	}
	r.SetLowByte(0, 0xFF)
	if got := r.Get(0); got != 0x12FF {
		t.Errorf("after SetLowByte = 0x%04X, want 0x12FF", got)
	}
	r.SetHighByte(0, 0xAB)
	if got := r.Get(0); got != 0xABFF {
		t.Errorf("after SetHighByte = 0x%04X, want 0xABFF", got)
	}
}
