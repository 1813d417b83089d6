package vm

// execLoadWord, execLoadLow and execLoadHigh read from memory at the
// address held in Rs into Rd. LoadWord reads a little-endian 16-bit
// word; LoadLow/LoadHigh each read a single byte into one half of Rd,
// leaving the other half of Rd unchanged. None of the three touch any
// flag — flag updates are scoped to arithmetic/logic/compare.
func (m *Machine) execLoadWord(inst Instruction) {
	addr := m.Registers.Get(inst.Rs)
	m.Registers.Set(inst.Rd, m.Memory.ReadWord(addr))
}

func (m *Machine) execLoadLow(inst Instruction) {
	addr := m.Registers.Get(inst.Rs)
	m.Registers.SetLowByte(inst.Rd, m.Memory.ReadByte(addr))
}

func (m *Machine) execLoadHigh(inst Instruction) {
	addr := m.Registers.Get(inst.Rs)
	m.Registers.SetHighByte(inst.Rd, m.Memory.ReadByte(addr))
}

// execStoreWord, execStoreLow and execStoreHigh write to memory at
// the address held in Rs the value held in Rd. The decoder places the
// address register in Rs and the data register in Rd, the mirror of
// the load encoding's field layout.
func (m *Machine) execStoreWord(inst Instruction) {
	addr := m.Registers.Get(inst.Rs)
	m.Memory.WriteWord(addr, m.Registers.Get(inst.Rd))
}

func (m *Machine) execStoreLow(inst Instruction) {
	addr := m.Registers.Get(inst.Rs)
	m.Memory.WriteByte(addr, m.Registers.LowByte(inst.Rd))
}

func (m *Machine) execStoreHigh(inst Instruction) {
	addr := m.Registers.Get(inst.Rs)
	m.Memory.WriteByte(addr, m.Registers.HighByte(inst.Rd))
}
