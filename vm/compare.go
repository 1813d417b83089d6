package vm

// execCompare performs a 16-bit Ra-Rb subtraction whose result is
// discarded, keeping only the flags.
func (m *Machine) execCompare(inst Instruction) {
	a := m.Registers.Get(inst.Ra)
	b := m.Registers.Get(inst.Rb)
	result := a - b
	m.Flags.UpdateArithmetic(result, SubCarry(a, b), SubOverflow(a, b, result))
}

// execCompareLow and execCompareHigh are byte-wide compares against
// the low or high half of Ra/Rb. The sign/overflow tests use the
// 8-bit masks, and Zero/Signed reflect only the compared byte, not
// the full word.
func (m *Machine) execCompareLow(inst Instruction) {
	a := m.Registers.LowByte(inst.Ra)
	b := m.Registers.LowByte(inst.Rb)
	result := a - b
	m.updateByteCompareFlags(a, b, result)
}

func (m *Machine) execCompareHigh(inst Instruction) {
	a := m.Registers.HighByte(inst.Ra)
	b := m.Registers.HighByte(inst.Rb)
	result := a - b
	m.updateByteCompareFlags(a, b, result)
}

// execCompareImmLow and execCompareImmHigh compare an 8-bit immediate
// against the low or high byte of Rs.
func (m *Machine) execCompareImmLow(inst Instruction) {
	a := m.Registers.LowByte(inst.Rs)
	b := byte(inst.Imm)
	result := a - b
	m.updateByteCompareFlags(a, b, result)
}

func (m *Machine) execCompareImmHigh(inst Instruction) {
	a := m.Registers.HighByte(inst.Rs)
	b := byte(inst.Imm)
	result := a - b
	m.updateByteCompareFlags(a, b, result)
}

func (m *Machine) updateByteCompareFlags(a, b, result byte) {
	m.Flags.Carry = SubCarry8(a, b)
	m.Flags.Overflow = SubOverflow8(a, b, result)
	m.Flags.Zero = result == 0
	m.Flags.Signed = result&SignBitMask8 != 0
}
