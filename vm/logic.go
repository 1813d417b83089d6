package vm

// execAnd, execOr, execXor and execNot implement the bitwise
// sub-opcodes. Bitwise ops always clear Carry and Overflow — only
// Zero/Signed follow the result. Not is unary: it reads only Ra and
// ignores Rb.

func (m *Machine) execAnd(inst Instruction) {
	result := m.Registers.Get(inst.Ra) & m.Registers.Get(inst.Rb)
	m.Registers.Set(inst.Rd, result)
	m.Flags.UpdateArithmetic(result, false, false)
}

func (m *Machine) execOr(inst Instruction) {
	result := m.Registers.Get(inst.Ra) | m.Registers.Get(inst.Rb)
	m.Registers.Set(inst.Rd, result)
	m.Flags.UpdateArithmetic(result, false, false)
}

func (m *Machine) execXor(inst Instruction) {
	result := m.Registers.Get(inst.Ra) ^ m.Registers.Get(inst.Rb)
	m.Registers.Set(inst.Rd, result)
	m.Flags.UpdateArithmetic(result, false, false)
}

func (m *Machine) execNot(inst Instruction) {
	result := ^m.Registers.Get(inst.Ra)
	m.Registers.Set(inst.Rd, result)
	m.Flags.UpdateArithmetic(result, false, false)
}
