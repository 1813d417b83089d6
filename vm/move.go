package vm

// execMoveImmLow and execMoveImmHigh load an 8-bit immediate into one
// byte of Rd, leaving the other byte of Rd untouched. Neither form
// touches any flag.
func (m *Machine) execMoveImmLow(inst Instruction) {
	m.Registers.SetLowByte(inst.Rd, byte(inst.Imm))
}

func (m *Machine) execMoveImmHigh(inst Instruction) {
	m.Registers.SetHighByte(inst.Rd, byte(inst.Imm))
}
