package vm

// execJump is an unconditional PC-relative jump. The decoded Offset
// is a signed word count, so it is scaled by InstructionSize before
// being added to PC. By the time execJump runs, Step has already
// advanced PC past the jump instruction itself, so the displacement
// is relative to the instruction following the jump.
func (m *Machine) execJump(inst Instruction) {
	m.PC = uint16(int32(m.PC) + int32(inst.Offset)*InstructionSize)
}

// execJumpPointer implements class 0x9: an unconditional absolute
// jump to the address held in Rs.
func (m *Machine) execJumpPointer(inst Instruction) {
	m.PC = m.Registers.Get(inst.Rs)
}

// execBranch is a conditional PC-relative branch. PC only moves when
// inst.Cond holds against the current flags; otherwise execution
// simply falls through to the next instruction, leaving PC unchanged
// beyond the fetch increment.
func (m *Machine) execBranch(inst Instruction) {
	if !m.Flags.Evaluate(inst.Cond) {
		return
	}
	m.PC = uint16(int32(m.PC) + int32(inst.Offset)*InstructionSize)
}
