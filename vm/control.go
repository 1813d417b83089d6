package vm

// execHalt implements class 0xf. Halt is idempotent and sticky: once
// set, Step refuses to fetch another instruction until the embedder
// explicitly resets the machine.
func (m *Machine) execHalt(inst Instruction) {
	m.Halted = true
}
