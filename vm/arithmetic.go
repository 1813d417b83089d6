package vm

// execAdd, execAddCarry, execSub and execSubBorrow implement the
// reg-reg additive sub-opcodes. All four write Rd and update every
// flag per the textbook unsigned-carry / signed-overflow definitions
// in flags.go.

func (m *Machine) execAdd(inst Instruction) {
	a := m.Registers.Get(inst.Ra)
	b := m.Registers.Get(inst.Rb)
	result := a + b
	m.Registers.Set(inst.Rd, result)
	m.Flags.UpdateArithmetic(result, AddCarry(a, b, result), AddOverflow(a, b, result))
}

func (m *Machine) execAddCarry(inst Instruction) {
	a := m.Registers.Get(inst.Ra)
	b := m.Registers.Get(inst.Rb)
	var carryIn uint16
	if m.Flags.Carry {
		carryIn = 1
	}
	result := a + b + carryIn
	m.Registers.Set(inst.Rd, result)

	// Carry-out must account for the two additions in sequence: the
	// intermediate a+b can itself carry before the incoming carry is
	// folded in.
	mid := a + b
	carryOut := AddCarry(a, b, mid) || AddCarry(mid, carryIn, result)
	overflow := AddOverflow(a, b, result)
	m.Flags.UpdateArithmetic(result, carryOut, overflow)
}

func (m *Machine) execSub(inst Instruction) {
	a := m.Registers.Get(inst.Ra)
	b := m.Registers.Get(inst.Rb)
	result := a - b
	m.Registers.Set(inst.Rd, result)
	m.Flags.UpdateArithmetic(result, SubCarry(a, b), SubOverflow(a, b, result))
}

func (m *Machine) execSubBorrow(inst Instruction) {
	a := m.Registers.Get(inst.Ra)
	b := m.Registers.Get(inst.Rb)
	var borrowIn uint16
	if m.Flags.Carry {
		borrowIn = 1
	}
	result := a - b - borrowIn
	m.Registers.Set(inst.Rd, result)

	mid := a - b
	borrowOut := SubCarry(a, b) || SubCarry(mid, borrowIn)
	overflow := SubOverflow(a, b, result)
	m.Flags.UpdateArithmetic(result, borrowOut, overflow)
}

// execAddImm and execSubImm fold an 8-bit unsigned immediate into Rd
// in place.
func (m *Machine) execAddImm(inst Instruction) {
	a := m.Registers.Get(inst.Rd)
	result := a + inst.Imm
	m.Registers.Set(inst.Rd, result)
	m.Flags.UpdateArithmetic(result, AddCarry(a, inst.Imm, result), AddOverflow(a, inst.Imm, result))
}

func (m *Machine) execSubImm(inst Instruction) {
	a := m.Registers.Get(inst.Rd)
	result := a - inst.Imm
	m.Registers.Set(inst.Rd, result)
	m.Flags.UpdateArithmetic(result, SubCarry(a, inst.Imm), SubOverflow(a, inst.Imm, result))
}
