package vm

// Machine is the complete architectural state of a RISC16 core: the
// register file, flat memory, condition flags and program counter. It
// carries no privileged mode, interrupt state, or pipeline, so Step is
// a straight fetch/decode/execute loop with nothing to schedule
// around.
type Machine struct {
	Registers Registers
	Memory    *Memory
	Flags     Flags
	PC        uint16
	Halted    bool

	// Trace is nil unless the embedder opts in; Step appends to it when
	// set.
	Trace *ExecutionTrace
}

// NewMachine returns a machine with zeroed registers, zeroed memory
// and PC at address 0 — the reset state programs are loaded into.
func NewMachine() *Machine {
	return &Machine{
		Memory: NewMemory(),
	}
}

// Reset restores the machine to its just-constructed state without
// reallocating memory.
func (m *Machine) Reset() {
	m.Registers.Reset()
	m.Memory.Reset()
	m.Flags = Flags{}
	m.PC = 0
	m.Halted = false
}

// Step performs one fetch/decode/execute cycle. PC advances past the
// fetched word before the instruction executes, so branch/jump
// displacements computed during execute are already relative to the
// following instruction. Step is a no-op returning nil once Halted is
// set — Halt is terminal until an explicit Reset.
func (m *Machine) Step() error {
	if m.Halted {
		return nil
	}

	word := m.Memory.ReadWord(m.PC)
	fetchPC := m.PC
	inst, err := Decode(word, fetchPC)
	if err != nil {
		return err
	}
	m.PC += InstructionSize

	m.execute(inst)

	if m.Trace != nil {
		m.Trace.Record(fetchPC, inst, m.Flags)
	}
	return nil
}

// Run steps the machine until it halts, hits a decode error, or
// executes limit instructions without halting — at which point it
// returns a *StepLimitError. A limit of 0 means "use DefaultStepLimit".
func (m *Machine) Run(limit uint64) error {
	if limit == 0 {
		limit = DefaultStepLimit
	}
	for i := uint64(0); i < limit; i++ {
		if m.Halted {
			return nil
		}
		if err := m.Step(); err != nil {
			return err
		}
	}
	if m.Halted {
		return nil
	}
	return &StepLimitError{Limit: limit}
}

// execute dispatches a decoded instruction to its family handler.
func (m *Machine) execute(inst Instruction) {
	switch inst.Kind {
	case KindAdd:
		m.execAdd(inst)
	case KindAddCarry:
		m.execAddCarry(inst)
	case KindSub:
		m.execSub(inst)
	case KindSubBorrow:
		m.execSubBorrow(inst)
	case KindAnd:
		m.execAnd(inst)
	case KindOr:
		m.execOr(inst)
	case KindXor:
		m.execXor(inst)
	case KindNot:
		m.execNot(inst)

	case KindShiftLeft:
		m.execShift(inst, ShiftLSL)
	case KindShiftRight:
		m.execShift(inst, ShiftLSR)
	case KindArithShiftRight:
		m.execShift(inst, ShiftASR)
	case KindRotateRight:
		m.execShift(inst, ShiftROR)

	case KindAddImm:
		m.execAddImm(inst)
	case KindSubImm:
		m.execSubImm(inst)

	case KindCompare:
		m.execCompare(inst)
	case KindCompareLow:
		m.execCompareLow(inst)
	case KindCompareHigh:
		m.execCompareHigh(inst)
	case KindCompareImmLow:
		m.execCompareImmLow(inst)
	case KindCompareImmHigh:
		m.execCompareImmHigh(inst)

	case KindMoveImmLow:
		m.execMoveImmLow(inst)
	case KindMoveImmHigh:
		m.execMoveImmHigh(inst)

	case KindLoadWord:
		m.execLoadWord(inst)
	case KindLoadLow:
		m.execLoadLow(inst)
	case KindLoadHigh:
		m.execLoadHigh(inst)
	case KindStoreWord:
		m.execStoreWord(inst)
	case KindStoreLow:
		m.execStoreLow(inst)
	case KindStoreHigh:
		m.execStoreHigh(inst)

	case KindJump:
		m.execJump(inst)
	case KindJumpPointer:
		m.execJumpPointer(inst)
	case KindBranch:
		m.execBranch(inst)

	case KindHalt:
		m.execHalt(inst)
	}
}
