package vm

// ShiftKind identifies the four class-0x1 shift operations.
type ShiftKind int

const (
	ShiftLSL ShiftKind = iota // Logical shift left
	ShiftLSR                  // Logical shift right
	ShiftASR                  // Arithmetic shift right
	ShiftROR                  // Rotate right
)

// PerformShift applies kind to value by the given immediate amount.
// Callers pass imm in 0..=15 (the field is 4 bits wide); imm == 0 is
// architecturally undefined for the carry flag, but the shift result
// itself is always well defined: a shift of zero is the identity.
func PerformShift(value uint16, imm int, kind ShiftKind) uint16 {
	if imm == 0 {
		return value
	}
	switch kind {
	case ShiftLSL:
		return value << uint(imm)
	case ShiftLSR:
		return value >> uint(imm)
	case ShiftASR:
		signed := int16(value)
		return uint16(signed >> uint(imm))
	case ShiftROR:
		imm = imm % 16
		if imm == 0 {
			return value
		}
		return (value >> uint(imm)) | (value << uint(16-imm))
	default:
		return value
	}
}

// ShiftCarry computes the carry-out bit for a shift:
//
//	Left:            bit (16 - imm) of the source
//	LSR / ASR:       bit (imm - 1) of the source's unsigned bit pattern
//	RotateRight:      bit 15 of the result
//
// imm == 0 is architecturally undefined; this implementation resolves
// it to false for every shift kind, an explicit documented rule rather
// than silent carry-forward.
func ShiftCarry(value uint16, imm int, kind ShiftKind, result uint16) bool {
	if imm == 0 {
		return false
	}
	switch kind {
	case ShiftLSL:
		return (value>>(16-uint(imm)))&1 != 0
	case ShiftLSR, ShiftASR:
		return (value>>(uint(imm)-1))&1 != 0
	case ShiftROR:
		return (result>>15)&1 != 0
	default:
		return false
	}
}

// execShift applies the ShiftKind that execute selected from the
// decoded Kind. Rd receives the shifted value; Carry follows ShiftCarry
// and Overflow is always cleared — shifts define no overflow
// semantics.
func (m *Machine) execShift(inst Instruction, kind ShiftKind) {
	value := m.Registers.Get(inst.Rs)
	imm := int(inst.Imm)
	result := PerformShift(value, imm, kind)
	carry := ShiftCarry(value, imm, kind, result)

	m.Registers.Set(inst.Rd, result)
	m.Flags.Carry = carry
	m.Flags.Overflow = false
	m.Flags.UpdateNZ(result)
}
