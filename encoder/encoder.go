package encoder

import (
	"fmt"
	"strings"

	"github.com/julesjung/risc16/parser"
	"github.com/julesjung/risc16/vm"
)

// Encoder turns a parsed Program into a flat RISC16 binary image. It
// runs in two passes over the program's statements: the first assigns
// every label and `.equ` constant an address or value; the second
// encodes each instruction and data directive now that every symbol
// it might reference is resolved.
type Encoder struct {
	symbols *parser.SymbolTable
}

func NewEncoder() *Encoder {
	return &Encoder{symbols: parser.NewSymbolTable()}
}

// Assemble encodes prog into a byte image starting at address 0.
func (e *Encoder) Assemble(prog *parser.Program) ([]byte, error) {
	if err := e.resolveSymbols(prog); err != nil {
		return nil, err
	}
	return e.encodeStatements(prog)
}

// resolveSymbols is pass one: walk the statements tracking an address
// counter, binding every label to its address and every `.equ` name to
// its literal value.
func (e *Encoder) resolveSymbols(prog *parser.Program) error {
	addr := uint16(0)
	for _, stmt := range prog.Statements {
		if stmt.Label != "" && stmt.Directive != "equ" {
			if err := e.symbols.Define(stmt.Label, parser.SymbolLabel, addr, stmt.Pos); err != nil {
				return &EncodingError{Pos: stmt.Pos, Message: err.Error()}
			}
		}

		switch {
		case stmt.Directive != "":
			switch stmt.Directive {
			case "org":
				if len(stmt.DirArgs) != 1 {
					return &EncodingError{Pos: stmt.Pos, Message: ".org requires exactly one address argument"}
				}
				addr = stmt.DirArgs[0].Value
			case "equ":
				if len(stmt.DirArgs) != 1 {
					return &EncodingError{Pos: stmt.Pos, Message: ".equ requires exactly one value argument"}
				}
				if err := e.symbols.Define(stmt.Label, parser.SymbolConstant, stmt.DirArgs[0].Value, stmt.Pos); err != nil {
					return &EncodingError{Pos: stmt.Pos, Message: err.Error()}
				}
			case "word":
				addr += uint16(len(stmt.DirArgs)) * vm.InstructionSize
			case "byte":
				addr += uint16(len(stmt.DirArgs))
			default:
				return &EncodingError{Pos: stmt.Pos, Message: "unknown directive: ." + stmt.Directive}
			}
		case stmt.Mnemonic != "":
			addr += vm.InstructionSize
		}
	}
	return nil
}

// encodeStatements is pass two: re-walk the statements, this time
// emitting bytes. Label definitions contribute nothing to the image.
func (e *Encoder) encodeStatements(prog *parser.Program) ([]byte, error) {
	var out []byte
	addr := uint16(0)

	emitWord := func(word uint16) {
		out = append(out, byte(word), byte(word>>8))
		addr += vm.InstructionSize
	}

	for _, stmt := range prog.Statements {
		switch {
		case stmt.Directive == "org":
			target := stmt.DirArgs[0].Value
			for addr < target {
				out = append(out, 0)
				addr++
			}

		case stmt.Directive == "equ":
			// Already bound to the symbol table in pass one.

		case stmt.Directive == "word":
			for _, arg := range stmt.DirArgs {
				v, err := e.resolveOperandValue(arg)
				if err != nil {
					return nil, &EncodingError{Pos: arg.Pos, Message: err.Error()}
				}
				emitWord(v)
			}

		case stmt.Directive == "byte":
			for _, arg := range stmt.DirArgs {
				v, err := e.resolveOperandValue(arg)
				if err != nil {
					return nil, &EncodingError{Pos: arg.Pos, Message: err.Error()}
				}
				out = append(out, byte(v))
				addr++
			}

		case stmt.Mnemonic != "":
			word, err := e.encodeInstruction(stmt, addr)
			if err != nil {
				return nil, err
			}
			emitWord(word)
		}
	}
	return out, nil
}

// resolveOperandValue returns an immediate or label operand's literal
// 16-bit value. Registers and memory operands are not valid here.
func (e *Encoder) resolveOperandValue(op parser.Operand) (uint16, error) {
	switch op.Kind {
	case parser.OperandImmediate:
		return op.Value, nil
	case parser.OperandLabel:
		return e.symbols.Get(op.Label)
	default:
		return 0, fmt.Errorf("expected a value, got a register operand")
	}
}

// encodeInstruction dispatches one Statement to its class's encoding
// routine. addr is the address the instruction word itself occupies —
// needed to compute PC-relative jump/branch displacements.
func (e *Encoder) encodeInstruction(stmt parser.Statement, addr uint16) (uint16, error) {
	ops := stmt.Operands
	pos := stmt.Pos

	switch stmt.Mnemonic {
	case "ADD":
		return e.encodeAlu3(ops, pos, 0b000)
	case "ADC":
		return e.encodeAlu3(ops, pos, 0b001)
	case "SUB":
		return e.encodeAlu3(ops, pos, 0b010)
	case "SBB":
		return e.encodeAlu3(ops, pos, 0b011)
	case "AND":
		return e.encodeAlu3(ops, pos, 0b100)
	case "OR":
		return e.encodeAlu3(ops, pos, 0b101)
	case "XOR":
		return e.encodeAlu3(ops, pos, 0b110)
	case "NOT":
		return e.encodeNot(ops, pos)

	case "LSL":
		return e.encodeShift(ops, pos, 0b00)
	case "LSR":
		return e.encodeShift(ops, pos, 0b01)
	case "ASR":
		return e.encodeShift(ops, pos, 0b10)
	case "ROR":
		return e.encodeShift(ops, pos, 0b11)

	case "ADDI":
		return e.encodeImm8(ops, pos, 0x2, 0)
	case "SUBI":
		return e.encodeImm8(ops, pos, 0x2, 1)

	case "CMP":
		return e.encodeCompareReg(ops, pos, 0b00)
	case "CMPL":
		return e.encodeCompareReg(ops, pos, 0b10)
	case "CMPH":
		return e.encodeCompareReg(ops, pos, 0b11)

	case "CMPIL":
		return e.encodeImm8(ops, pos, 0x4, 0)
	case "CMPIH":
		return e.encodeImm8(ops, pos, 0x4, 1)

	case "MOVL":
		return e.encodeImm8(ops, pos, 0x5, 0)
	case "MOVH":
		return e.encodeImm8(ops, pos, 0x5, 1)

	case "LDW":
		return e.encodeLoadStore(ops, pos, 0x6, 0b00)
	case "LDL":
		return e.encodeLoadStore(ops, pos, 0x6, 0b10)
	case "LDH":
		return e.encodeLoadStore(ops, pos, 0x6, 0b11)

	case "STW":
		return e.encodeLoadStore(ops, pos, 0x7, 0b00)
	case "STL":
		return e.encodeLoadStore(ops, pos, 0x7, 0b10)
	case "STH":
		return e.encodeLoadStore(ops, pos, 0x7, 0b11)

	case "JMP":
		return e.encodeJump(ops, pos, addr)
	case "JMPR":
		return e.encodeJumpPointer(ops, pos)

	case "BC", "BNC", "BO", "BNO", "BZ", "BNZ", "BS", "BNS":
		return e.encodeBranch(stmt.Mnemonic, ops, pos, addr)

	case "HLT":
		return 0xf000, nil

	default:
		return 0, &EncodingError{Pos: pos, Message: "unknown mnemonic: " + stmt.Mnemonic}
	}
}

func requireOperands(ops []parser.Operand, pos parser.Position, n int, mnemonic string) error {
	if len(ops) != n {
		return &EncodingError{Pos: pos, Message: fmt.Sprintf("%s expects %d operand(s), got %d", mnemonic, n, len(ops))}
	}
	return nil
}

func requireRegister(op parser.Operand, pos parser.Position) (int, error) {
	if op.Kind != parser.OperandRegister {
		return 0, &EncodingError{Pos: pos, Message: "expected a register operand"}
	}
	return op.Register, nil
}

func requireMemory(op parser.Operand, pos parser.Position) (int, error) {
	if op.Kind != parser.OperandMemory {
		return 0, &EncodingError{Pos: pos, Message: "expected a [Rn] memory operand"}
	}
	return op.Register, nil
}

// encodeAlu3 encodes class 0x0's three-register ALU forms: Rd, Ra, Rb.
func (e *Encoder) encodeAlu3(ops []parser.Operand, pos parser.Position, fn uint16) (uint16, error) {
	if err := requireOperands(ops, pos, 3, "this instruction"); err != nil {
		return 0, err
	}
	rd, err := requireRegister(ops[0], pos)
	if err != nil {
		return 0, err
	}
	ra, err := requireRegister(ops[1], pos)
	if err != nil {
		return 0, err
	}
	rb, err := requireRegister(ops[2], pos)
	if err != nil {
		return 0, err
	}
	return uint16(rd)<<vm.RdShiftHigh | uint16(ra)<<vm.RaShiftLow | uint16(rb)<<vm.RbShiftLow | fn, nil
}

// encodeNot encodes class 0x0 sub-111: Rd, Ra — rb is encoded as zero
// and ignored by the executor.
func (e *Encoder) encodeNot(ops []parser.Operand, pos parser.Position) (uint16, error) {
	if err := requireOperands(ops, pos, 2, "NOT"); err != nil {
		return 0, err
	}
	rd, err := requireRegister(ops[0], pos)
	if err != nil {
		return 0, err
	}
	ra, err := requireRegister(ops[1], pos)
	if err != nil {
		return 0, err
	}
	return uint16(rd)<<vm.RdShiftHigh | uint16(ra)<<vm.RaShiftLow | 0b111, nil
}

// encodeShift encodes class 0x1: Rd, Rs, #imm4.
func (e *Encoder) encodeShift(ops []parser.Operand, pos parser.Position, fn uint16) (uint16, error) {
	if err := requireOperands(ops, pos, 3, "this shift"); err != nil {
		return 0, err
	}
	rd, err := requireRegister(ops[0], pos)
	if err != nil {
		return 0, err
	}
	rs, err := requireRegister(ops[1], pos)
	if err != nil {
		return 0, err
	}
	if ops[2].Kind != parser.OperandImmediate || ops[2].Value > 0xF {
		return 0, &EncodingError{Pos: pos, Message: "shift amount must be an immediate in 0..=15"}
	}
	return 0x1<<vm.MajorClassShift | uint16(rd)<<vm.RdShiftHigh | uint16(rs)<<vm.RaShiftLow | ops[2].Value<<vm.ShiftImmShift | fn, nil
}

// encodeImm8 encodes the three classes that share an 8-bit-immediate,
// single-function-bit layout: ADDI/SUBI (0x2), CMPIL/CMPIH (0x4),
// MOVL/MOVH (0x5). All three read Rd/Rs from bits [11:9].
func (e *Encoder) encodeImm8(ops []parser.Operand, pos parser.Position, class uint16, fn uint16) (uint16, error) {
	if err := requireOperands(ops, pos, 2, "this instruction"); err != nil {
		return 0, err
	}
	reg, err := requireRegister(ops[0], pos)
	if err != nil {
		return 0, err
	}
	if ops[1].Kind != parser.OperandImmediate || ops[1].Value > 0xFF {
		return 0, &EncodingError{Pos: pos, Message: "immediate must fit in 8 bits"}
	}
	return class<<vm.MajorClassShift | uint16(reg)<<vm.RdShiftHigh | ops[1].Value<<vm.ByteImmShift | fn, nil
}

// encodeCompareReg encodes class 0x3: Ra, Rb.
func (e *Encoder) encodeCompareReg(ops []parser.Operand, pos parser.Position, fn uint16) (uint16, error) {
	if err := requireOperands(ops, pos, 2, "this compare"); err != nil {
		return 0, err
	}
	ra, err := requireRegister(ops[0], pos)
	if err != nil {
		return 0, err
	}
	rb, err := requireRegister(ops[1], pos)
	if err != nil {
		return 0, err
	}
	return 0x3<<vm.MajorClassShift | uint16(ra)<<vm.RdShiftHigh | uint16(rb)<<vm.RaShiftLow | fn, nil
}

// encodeLoadStore encodes classes 0x6/0x7: a register operand and a
// [Rn] memory operand, in the order the mnemonic table specifies —
// LDx is "Rd, [Rs]", STx is "[Rd], Rs".
func (e *Encoder) encodeLoadStore(ops []parser.Operand, pos parser.Position, class uint16, fn uint16) (uint16, error) {
	if err := requireOperands(ops, pos, 2, "this load/store"); err != nil {
		return 0, err
	}
	if class == 0x6 {
		rd, err := requireRegister(ops[0], pos)
		if err != nil {
			return 0, err
		}
		rs, err := requireMemory(ops[1], pos)
		if err != nil {
			return 0, err
		}
		return class<<vm.MajorClassShift | uint16(rd)<<vm.RdShiftHigh | uint16(rs)<<vm.RaShiftLow | fn, nil
	}
	// Store: first operand is the [Rn] address, second is the data
	// register. The address register is encoded at w[11:9] and the data
	// register at w[8:6] — the mirror of the load encoding.
	addrReg, err := requireMemory(ops[0], pos)
	if err != nil {
		return 0, err
	}
	dataReg, err := requireRegister(ops[1], pos)
	if err != nil {
		return 0, err
	}
	return class<<vm.MajorClassShift | uint16(addrReg)<<vm.RdShiftHigh | uint16(dataReg)<<vm.RaShiftLow | fn, nil
}

// encodeJump encodes class 0x8: a signed, word-scaled PC-relative
// displacement to either a label or a literal word offset.
func (e *Encoder) encodeJump(ops []parser.Operand, pos parser.Position, addr uint16) (uint16, error) {
	if err := requireOperands(ops, pos, 1, "JMP"); err != nil {
		return 0, err
	}
	offset, err := e.resolveBranchOffset(ops[0], pos, addr)
	if err != nil {
		return 0, err
	}
	if offset < -(1<<11) || offset > (1<<11)-1 {
		return 0, &EncodingError{Pos: pos, Message: "JMP target out of range for a 12-bit offset"}
	}
	return 0x8<<vm.MajorClassShift | uint16(offset)&vm.Mask12Bit, nil
}

// encodeJumpPointer encodes class 0x9: an unconditional jump to the
// address held in a register.
func (e *Encoder) encodeJumpPointer(ops []parser.Operand, pos parser.Position) (uint16, error) {
	if err := requireOperands(ops, pos, 1, "JMPR"); err != nil {
		return 0, err
	}
	rs, err := requireRegister(ops[0], pos)
	if err != nil {
		return 0, err
	}
	return 0x9<<vm.MajorClassShift | uint16(rs)<<vm.RdShiftHigh, nil
}

var branchFuncs = map[string]uint16{
	"BC": 0b000, "BNC": 0b001, "BO": 0b010, "BNO": 0b011,
	"BZ": 0b100, "BNZ": 0b101, "BS": 0b110, "BNS": 0b111,
}

// encodeBranch encodes class 0xa: a conditional, word-scaled
// PC-relative displacement.
func (e *Encoder) encodeBranch(mnemonic string, ops []parser.Operand, pos parser.Position, addr uint16) (uint16, error) {
	if err := requireOperands(ops, pos, 1, mnemonic); err != nil {
		return 0, err
	}
	offset, err := e.resolveBranchOffset(ops[0], pos, addr)
	if err != nil {
		return 0, err
	}
	if offset < -(1<<8) || offset > (1<<8)-1 {
		return 0, &EncodingError{Pos: pos, Message: mnemonic + " target out of range for a 9-bit offset"}
	}
	fn := branchFuncs[strings.ToUpper(mnemonic)]
	return 0xa<<vm.MajorClassShift | (uint16(offset)&vm.Mask9Bit)<<vm.BranchOffsetShift | fn, nil
}

// resolveBranchOffset turns a label or literal-word-count operand into
// a signed word displacement relative to the instruction following
// the jump/branch — PC has already advanced by the time the
// displacement is applied.
func (e *Encoder) resolveBranchOffset(op parser.Operand, pos parser.Position, addr uint16) (int32, error) {
	switch op.Kind {
	case parser.OperandLabel:
		target, err := e.symbols.Get(op.Label)
		if err != nil {
			return 0, &EncodingError{Pos: pos, Message: err.Error()}
		}
		nextPC := addr + vm.InstructionSize
		return int32(int16(target-nextPC)) / vm.InstructionSize, nil
	case parser.OperandImmediate:
		return int32(int16(op.Value)), nil
	default:
		return 0, &EncodingError{Pos: pos, Message: "expected a label or immediate word offset"}
	}
}
