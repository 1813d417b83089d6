package parser

import "testing"

func parseSource(t *testing.T, source string) *Program {
	t.Helper()
	lex := NewLexer(source, "test.asm")
	tokens := lex.TokenizeAll()
	if lex.Errors().HasErrors() {
		t.Fatalf("lex errors: %v", lex.Errors())
	}
	p := NewParser(tokens)
	prog := p.Parse()
	if p.Errors().HasErrors() {
		t.Fatalf("parse errors: %v", p.Errors())
	}
	return prog
}

func TestParseLabelAndInstruction(t *testing.T) {
	prog := parseSource(t, "start: ADD R1, R2, R3\n")
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Statements))
	}
	stmt := prog.Statements[0]
	if stmt.Label != "start" || stmt.Mnemonic != "ADD" {
		t.Fatalf("stmt = %+v, want label=start mnemonic=ADD", stmt)
	}
	if len(stmt.Operands) != 3 {
		t.Fatalf("got %d operands, want 3", len(stmt.Operands))
	}
	for i, reg := range []int{1, 2, 3} {
		if stmt.Operands[i].Kind != OperandRegister || stmt.Operands[i].Register != reg {
			t.Errorf("operand %d = %+v, want register %d", i, stmt.Operands[i], reg)
		}
	}
}

func TestParseStandaloneLabel(t *testing.T) {
	prog := parseSource(t, "loop:\nADD R0, R0, R0\n")
	if len(prog.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(prog.Statements))
	}
	if prog.Statements[0].Label != "loop" {
		t.Errorf("first statement label = %q, want loop", prog.Statements[0].Label)
	}
}

func TestParseImmediateOperand(t *testing.T) {
	prog := parseSource(t, "ADDI R0, #0x10\n")
	ops := prog.Statements[0].Operands
	if len(ops) != 2 || ops[1].Kind != OperandImmediate || ops[1].Value != 0x10 {
		t.Fatalf("operands = %+v, want [R0, #0x10]", ops)
	}
}

func TestParseMemoryOperand(t *testing.T) {
	prog := parseSource(t, "LDW R1, [R2]\n")
	ops := prog.Statements[0].Operands
	if len(ops) != 2 || ops[1].Kind != OperandMemory || ops[1].Register != 2 {
		t.Fatalf("operands = %+v, want [R1, [R2]]", ops)
	}
}

func TestParseLabelReferenceOperand(t *testing.T) {
	prog := parseSource(t, "JMP done\n")
	ops := prog.Statements[0].Operands
	if len(ops) != 1 || ops[0].Kind != OperandLabel || ops[0].Label != "done" {
		t.Fatalf("operands = %+v, want [done]", ops)
	}
}

func TestParseDirectives(t *testing.T) {
	prog := parseSource(t, ".org 0x100\n.word 1, 2, 3\ncount: .equ 42\n")
	if len(prog.Statements) != 3 {
		t.Fatalf("got %d statements, want 3", len(prog.Statements))
	}
	if prog.Statements[0].Directive != "org" || prog.Statements[0].DirArgs[0].Value != 0x100 {
		t.Errorf("first statement = %+v", prog.Statements[0])
	}
	if prog.Statements[1].Directive != "word" || len(prog.Statements[1].DirArgs) != 3 {
		t.Errorf("second statement = %+v", prog.Statements[1])
	}
	if prog.Statements[2].Label != "count" || prog.Statements[2].Directive != "equ" {
		t.Errorf("third statement = %+v", prog.Statements[2])
	}
}
