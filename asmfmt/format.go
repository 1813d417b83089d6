// Package asmfmt canonically re-renders parsed RISC16 assembly
// source, the way gofmt re-renders Go: one agreed-upon layout, no
// style knobs. RISC16 assembly has no audience split between a
// debugger's compact disassembly and a human's hand-written source, so
// there is only the one column layout.
package asmfmt

import (
	"fmt"
	"strings"

	"github.com/julesjung/risc16/parser"
)

const (
	mnemonicColumn = 8
	operandColumn  = 16
)

// Format parses input and re-renders it in canonical layout: labels at
// column 0, mnemonics/directives at mnemonicColumn, operands at
// operandColumn, one statement per line.
func Format(input, filename string) (string, error) {
	lexer := parser.NewLexer(input, filename)
	tokens := lexer.TokenizeAll()
	if lexer.Errors().HasErrors() {
		return "", lexer.Errors()
	}

	p := parser.NewParser(tokens)
	prog := p.Parse()
	if p.Errors().HasErrors() {
		return "", p.Errors()
	}

	var out strings.Builder
	for _, stmt := range prog.Statements {
		writeStatement(&out, stmt)
	}
	return out.String(), nil
}

func writeStatement(out *strings.Builder, stmt parser.Statement) {
	var line strings.Builder

	if stmt.Label != "" {
		line.WriteString(stmt.Label)
		line.WriteByte(':')
	}

	switch {
	case stmt.Directive != "":
		padTo(&line, mnemonicColumn)
		line.WriteByte('.')
		line.WriteString(stmt.Directive)
		if len(stmt.DirArgs) > 0 {
			padTo(&line, operandColumn)
			line.WriteString(joinOperands(stmt.DirArgs))
		}

	case stmt.Mnemonic != "":
		padTo(&line, mnemonicColumn)
		line.WriteString(stmt.Mnemonic)
		if len(stmt.Operands) > 0 {
			padTo(&line, operandColumn)
			line.WriteString(joinOperands(stmt.Operands))
		}

	default:
		// Label-only line: nothing further to render.
	}

	out.WriteString(strings.TrimRight(line.String(), " "))
	out.WriteByte('\n')
}

func padTo(sb *strings.Builder, column int) {
	for sb.Len() < column {
		sb.WriteByte(' ')
	}
	if sb.Len() == column {
		return
	}
	sb.WriteByte(' ')
}

func joinOperands(ops []parser.Operand) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = formatOperand(op)
	}
	return strings.Join(parts, ", ")
}

func formatOperand(op parser.Operand) string {
	switch op.Kind {
	case parser.OperandRegister:
		return fmt.Sprintf("R%d", op.Register)
	case parser.OperandMemory:
		return fmt.Sprintf("[R%d]", op.Register)
	case parser.OperandImmediate:
		return fmt.Sprintf("#%d", op.Value)
	case parser.OperandLabel:
		return op.Label
	default:
		return ""
	}
}
