package vm

import "fmt"

// DecodeError reports an instruction word that did not match any
// allocated encoding. It carries the program counter the word was
// fetched from and the offending word itself, mirroring the
// position-plus-payload shape of parser.Error and encoder.EncodingError.
type DecodeError struct {
	PC   uint16
	Word uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode failed at PC=0x%04X: unknown instruction word 0x%04X", e.PC, e.Word)
}

// StepLimitError reports that Run executed its maximum permitted
// number of instructions without halting. This is an embedder-imposed
// cycle budget, distinct from a genuine decode failure.
type StepLimitError struct {
	Limit uint64
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("step limit exceeded (%d instructions)", e.Limit)
}
