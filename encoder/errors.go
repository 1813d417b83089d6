package encoder

import (
	"fmt"

	"github.com/julesjung/risc16/parser"
)

// EncodingError reports a statement the encoder could not turn into a
// valid instruction word or data byte — malformed operands, an
// out-of-range immediate, or a branch/jump target too far from the
// instruction that references it.
type EncodingError struct {
	Pos     parser.Position
	Message string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: encode error: %s", e.Pos, e.Message)
}
