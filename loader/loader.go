// Package loader copies an already-assembled RISC16 binary image into
// a vm.Machine's memory. A RISC16 image carries no segments, literal
// pools, or alignment directives: it is a raw byte image loaded flat
// at address 0.
package loader

import (
	"fmt"

	"github.com/julesjung/risc16/vm"
)

// ErrOverflow reports that an image exceeds RISC16's 64 KiB address
// space.
type ErrOverflow struct {
	Size int
}

func (e *ErrOverflow) Error() string {
	return fmt.Sprintf("image of %d bytes exceeds the 64 KiB address space", e.Size)
}

// Load copies image into machine's memory starting at address 0 and
// resets PC to 0, the fixed entry point of every RISC16 program.
func Load(machine *vm.Machine, image []byte) error {
	if len(image) > vm.MemorySize {
		return &ErrOverflow{Size: len(image)}
	}
	machine.Memory.LoadBytes(0, image)
	machine.PC = 0
	return nil
}
