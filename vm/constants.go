package vm

// ============================================================================
// RISC16 Architecture Constants
// ============================================================================
// These values are defined by the RISC16 instruction encoding and should
// not be changed independently of the decoder/encoder pair.

const (
	// Register file
	RegisterCount = 8 // R0-R7

	// Memory
	MemorySize = 0x10000 // 64 KiB, byte addressable

	// Instruction encoding
	InstructionSize = 2 // bytes per instruction word

	// Sign bit for 16-bit flag computations
	SignBitPos16  = 15
	SignBitMask16 = 0x8000

	// Sign bit for 8-bit (byte-compare) flag computations
	SignBitPos8  = 7
	SignBitMask8 = 0x80
)

// ============================================================================
// Instruction Field Bit Positions
// ============================================================================
// Field positions shared between the decoder and the encoder. Bit 15
// is the MSB of the instruction word.

const (
	MajorClassShift = 12 // w[15:12]

	RdShiftHigh = 9 // w[11:9]: rd (classes 0,1,2,5,6), rs (4,7,9), ra (3)
	RaShiftLow  = 6 // w[8:6]:  ra (0), rs (1,6), rb (3), rd (7)
	RbShiftLow  = 3 // rb = w[5:3]   (class 0 only)

	ShiftImmShift = 2 // imm = w[5:2] (class 1)
	ByteImmShift  = 1 // imm = w[8:1] (classes 2,4,5)

	BranchOffsetShift = 3 // offset = w[11:3] (class 0xa)
)

// ============================================================================
// Instruction Field Bit Masks
// ============================================================================

const (
	Mask3Bit  = 0x7
	Mask4Bit  = 0xF
	Mask8Bit  = 0xFF
	Mask9Bit  = 0x1FF
	Mask12Bit = 0xFFF
	Mask16Bit = 0xFFFF
)

// ============================================================================
// VM Execution Limits
// ============================================================================

const (
	// DefaultStepLimit bounds Run when the caller supplies no explicit
	// cycle budget, preventing a runaway program from looping forever
	// under automated tooling (tests, the CLI's default mode).
	DefaultStepLimit = 10_000_000

	// DefaultTraceCapacity is the number of entries an ExecutionTrace
	// keeps when NewExecutionTrace is given no positive capacity.
	DefaultTraceCapacity = 1024
)
