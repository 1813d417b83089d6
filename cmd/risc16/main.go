// Command risc16 assembles and emulates RISC16 binary images and
// formats RISC16 assembly source. It is organized as three subcommands — assemble, emulate,
// fmt — each with its own flag.NewFlagSet rather than a third-party
// CLI framework (DESIGN.md discusses why cobra was left unwired).
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/julesjung/risc16/asmfmt"
	"github.com/julesjung/risc16/config"
	"github.com/julesjung/risc16/encoder"
	"github.com/julesjung/risc16/loader"
	"github.com/julesjung/risc16/parser"
	"github.com/julesjung/risc16/vm"
)

// Version can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var Version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "assemble":
		err = runAssemble(os.Args[2:])
	case "emulate":
		err = runEmulate(os.Args[2:])
	case "fmt":
		err = runFmt(os.Args[2:])
	case "-version", "--version", "version":
		fmt.Printf("risc16 %s\n", Version)
		return
	case "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "risc16: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `usage:
  risc16 assemble <input.asm> <output.bin>
  risc16 emulate <input> [-f asm|bin] [-s] [-c N] [-r] [-F] [-m]
                 [--memory-start ADDR] [--memory-end ADDR]
                 [--memory-format hex|dec|bin]
  risc16 fmt <input.asm>
`)
}

func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}

// assembleSource parses and encodes RISC16 assembly text into a flat
// byte image.
func assembleSource(source, filename string) ([]byte, error) {
	lexer := parser.NewLexer(source, filename)
	tokens := lexer.TokenizeAll()
	if lexer.Errors().HasErrors() {
		return nil, lexer.Errors()
	}

	p := parser.NewParser(tokens)
	prog := p.Parse()
	if p.Errors().HasErrors() {
		return nil, p.Errors()
	}

	enc := encoder.NewEncoder()
	return enc.Assemble(prog)
}

func runAssemble(args []string) error {
	fs := newFlagSet("assemble")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 2 {
		return fmt.Errorf("assemble requires <input.asm> <output.bin>")
	}
	input, output := rest[0], rest[1]

	source, err := os.ReadFile(input) // #nosec G304 -- CLI-supplied input path
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}
	image, err := assembleSource(string(source), input)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, image, 0644); err != nil { // #nosec G306 -- CLI-supplied output path
		return fmt.Errorf("writing %s: %w", output, err)
	}
	return nil
}

func runFmt(args []string) error {
	fs := newFlagSet("fmt")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return fmt.Errorf("fmt requires <input.asm>")
	}
	source, err := os.ReadFile(rest[0]) // #nosec G304 -- CLI-supplied input path
	if err != nil {
		return fmt.Errorf("reading %s: %w", rest[0], err)
	}
	formatted, err := asmfmt.Format(string(source), rest[0])
	if err != nil {
		return err
	}
	fmt.Print(formatted)
	return nil
}

func runEmulate(args []string) error {
	fs := newFlagSet("emulate")
	format := fs.String("f", "asm", "input format: asm or bin")
	showStats := fs.Bool("s", false, "print halted state and final PC after run")
	cycles := fs.Uint64("c", 0, "cycle budget (0 = config/default)")
	showRegs := fs.Bool("r", false, "print registers after run")
	showFlags := fs.Bool("F", false, "print flags after run")
	showMem := fs.Bool("m", false, "print a memory window after run")
	memStart := fs.String("memory-start", "0x0000", "start address of the memory window")
	memEnd := fs.String("memory-end", "0x0010", "end address of the memory window")
	memFormat := fs.String("memory-format", "hex", "memory window format: hex, dec, or bin")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return fmt.Errorf("emulate requires <input>")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	raw, err := os.ReadFile(rest[0]) // #nosec G304 -- CLI-supplied input path
	if err != nil {
		return fmt.Errorf("reading %s: %w", rest[0], err)
	}

	var image []byte
	switch *format {
	case "asm":
		image, err = assembleSource(string(raw), rest[0])
		if err != nil {
			return err
		}
	case "bin":
		image = raw
	default:
		return fmt.Errorf("unknown -f value: %s", *format)
	}

	machine := vm.NewMachine()
	if err := loader.Load(machine, image); err != nil {
		return err
	}

	limit := *cycles
	if limit == 0 {
		limit = cfg.Execution.MaxCycles
	}
	if cfg.Execution.EnableTrace {
		machine.Trace = vm.NewExecutionTrace(vm.DefaultTraceCapacity)
	}

	runErr := machine.Run(limit)

	if *showRegs {
		printRegisters(machine)
	}
	if *showFlags {
		printFlags(machine)
	}
	if *showMem {
		if err := printMemoryWindow(machine, *memStart, *memEnd, *memFormat); err != nil {
			return err
		}
	}
	if *showStats {
		fmt.Printf("halted=%t pc=0x%04X\n", machine.Halted, machine.PC)
	}

	if runErr != nil {
		return runErr
	}
	return nil
}

func printRegisters(m *vm.Machine) {
	for i := 0; i < vm.RegisterCount; i++ {
		fmt.Printf("R%d=0x%04X ", i, m.Registers.Get(i))
	}
	fmt.Println()
}

func printFlags(m *vm.Machine) {
	fmt.Printf("C=%t O=%t Z=%t S=%t\n", m.Flags.Carry, m.Flags.Overflow, m.Flags.Zero, m.Flags.Signed)
}

func printMemoryWindow(m *vm.Machine, startStr, endStr, format string) error {
	start, err := parseAddress(startStr)
	if err != nil {
		return fmt.Errorf("--memory-start: %w", err)
	}
	end, err := parseAddress(endStr)
	if err != nil {
		return fmt.Errorf("--memory-end: %w", err)
	}
	if end < start {
		return fmt.Errorf("--memory-end must not be before --memory-start")
	}

	bytes := m.Memory.Bytes(start, int(end-start)+1)
	var sb strings.Builder
	for i, b := range bytes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch format {
		case "hex":
			fmt.Fprintf(&sb, "%02X", b)
		case "dec":
			fmt.Fprintf(&sb, "%d", b)
		case "bin":
			fmt.Fprintf(&sb, "%08b", b)
		default:
			return fmt.Errorf("unknown --memory-format value: %s", format)
		}
	}
	fmt.Println(sb.String())
	return nil
}

func parseAddress(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	return uint16(n), nil
}
