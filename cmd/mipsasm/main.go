// Command mipsasm assembles a MIPS-I source file and runs it on the
// single-cycle datapath simulator.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"mipsasm"
	"mipsasm/config"
	"mipsasm/parser"
	"mipsasm/vm"
)

// Version is overridden at build time with -ldflags "-X main.Version=v1.2.3".
var Version = "dev"

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		maxCycles   = flag.Uint64("max-cycles", 1000000, "Maximum datapath cycles before giving up")
		verbose     = flag.Bool("verbose", false, "Verbose output")
		dumpRegs    = flag.Bool("dump-registers", false, "Print register file contents after halt")
		configPath  = flag.String("config", "", "Path to a config.toml overriding the defaults")
		memSize     = flag.Uint("mem-size", 0, "Override the memory size in bytes (default: from config)")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("mipsasm %s\n", Version)
		os.Exit(0)
	}
	if *showHelp || flag.NArg() == 0 {
		printHelp()
		os.Exit(0)
	}

	asmFile := flag.Arg(0)
	source, err := os.ReadFile(asmFile) // #nosec G304 -- user-specified assembly file path
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot read %s: %v\n", asmFile, err)
		os.Exit(1)
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot load config: %v\n", err)
			os.Exit(1)
		}
	}

	if *verbose {
		fmt.Printf("Assembling %s...\n", asmFile)
	}

	if *memSize != 0 {
		size, err := vm.SafeUintToUint32(*memSize)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg.Memory.Size = size
	}

	exitCode, err := run(string(source), cfg, *maxCycles, *verbose, *dumpRegs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		switch {
		case parser.IsKind(err, parser.ErrorUnknownInstruction):
			fmt.Fprintln(os.Stderr, "hint: check the mnemonic against the supported instruction and pseudo-instruction set")
		case parser.IsKind(err, parser.ErrorUnknownLabel):
			fmt.Fprintln(os.Stderr, "hint: check for a missing label definition or a typo in the label reference")
		}
		os.Exit(1)
	}
	os.Exit(exitCode)
}

func printHelp() {
	fmt.Printf(`mipsasm %s

Usage: mipsasm [options] <assembly-file>

Options:
  -help              Show this help message
  -version           Show version information
  -max-cycles N      Maximum datapath cycles before giving up (default: 1000000)
  -verbose           Enable verbose output
  -dump-registers    Print register file contents after halt
  -config FILE       Load a config.toml overriding the built-in defaults
  -mem-size N        Override the memory size in bytes

Examples:
  mipsasm examples/fibonacci.s
  mipsasm -verbose -dump-registers program.s
`, Version)
}

// run assembles source into mem, seeds the datapath's PC and stack
// pointer, and ticks it to halt. It returns the process exit code
// ($v0 at halt, the MIPS syscall-exit convention) and any fatal error.
func run(source string, cfg *config.Config, maxCycles uint64, verbose, dumpRegs bool) (int, error) {
	mem := vm.NewMemory(cfg.Memory.Size)

	next, st, warnings, err := mipsasm.Assemble(mem, source, cfg.Memory.TextBase, cfg.Memory.DataBase,
		cfg.Assembler.AtRegister, cfg.Assembler.MaxPseudoExpansionRounds)
	if err != nil {
		return 0, err
	}
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, w.String())
	}
	if verbose {
		fmt.Printf("Assembled through 0x%08X\n", next)
		names := st.Names()
		sort.Strings(names)
		fmt.Printf("Symbols: %s\n", strings.Join(names, ", "))
	}

	dp := vm.NewDatapath(mem, cfg.Datapath.MaxTickIterations)
	dp.PC.Set(cfg.Memory.TextBase)
	dp.Regs.Set(29, cfg.Memory.StackTop) // $sp

	if verbose {
		fmt.Println("Running...")
	}

	cycles, err := dp.Run(maxCycles)
	if err != nil {
		return 0, err
	}

	if verbose {
		fmt.Printf("Halted after %d cycle(s)\n", cycles)
	}
	if dumpRegs {
		for i := 0; i < 32; i++ {
			v := dp.Regs.Get(uint32(i))
			fmt.Printf("$%-2d = 0x%08X (%d)\n", i, v, vm.AsInt32(v))
		}
	}

	return int(dp.Regs.Get(2)), nil // $v0
}
