// Command dirtvm assembles a .dasm source file onto a simulated disk image
// and runs it: read a `.dasm` file, write a `.hdd` file, re-read and run it,
// print elapsed wall-clock and an execution summary.
//
// Grounded on the teacher's main.go (flag-driven run, timing the execution
// with time.Now()/time.Since(), a post-run statistics block, raw-mode
// terminal setup/teardown around the run) and on rcornwell-S370's main.go
// (getopt for flag parsing, log/slog host-level logging).
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	getopt "github.com/pborman/getopt/v2"
	"golang.org/x/term"

	"github.com/suncloudsmoon/Dirt-Emulator/internal/assemble"
	"github.com/suncloudsmoon/Dirt-Emulator/internal/diskimage"
	"github.com/suncloudsmoon/Dirt-Emulator/internal/emulog"
	"github.com/suncloudsmoon/Dirt-Emulator/internal/isa"
	"github.com/suncloudsmoon/Dirt-Emulator/internal/trace"
	"github.com/suncloudsmoon/Dirt-Emulator/internal/vm"
)

var logger *slog.Logger

func main() {
	optDasm := getopt.StringLong("dasm", 'a', "src/everything.dasm", "Assembly source file")
	optHDD := getopt.StringLong("hdd", 'd', "src/everything.hex", "Disk image file (overwritten)")
	optPreset := getopt.StringLong("preset", 'p', "16", `Memory preset: "8", "16", or a word count`)
	optTrace := getopt.StringLong("trace", 't', "", "Write execution trace to file")
	optStep := getopt.BoolLong("step", 's', "Single-step interactively, one keypress per instruction")
	optHelp := getopt.BoolLong("help", 'h', "Show usage and exit")
	getopt.Parse()

	logger = emulog.New(os.Stderr, false)

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	stackSize, err := presetStackSize(*optPreset)
	if err != nil {
		logger.Error("bad preset", "preset", *optPreset, "err", err)
		os.Exit(1)
	}

	if err := run(*optDasm, *optHDD, *optTrace, stackSize, *optStep); err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
}

// presetStackSize resolves the --preset flag to a word count: the named
// presets "8" and "16" (isa.EightBitMaxMem, isa.SixteenBitMaxMem) or an
// arbitrary decimal word count.
func presetStackSize(preset string) (int, error) {
	switch preset {
	case "8":
		return isa.EightBitMaxMem, nil
	case "16":
		return isa.SixteenBitMaxMem, nil
	default:
		n, err := strconv.Atoi(preset)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("must be \"8\", \"16\", or a positive word count, got %q", preset)
		}
		return n, nil
	}
}

func run(dasmPath, hddPath, tracePath string, stackSize int, step bool) error {
	dasm, err := os.Open(dasmPath)
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer dasm.Close()

	hdd, err := os.OpenFile(hddPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("opening disk image: %w", err)
	}
	defer hdd.Close()

	disk := diskimage.New(hdd, uint32(stackSize))
	asm := assemble.New(disk, 0)
	numLines, err := asm.Assemble(dasm)
	if err != nil {
		return fmt.Errorf("assembling %s: %w", dasmPath, err)
	}
	logger.Info("assembled", "file", dasmPath, "lines", numLines, "hdd", hddPath)

	machine := vm.New(stackSize, os.Stdout)

	if tracePath != "" {
		f, err := os.Create(tracePath)
		if err != nil {
			return fmt.Errorf("creating trace file: %w", err)
		}
		defer f.Close()
		machine.Tracer = trace.New(f)
	}

	if err := machine.Load(disk, 0); err != nil {
		return fmt.Errorf("loading %s: %w", hddPath, err)
	}

	if step {
		return runStepped(machine)
	}

	start := time.Now()
	instructions := 0
	for machine.Step() {
		instructions++
	}
	elapsed := time.Since(start)
	printSummary(instructions, elapsed, machine)
	return nil
}

// runStepped puts the terminal in raw mode and blocks for one keypress
// between instructions. Grounded on the teacher's setupTerminal/
// restoreTerminal pair, repurposed from UART console raw mode to debug
// stepping since this system has no UART device.
func runStepped(machine *vm.VM) error {
	fd := int(os.Stdin.Fd())
	var saved *term.State
	if term.IsTerminal(fd) {
		var err error
		saved, err = term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("entering raw mode: %w", err)
		}
	}
	restore := func() {
		if saved != nil {
			_ = term.Restore(fd, saved)
		}
	}
	defer restore()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		restore()
		os.Exit(130)
	}()

	in := bufio.NewReader(os.Stdin)
	start := time.Now()
	instructions := 0
	for machine.Step() {
		instructions++
		fmt.Fprintf(os.Stderr, "[IC=%d] press any key to continue...\r\n", machine.IC())
		if _, _, err := in.ReadRune(); err != nil {
			break
		}
	}
	elapsed := time.Since(start)
	restore()
	printSummary(instructions, elapsed, machine)
	return nil
}

func printSummary(instructions int, elapsed time.Duration, machine *vm.VM) {
	fmt.Fprintf(os.Stderr, "\n----------------------------------------\n")
	fmt.Fprintf(os.Stderr, "Instructions: %d\n", instructions)
	fmt.Fprintf(os.Stderr, "Time: %v\n", elapsed.Round(time.Microsecond))
	if elapsed > 0 {
		rate := float64(instructions) / elapsed.Seconds()
		fmt.Fprintf(os.Stderr, "Rate: %.0f instructions/sec\n", rate)
	}
	fmt.Fprintf(os.Stderr, "Final ERR: 0x%x\n", machine.Reg(isa.RegERR))
}
