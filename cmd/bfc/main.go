package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Hixos/brainfuck-assembly/codegen"
	"github.com/Hixos/brainfuck-assembly/emulator"
)

func main() {
	var size int
	var dump int
	var limit int
	var memory int
	var raw bool
	var cells string
	var verbose bool

	flag.IntVar(&size, "t", emulator.DEFAULT_TAPE_SIZE, "Tape cells")
	flag.IntVar(&dump, "d", 0, "Dump this many tape cells after execution")
	flag.IntVar(&limit, "n", 0, "Maximum ops to execute, 0 for no limit")
	flag.IntVar(&memory, "m", codegen.DEFAULT_MEMORY_SIZE, "Indirect memory cells, for naming dumped cells")
	flag.BoolVar(&raw, "r", false, "Write output bytes raw instead of as numbers")
	flag.StringVar(&cells, "p", "", "Comma separated cells to print after execution, by name (R1,PC,M0)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: %v [flags] file.bf", os.Args[0])
	}
	path := flag.Arg(0)

	text, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	layout, err := codegen.Plan(codegen.Config{MemorySize: memory})
	if err != nil {
		log.Fatalf("%v", err)
	}

	emu := emulator.NewEmulator(size)
	emu.Verbose = verbose
	emu.StepLimit = limit
	emu.Names = layout.Name

	err = emu.Load(string(text))
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	emu.Tape.Input = os.Stdin
	if raw {
		emu.Tape.Output = os.Stdout
	} else {
		emu.Tape.Output = &emulator.NumberWriter{W: os.Stdout}
	}

	err = emu.Run()
	if !raw {
		fmt.Println()
	}
	if dump > 0 {
		emu.Tape.Dump(os.Stdout, dump, layout.Name)
	}
	if len(cells) != 0 {
		for _, name := range strings.Split(cells, ",") {
			cell, ok := layout.Lookup(strings.TrimSpace(name))
			if !ok || cell >= len(emu.Tape.Cells) {
				log.Printf("%v: no such cell", name)
				continue
			}
			fmt.Printf("%v=%d\n", layout.Name(cell), emu.Tape.Cells[cell])
		}
	}
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
}
