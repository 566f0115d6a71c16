package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"crosswarped.com/nono"
)

func main() {
	puzzlePath := flag.String("puzzle", "", "The puzzle JSON file to solve")
	outPath := flag.String("out", "", "Write the resulting puzzle JSON here")
	stepOnly := flag.Bool("step", false, "Run a single propagation pass instead of a full solve")
	timeout := flag.Duration("timeout", 1*time.Minute, "The timeout for the solver")
	verbose := flag.Bool("v", false, "Enable solver debug logging")

	profile := flag.Bool("profile", false, "Profile the solver")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")
	memoryProfileFile := flag.String("memory-profile-file", "mem.pprof", "The file to write the memory profile to")

	flag.Parse()

	if *puzzlePath == "" {
		fmt.Println("Missing required flag: -puzzle")
		os.Exit(1)
	}

	nono.SetVerbose(*verbose)

	puzzle, err := nono.LoadPuzzle(*puzzlePath)
	if err != nil {
		fmt.Println("Error loading puzzle:", err)
		os.Exit(1)
	}

	grid, err := puzzle.ToGrid()
	if err != nil {
		fmt.Println("Error building grid:", err)
		os.Exit(1)
	}

	var mf *os.File
	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			fmt.Println("Error creating profile file:", err)
			os.Exit(1)
		}
		defer f.Close()

		mf, err = os.Create(*memoryProfileFile)
		if err != nil {
			fmt.Println("Error creating memory profile file:", err)
			os.Exit(1)
		}
		defer mf.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Println("Error starting CPU profile:", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	solver := nono.NewSolver()

	if *stepOnly {
		changed, status := solver.Step(grid)
		fmt.Println(grid.Repr())
		fmt.Printf("Status: %s (changed: %v)\n", status, changed)
		writeOut(grid, *outPath)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	start := time.Now()
	result := solver.Solve(ctx, grid)
	elapsed := time.Since(start)

	fmt.Println(grid.Repr())
	fmt.Println("--------------------------------")
	fmt.Printf("Status: %s\n", result.Status)
	fmt.Printf("Passes: %d, nodes: %d, max depth: %d, fixed cells: %d, elapsed: %v\n",
		result.Stats.Passes, result.Stats.Nodes, result.Stats.MaxDepth, result.Stats.FixedCells, elapsed.Round(time.Millisecond))

	if result.Status == nono.StatusMultipleSolutions {
		for i, sol := range result.Solutions {
			fmt.Printf("Solution %d:\n%s\n", i+1, sol.Repr())
		}
	}

	writeOut(grid, *outPath)

	if mf != nil {
		pprof.WriteHeapProfile(mf)
	}
}

func writeOut(grid *nono.Grid, path string) {
	if path == "" {
		return
	}
	if err := grid.Puzzle().Save(path); err != nil {
		fmt.Println("Error saving puzzle:", err)
		os.Exit(1)
	}
}
