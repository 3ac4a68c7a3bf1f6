// Command cdclsat reads a DIMACS CNF formula and reports SAT/UNSAT.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kr/pretty"

	"github.com/hartwell/cdclsat/dimacs"
	"github.com/hartwell/cdclsat/dratfmt"
	"github.com/hartwell/cdclsat/internal/sat"
)

var (
	flagGzip    = flag.Bool("gzip", false, "instance file is gzip-compressed")
	flagLRB     = flag.Bool("lrb", false, "use the LRB branching heuristic instead of VSIDS")
	flagPhase   = flag.Bool("phase-saving", false, "reuse each variable's last assigned sign when deciding (VSIDS only)")
	flagDrat    = flag.String("drat", "", "write a DRAT proof of unsatisfiability to this file")
	flagVerbose = flag.Bool("v", false, "print solver statistics before the verdict")
	flagTimeout = flag.Duration("timeout", 0, "abort the search after this long (0 disables)")
)

func parseArgs() (string, error) {
	flag.Parse()
	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return "", fmt.Errorf("missing instance file")
	}
	return flag.Arg(0), nil
}

func run(instanceFile string) error {
	opts := sat.DefaultOptions
	opts.PhaseSaving = *flagPhase
	opts.CaptureDRAT = *flagDrat != ""
	if *flagLRB {
		opts.Heuristic = sat.HeuristicLRB
	}
	if *flagTimeout > 0 {
		opts.Timeout = *flagTimeout
	} else {
		opts.Timeout = -1
	}

	s := sat.NewSolver(opts)
	if err := dimacs.LoadFile(instanceFile, *flagGzip, s); err != nil {
		return fmt.Errorf("could not load instance: %w", err)
	}

	fmt.Printf("c variables: %d\n", s.NumVars())
	fmt.Printf("c clauses:   %d\n", s.NumClauses())

	start := time.Now()
	status, model := s.Solve(nil)
	elapsed := time.Since(start)

	if *flagVerbose {
		pretty.Println(s.Stats())
	}

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	switch status {
	case sat.True:
		fmt.Println("s SATISFIABLE")
		printModel(model)
	case sat.False:
		fmt.Println("s UNSATISFIABLE")
	default:
		fmt.Println("s UNKNOWN")
	}

	if events, ok := s.DratEvents(); ok && *flagDrat != "" {
		f, err := os.Create(*flagDrat)
		if err != nil {
			return fmt.Errorf("could not create DRAT output: %w", err)
		}
		defer f.Close()
		if err := dratfmt.Write(f, events); err != nil {
			return fmt.Errorf("could not write DRAT output: %w", err)
		}
	}

	return nil
}

func printModel(model []bool) {
	fmt.Print("v")
	for v, val := range model {
		if val {
			fmt.Printf(" %d", v+1)
		} else {
			fmt.Printf(" -%d", v+1)
		}
	}
	fmt.Println(" 0")
}

func main() {
	instanceFile, err := parseArgs()
	if err != nil {
		log.Fatal(err)
	}
	if err := run(instanceFile); err != nil {
		log.Fatal(err)
	}
}
