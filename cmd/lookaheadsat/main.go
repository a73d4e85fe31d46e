package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/crillab/lookaheadsat/dimacs"
	"github.com/crillab/lookaheadsat/lookahead"
)

func main() {
	var (
		verbose bool
		timeout time.Duration
	)
	flag.BoolVar(&verbose, "verbose", false, "sets verbose mode on")
	flag.DurationVar(&timeout, "timeout", 0, "abort the search after this long (0 disables the timeout)")
	flag.Parse()
	if len(flag.Args()) != 1 {
		fmt.Fprintf(os.Stderr, "Syntax: %s [options] file.cnf\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	path := flag.Args()[0]
	fmt.Printf("c solving %s\n", path)
	pb, err := parse(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not parse problem: %v\n", err)
		os.Exit(1)
	}
	solve(pb, verbose, timeout)
}

func parse(path string) (*dimacs.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	pb, err := dimacs.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse DIMACS file %q: %w", path, err)
	}
	return pb, nil
}

func solve(pb *dimacs.Problem, verbose bool, timeout time.Duration) {
	e := lookahead.New(pb.NbVars, pb.Clauses, lookahead.DefaultConfig())
	e.Verbose = verbose
	if verbose {
		fmt.Printf("c number of variables : %d\n", pb.NbVars)
		fmt.Printf("c number of clauses   : %d\n", len(pb.Clauses))
	}
	if timeout > 0 {
		cancel := make(chan struct{})
		time.AfterFunc(timeout, func() { close(cancel) })
		e.SetLimits(lookahead.Limits{Cancel: cancel})
	}
	status, err := e.Search()
	if err != nil {
		fmt.Fprintf(os.Stderr, "c search aborted: %v\n", err)
		fmt.Println("INDETERMINATE")
		os.Exit(1)
	}
	switch status {
	case lookahead.Sat:
		fmt.Println("SATISFIABLE")
		outputModel(e)
	case lookahead.Unsat:
		fmt.Println("UNSATISFIABLE")
	default:
		fmt.Println("INDETERMINATE")
	}
	e.Dump(os.Stdout)
}

func outputModel(e *lookahead.Engine) {
	fmt.Print("v ")
	for v, val := range e.GetModel() {
		switch val {
		case lookahead.True:
			fmt.Printf("%d ", v+1)
		case lookahead.False:
			fmt.Printf("%d ", -(v + 1))
		}
	}
	fmt.Println("0")
}
