// Command linsolve solves small linear systems A·x = b.
//
// Without -system it runs the built-in demonstrations: the inverse and
// condition number of a 3×3 matrix, an LU solve, and the Jacobi and
// Gauss-Seidel iterations on a diagonally dominant system. With -system it
// loads one or more systems from a .yaml/.yml or .lsb file and runs the same
// report for each.
//
// Usage:
//
//	linsolve [-system FILE] [-method jacobi|gauss-seidel|both] [-tol T]
//	         [-max-iter N] [-precision P] [-plot OUT.png] [-live] [-demo NAME]
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("linsolve: ")

	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = run(ctx, cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
