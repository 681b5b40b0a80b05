package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/holiman/uint256"

	"disarium"
)

// doIters searches bound iters times, alternating the bound between bound
// and bound/10 so repeated runs cannot share work, and reports the result
// for the original bound.
func doIters(bound *uint256.Int, iters uint64) (int, uint256.Int) {
	var lower uint256.Int
	lower.Div(bound, uint256.NewInt(10))

	for n := uint64(0); n < iters; n++ {
		b := bound
		if n%2 == 1 {
			b = &lower
		}
		if _, err := disarium.Find(b); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	res, err := disarium.Find(bound)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return len(res), res[len(res)-1]
}

func main() {
	args := os.Args
	if len(args) > 1 && args[1] == "--server" {
		if err := disarium.RunServer(os.Stdin, os.Stdout, doIters); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if len(args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <bound> <iters>  |  %s --server\n", args[0], args[0])
		os.Exit(2)
	}
	bound, err1 := uint256.FromDecimal(args[1])
	iters, err2 := strconv.ParseUint(args[2], 10, 64)
	if err1 != nil || err2 != nil {
		fmt.Fprintf(os.Stderr, "error parsing arguments\n")
		os.Exit(2)
	}
	if iters == 0 {
		iters = 1
	}
	count, last := doIters(bound, iters)
	fmt.Printf("%d %s\n", count, last.Dec())
}
