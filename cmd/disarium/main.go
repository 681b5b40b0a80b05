// Command disarium prints every Disarium number up to a bound, one per line.
//
// Usage:
//
//	disarium                       # bound 10^10
//	disarium 3000000
//	disarium --digits 7            # exactly seven digit numbers
//	disarium --profile tune.yaml --time --metrics-file disarium.prom 1e12
//	disarium check 135 136
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
