// SPDX-License-Identifier: MIT

// Command lvchain simulates a discrete-time Markov chain and prints its
// state distribution per step followed by the stationary distribution.
//
// Usage:
//
//	lvchain [-config chain.yaml] [-steps N] [-digits D] [-plot out.png] [-log-level info]
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/lvchain/internal/app"
)

func main() {
	if err := app.Run(os.Args, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "lvchain:", err)
		os.Exit(1)
	}
}
