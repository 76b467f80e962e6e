package main

import (
	"fmt"
	"os"

	"github.com/mobile-next/swiped/cli"
)

func main() {
	// signals are handled by the run command, which wakes the main loop
	// so a stop request exits with status 0
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
