// Command lencoder fits, extends and applies persisted label mappings from
// the command line.
//
// Usage:
//
//	lencoder fit color.lenc red green red
//	cut -d, -f3 new.csv | lencoder update color.lenc
//	lencoder transform color.lenc blue red
//	lencoder inverse color.lenc 2 0
//	lencoder dump color.lenc
//
// Defaults come from LENCODER_* environment variables; flags override them.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd, err := newRootCmd(os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
