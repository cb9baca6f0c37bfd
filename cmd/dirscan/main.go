// Package main is the entry point for the dirscan command-line tool,
// a configurable filesystem traversal utility: it enumerates the files
// beneath a base directory with depth, filter and ordering control.
package main

import (
	"os"

	"github.com/mialy/dirscan/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
