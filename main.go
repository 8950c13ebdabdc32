// Package main is the entry point for the peerage application
package main

import (
	"github.com/ethpandaops/peerage/cmd"
)

func main() {
	cmd.Execute()
}
