package main

import (
	"os"

	"github.com/rivet-ui/rivet/cmd/rivet/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
