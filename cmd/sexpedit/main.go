package main

import (
	"os"

	"github.com/kicadtools/sexpedit/cmd/sexpedit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
