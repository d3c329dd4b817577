package main

import (
	"os"

	"github.com/AsilbekT/secman/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
