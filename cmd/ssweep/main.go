package main

import (
	"os"

	"github.com/mvbarbosa/session-sweep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
