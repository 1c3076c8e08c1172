package main

import (
	"os"

	"github.com/rudram/trivl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
