package main

import (
	"os"

	"github.com/learncheck/learncheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
