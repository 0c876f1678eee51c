package main

import (
	"os"

	"github.com/quizdoc/quizdoc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
