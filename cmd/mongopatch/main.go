package main

import (
	"os"

	"github.com/brunoga/mongopatch/cmd/mongopatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
