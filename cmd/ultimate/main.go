package main

import (
	"os"

	"github.com/satish049/Ultimate.Utilities/cmd/ultimate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
