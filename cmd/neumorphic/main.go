package main

import (
	"os"

	"github.com/go-drift/neumorphic/cmd/neumorphic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
