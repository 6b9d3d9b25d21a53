package main

import (
	"os"

	"github.com/chronos-tachyon/huffman/v2/internal/command"
)

func main() {
	if err := command.NewRootCommandeer().Execute(); err != nil {
		os.Exit(1)
	}

	os.Exit(0)
}
