package main

import (
	"os"

	"github.com/Arora962/NagarikMitra/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
