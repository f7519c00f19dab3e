package main

import (
	"os"

	"pdfapi/internal/cli"
)

func main() {
	if err := cli.RootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
