package main

import (
	"os"

	"github.com/iw2rmb/rubytype/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// cobra has already printed the error.
		os.Exit(1)
	}
}
