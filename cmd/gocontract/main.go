package main

import (
	"os"

	"github.com/ariel-frischer/gocontract/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
