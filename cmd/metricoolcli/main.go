package main

import (
	"os"
	_ "time/tzdata"

	"github.com/dedene/metricool-cli/internal/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
