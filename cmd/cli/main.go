package main

import (
	"context"
	"os"

	"github.com/de-tools/pnl-dashboard/pkg/runtime/terminal"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Output: os.Stdout,
	})

	// cobra already printed the error
	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
