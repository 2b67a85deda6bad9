package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/contamers/pkg/cli"
)

func main() {
	ctx := kong.Parse(&cli.CLI,
		kong.Name("contamers"),
		kong.Description("Demo of the list and strtrie containers"),
		kong.UsageOnError(),
	)
	if err := ctx.Run(cli.NewContext(os.Stdout, os.Stderr, cli.CLI.LogLevel)); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
