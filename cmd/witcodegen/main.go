package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/componentize-wit/witcodegen/cmd/witcodegen/cmd/describe"
	"github.com/componentize-wit/witcodegen/cmd/witcodegen/cmd/fetch"
	"github.com/componentize-wit/witcodegen/cmd/witcodegen/cmd/generate"
	"github.com/componentize-wit/witcodegen/internal/witcli"
)

// Command is the root CLI command tree, exercised directly by
// main_test.go the way the teacher's own main_test.go drives Command
// rather than re-executing the binary.
var Command = &cli.Command{
	Name:  "witcodegen",
	Usage: "generate C++ host bindings from WIT (WebAssembly Interface Types)",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "enable informational logging",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
		},
	},
	Commands: []*cli.Command{
		generate.Command,
		describe.Command,
		fetch.Command,
	},
	Version: witcli.Version(),
}

func main() {
	if err := Command.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
