// bqt is the command line tool to keep the books of a small farm shop.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/lafermette/boutique/cmd"
)

func main() {
	cmd.Register(subcommands.DefaultCommander)
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
