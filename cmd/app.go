// Package cmd implements the CLI application to manage the shop books.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/lafermette/boutique"
	"github.com/lafermette/boutique/ghsync"
	"github.com/sirupsen/logrus"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", "data", "Path to the folder holding the shop tables")
var verbose = flag.Bool("v", false, "Log every table write")

// OpenShop opens the shop tables in the app data folder, wiring the remote
// sync when one is configured in the environment.
func OpenShop() *boutique.Shop {
	// Secrets may live in a .env next to the binary rather than in the
	// environment proper.
	godotenv.Load()

	if *verbose {
		boutique.Logger().SetLevel(logrus.DebugLevel)
	}

	shop := boutique.Open(*dataDir)
	if sync := ghsync.FromEnv(); sync != nil {
		shop.SetSyncer(sync)
	}
	return shop
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(text string) {
	out, err := glamour.Render(text, "auto")
	if err != nil {
		fmt.Print(text)
		return
	}
	fmt.Print(out)
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

func usageError(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitUsageError
}
