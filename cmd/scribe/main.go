package main

import (
	"fmt"
	"os"

	"github.com/justyntemme/scribe/internal/cli"
)

var version = "dev"

func main() {
	// Handle OS-specific console visibility
	manageConsole()

	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
