// Package src holds the entry point of coverlookup. It wires the configuration,
// the logger and the artwork client together behind a command line interface.
//
// At the moment it is in package src because I import it from the project's root
// folder.
package src

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
)

// Main is the only thing run in the project's root main.go file.
// For all intent and purposes this is the main function.
func Main() {
	app := NewApp(NewRunner(RunnerOpts{}))

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal("application error", "err", err)
	}
}
