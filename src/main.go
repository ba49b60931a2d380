// Package src contains the Main function of brainz. It sets up the configuration,
// logging and the MusicBrainz clients and runs the command given on the command line.
//
// It is in package src because it is imported from the project's root folder.
package src

import (
	"context"
	"io"
	"os"
	"os/signal"
)

// Main is the only thing run in the project's root main.go file.
// For all intent and purposes this is the main function.
func Main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	code := Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()

	os.Exit(code)
}

// Run executes the command line `args` and returns the process exit status. See
// exitCode for the meaning of the statuses.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)
	return a.run(ctx, args)
}
