// Command listbox is an accessible listbox picker for the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/rshade/listbox/internal/cli"
	"github.com/rshade/listbox/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and returns the process exit code.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	err := root.ExecuteContext(ctx)
	if err != nil && !isExitError(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}

// isExitError reports whether err only carries an exit code.
func isExitError(err error) bool {
	var exitErr *cli.ExitError
	return errors.As(err, &exitErr)
}
