// SPDX-License-Identifier: MIT

// Command fluxflat flattens pulsed irradiation schedules from the command line.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/fluxflat/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}

	// ExitErrors wrapping a cause were already reported by the formatter.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		// cobra flag and argument errors
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCommandError)
	}
	if exitErr.Err == nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(exitErr.Code)
}
