// Package main is the entry point for the pyrepo CLI.
package main

import (
	"fmt"
	"os"

	"github.com/pyrepo/cli/internal/cmd"
	oerrors "github.com/pyrepo/cli/internal/errors"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
