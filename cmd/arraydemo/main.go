// Package main provides the arraydemo CLI, a usage example for fixedarray.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hupe1980/fixedarray"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// exitCode maps contract violations and bad configuration to exitUserError
// and everything else to exitSysError.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, fixedarray.ErrLength),
		errors.Is(err, fixedarray.ErrOutOfRange),
		errors.Is(err, errInvalidConfig):
		return exitUserError
	default:
		return exitSysError
	}
}
