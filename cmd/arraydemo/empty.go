package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/fixedarray"
)

func (a *app) runEmpty(cmd *cobra.Command, _ []string) (err error) {
	var e fixedarray.Empty[int]
	a.log = a.log.WithSize(e.Size())

	p := newPrinter(cmd.OutOrStdout(), a.cfg.Format)
	defer func() {
		if cerr := p.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := p.Summary(e); err != nil {
		return err
	}
	if err := p.Print("initial", e); err != nil {
		return err
	}

	v, err := readFirst(e)
	if err != nil {
		a.log.LogAccessError(cmd.Context(), "index", 0, err)
		return fmt.Errorf("read element 0: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), "Element 0:", v)
	return err
}

// readFirst indexes e and turns the resulting length panic into an error.
func readFirst(e fixedarray.Empty[int]) (v int, err error) {
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = perr
		}
	}()
	return e.Index(0), nil
}
