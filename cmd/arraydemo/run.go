package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/fixedarray"
)

// demoArray is the container the run command exercises.
type demoArray = fixedarray.Array[int, [6]int]

// buildDemo fills a and stores the configured values at indices 0-2.
func (a *app) buildDemo(cmd *cobra.Command, arr *demoArray) error {
	ctx := cmd.Context()

	arr.Fill(a.cfg.Fill)
	a.log.LogMutation(ctx, "fill", -1, nil)

	arr.Set(0, a.cfg.Front)
	a.log.LogMutation(ctx, "set", 0, nil)
	arr.Set(1, a.cfg.Second)
	a.log.LogMutation(ctx, "set", 1, nil)

	err := arr.SetAt(2, a.cfg.Third)
	a.log.LogMutation(ctx, "set_at", 2, err)
	if err != nil {
		return fmt.Errorf("set element 2: %w", err)
	}
	return nil
}

// scaleBackward multiplies every element by factor, walking from the last
// element to the first and writing each result back in place.
func (a *app) scaleBackward(cmd *cobra.Command, arr *demoArray, factor int) {
	visited := 0
	for _, p := range arr.BackwardRefs() {
		*p *= factor
		visited++
	}
	a.log.LogTraversal(cmd.Context(), "backward", visited)
}

func (a *app) runDemo(cmd *cobra.Command, _ []string) (err error) {
	var arr demoArray
	a.log = a.log.WithSize(arr.Size())

	if err := a.buildDemo(cmd, &arr); err != nil {
		return err
	}

	p := newPrinter(cmd.OutOrStdout(), a.cfg.Format)
	defer func() {
		if cerr := p.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := p.Summary(&arr); err != nil {
		return err
	}
	if err := p.Print("initial", &arr); err != nil {
		return err
	}

	a.scaleBackward(cmd, &arr, a.cfg.Factor)

	return p.Print("scaled", &arr)
}
