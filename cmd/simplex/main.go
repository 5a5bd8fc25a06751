// SPDX-License-Identifier: MIT

// Command simplex solves one hardcoded linear program with the tabular
// simplex method and prints every intermediate tableau followed by the
// terminal status.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/simplex"
	"github.com/katalvlaran/simplex/render"
	"github.com/katalvlaran/simplex/tableau"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		annotated bool
		maxPivots int
	)

	cmd := &cobra.Command{
		Use:   "simplex",
		Short: "solve a demo LP with the tabular simplex method",
		Long: `simplex runs the tabular (Dantzig) simplex method on a built-in example
problem in canonical tableau form and prints each iteration's tableau,
followed by the terminal status (optimal, multiple optima, or unbounded).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, annotated, maxPivots)
		},
	}

	cmd.Flags().BoolVar(&annotated, "annotated", false,
		"append the solution vector and next-pivot annotation to each tableau")
	cmd.Flags().IntVar(&maxPivots, "max-pivots", 0,
		"abort after this many pivots (0 = unlimited)")

	return cmd
}

func run(cmd *cobra.Command, annotated bool, maxPivots int) error {
	// maximize 5x1 + 6x2 - 7
	// subject to 10x1 + 10x2 <= 40, 10x1 + 20x2 <= 60, x1 <= 3
	// already in canonical form with the slack identity in columns 3..5.
	t, err := tableau.New([][]float64{
		{1, -5, -6, 0, 0, 0, -7},
		{0, 10, 10, 1, 0, 0, 40},
		{0, 10, 20, 0, 1, 0, 60},
		{0, 1, 0, 0, 0, 1, 3},
	})
	if err != nil {
		return err
	}

	opts := simplex.DefaultOptions()
	opts.MaxPivots = maxPivots

	result, tableaus, err := simplex.Optimize(t, &opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for index, snapshot := range tableaus {
		fmt.Fprintf(out, "Tableau %d:\n", index+1)
		if annotated {
			fmt.Fprint(out, render.Annotated(snapshot))
		} else {
			fmt.Fprint(out, render.Grid(snapshot))
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Status: %s\n", result)

	return nil
}
