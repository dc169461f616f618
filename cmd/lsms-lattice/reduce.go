package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewReduceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reduce <structure.yaml>",
		Short: "LLL-reduce the lattice of a structure",
		Long: `Reduce the lattice of a structure and print the reduced basis, the
integer mapping from the original basis and its inverse.`,
		Args: cobra.ExactArgs(1),
		RunE: runReduce,
	}

	return cmd
}

func runReduce(cmd *cobra.Command, args []string) error {
	s, err := loadStructure(cmd, args[0])
	if err != nil {
		return err
	}
	cell, err := s.Cell()
	if err != nil {
		return fmt.Errorf("reduce %s: %w", args[0], err)
	}
	res := cell.Reduction()

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(cmd, map[string]any{
			"reduced": res.Reduced,
			"mapping": res.Mapping,
			"inverse": res.Inverse,
			"steps":   res.Steps,
			"swaps":   res.Swaps,
			"volume":  s.Volume(),
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "reduced:\n%s", res.Reduced)
	fmt.Fprintf(out, "mapping:\n%s", res.Mapping)
	fmt.Fprintf(out, "inverse:\n%s", res.Inverse)
	fmt.Fprintf(out, "steps: %d swaps: %d volume: %g\n", res.Steps, res.Swaps, s.Volume())
	return nil
}
