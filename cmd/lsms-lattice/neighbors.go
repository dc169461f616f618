package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func NewNeighborsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "neighbors <structure.yaml>",
		Short: "List minimum-image neighbours of a site",
		Long:  `List every other site within --cutoff of --site, nearest first.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runNeighbors,
	}

	cmd.Flags().Int("site", 0, "Centre site index")
	cmd.Flags().Float64("cutoff", 0, "Neighbour cutoff radius (Cartesian units)")
	_ = cmd.MarkFlagRequired("cutoff")

	return cmd
}

func runNeighbors(cmd *cobra.Command, args []string) error {
	s, err := loadStructure(cmd, args[0])
	if err != nil {
		return err
	}
	site, _ := cmd.Flags().GetInt("site")
	cutoff, _ := cmd.Flags().GetFloat64("cutoff")

	nbrs, err := s.Neighbors(site, cutoff)
	if err != nil {
		return fmt.Errorf("neighbors: %w", err)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		rows := make([]map[string]any, 0, len(nbrs))
		for _, n := range nbrs {
			rows = append(rows, map[string]any{
				"index":    n.Index,
				"species":  n.Species,
				"distance": n.Displacement.Distance,
				"vector":   n.Displacement.Vector,
			})
		}
		return writeJSON(cmd, rows)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tSPECIES\tDISTANCE\tVECTOR")
	for _, n := range nbrs {
		fmt.Fprintf(w, "%d\t%d\t%.6f\t%s\n", n.Index, n.Species, n.Displacement.Distance, formatVec(n.Displacement.Vector))
	}
	return w.Flush()
}
