package main

import (
	"errors"
	"fmt"

	"github.com/pmu2022/lsms/matrix"
	"github.com/pmu2022/lsms/pbc"
	"github.com/spf13/cobra"
)

var errDistanceArgs = errors.New("give either --sites i,j or both --from and --to")

func NewDistanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distance <structure.yaml>",
		Short: "Minimum-image distance between two points or sites",
		Long: `Compute the shortest periodic displacement between two fractional points
(--from, --to) or two sites of the structure (--sites).`,
		Args: cobra.ExactArgs(1),
		RunE: runDistance,
	}

	cmd.Flags().Float64Slice("from", nil, "First fractional point, e.g. 0,0,0")
	cmd.Flags().Float64Slice("to", nil, "Second fractional point, e.g. 0.9,0.9,0.9")
	cmd.Flags().IntSlice("sites", nil, "Pair of site indices, e.g. 0,1")
	cmd.MarkFlagsRequiredTogether("from", "to")
	cmd.MarkFlagsMutuallyExclusive("sites", "from")
	cmd.MarkFlagsMutuallyExclusive("sites", "to")

	return cmd
}

func runDistance(cmd *cobra.Command, args []string) error {
	s, err := loadStructure(cmd, args[0])
	if err != nil {
		return err
	}

	var d pbc.Displacement
	sites, _ := cmd.Flags().GetIntSlice("sites")
	switch {
	case len(sites) > 0:
		if len(sites) != 2 {
			return fmt.Errorf("--sites: want 2 indices, got %d", len(sites))
		}
		d, err = s.SiteDistance(sites[0], sites[1])
	case cmd.Flags().Changed("from"):
		var f1, f2 matrix.Vec3
		if f1, err = vecFlag(cmd, "from"); err != nil {
			return err
		}
		if f2, err = vecFlag(cmd, "to"); err != nil {
			return err
		}
		d, err = s.GetDistances(f1, f2)
	default:
		return errDistanceArgs
	}
	if err != nil {
		return fmt.Errorf("distance: %w", err)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(cmd, map[string]any{
			"vector":   d.Vector,
			"distance": d.Distance,
			"image":    d.Image,
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "distance: %.6f\n", d.Distance)
	fmt.Fprintf(out, "vector:   %s\n", formatVec(d.Vector))
	fmt.Fprintf(out, "image:    %v\n", d.Image)
	return nil
}

func vecFlag(cmd *cobra.Command, name string) (matrix.Vec3, error) {
	vals, err := cmd.Flags().GetFloat64Slice(name)
	if err != nil {
		return matrix.Vec3{}, err
	}
	v, err := matrix.VecFromSlice(vals)
	if err != nil {
		return matrix.Vec3{}, fmt.Errorf("--%s: %w", name, err)
	}

	return v, nil
}
