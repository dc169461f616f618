package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pmu2022/lsms/lll"
	"github.com/pmu2022/lsms/matrix"
	"github.com/pmu2022/lsms/structure"
	"github.com/spf13/cobra"
)

func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lsms-lattice",
		Short:         "Lattice reduction and periodic distances",
		Long:          `Reduce crystal lattices with LLL and compute minimum-image distances between sites.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	addPersistentFlags(rootCmd)
	rootCmd.AddCommand(
		NewReduceCmd(),
		NewDistanceCmd(),
		NewNeighborsCmd(),
	)

	return rootCmd
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool("debug", false, "Log every reduction step to stderr")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
}

// newLogger returns a text logger on the command's stderr. Debug records are
// only emitted with --debug.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})

	return slog.New(h).With(slog.String("command", cmd.Name()))
}

// loadStructure reads path and, with --debug, traces the reduction through logger.
func loadStructure(cmd *cobra.Command, path string) (*structure.Structure, error) {
	logger := newLogger(cmd)

	var opts []lll.Option
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		opts = append(opts, lll.WithStepHook(func(s lll.Step) {
			logger.Debug("reduction step",
				slog.Int("iteration", s.Iteration),
				slog.Int("k", s.K),
				slog.String("action", s.Action.String()),
				slog.Int("updates", s.Updates),
				slog.Int("swaps", s.Swaps),
			)
		}))
	}

	s, err := structure.Load(path, opts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("structure loaded",
		slog.String("path", path),
		slog.Int("sites", s.Len()),
		slog.Float64("volume", s.Volume()),
	)

	return s, nil
}

func writeJSON(cmd *cobra.Command, data any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func formatVec(v matrix.Vec3) string {
	return fmt.Sprintf("[%.6f, %.6f, %.6f]", v[0], v[1], v[2])
}
