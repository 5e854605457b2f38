// Command omegafan is a thin front end over the library: it inspects fan
// files in the external tool's text format, exports ideals in the
// declaration block format, and runs the built-in worked example through
// the fan filter with the reference engines.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/bridge"
	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/fanfilter"
	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/polyring"
	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/ratmat"
	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/toyengine"
)

var (
	logger *zap.Logger

	verbose     bool
	negateRays  bool
	star        bool
	outside     bool
	workers     int
	coneTimeout time.Duration
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "omegafan",
		Short:        "Filter secondary fans for initial-ideal agreement",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			built, err := config.Build()
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			logger = built
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	fanCmd := &cobra.Command{
		Use:   "fan <file>",
		Short: "Parse a fan file and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE:  runFan,
	}
	fanCmd.Flags().BoolVar(&negateRays, "negate", false, "negate ray coordinates on input")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Emit the worked example's ring/ideal declaration block",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in quadric example through the fan filter",
		Args:  cobra.NoArgs,
		RunE:  runDemo,
	}
	demoCmd.Flags().BoolVar(&star, "star", false, "run the upper-bound (omega-star) variant")
	demoCmd.Flags().BoolVar(&outside, "outside", false, "report the excluded cones instead of the surviving fan")
	demoCmd.Flags().IntVar(&workers, "workers", 0, "concurrent cone tests (0 = all CPUs)")
	demoCmd.Flags().DurationVar(&coneTimeout, "cone-timeout", 0, "wall-time bound per cone (0 = none)")

	root.AddCommand(fanCmd, exportCmd, demoCmd)
	return root
}

func runFan(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()
	data, err := bridge.ParseFan(file, negateRays)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "rays: %d (ambient dimension %d)\n", data.Rays.NumRows(), data.Rays.NumCols())
	fmt.Fprintf(cmd.OutOrStdout(), "cones: %d\n", len(data.Cones))
	fmt.Fprintf(cmd.OutOrStdout(), "cone orbits: %d\n", len(data.ConeOrbits))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	ideal, err := exampleIdeal()
	if err != nil {
		return err
	}
	return bridge.WriteIdeal(cmd.OutOrStdout(), ideal)
}

func runDemo(cmd *cobra.Command, args []string) error {
	defer logger.Sync() //nolint:errcheck

	ideal, err := exampleIdeal()
	if err != nil {
		return err
	}
	sec, err := exampleSecondaryFan()
	if err != nil {
		return err
	}
	sym := toyengine.NewSymbolic()
	poly := toyengine.NewPolyhedral()
	opts := &fanfilter.Options{
		Workers:     workers,
		ConeTimeout: coneTimeout,
		Logger:      logger,
	}
	variant := fanfilter.Omega
	if star {
		variant = fanfilter.OmegaStar
	}
	result, err := fanfilter.Filter(
		context.Background(), sym, poly, ideal, nil, sec, variant, outside, opts,
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ideal: %s\n", ideal.String())
	for _, report := range result.Reports {
		fmt.Fprintf(out, "cone %d: weight %v inside=%v\n", report.Cone, report.Weight, report.Inside)
	}
	if outside {
		excluded := make([][]int, 0, len(result.Cones))
		for i := range result.Cones {
			var rayIndices []int
			for j, member := range result.Cones[i] {
				if member {
					rayIndices = append(rayIndices, j)
				}
			}
			excluded = append(excluded, rayIndices)
		}
		return bridge.WriteCones(out, excluded)
	}
	fmt.Fprintf(out, "surviving cones: %d of %d\n", result.Fan.NumCones(), len(result.Reports))
	return nil
}

// exampleIdeal returns the quadric x1*x4 - x2*x3 on four ordered
// variables, the smallest example with a nontrivial secondary fan.
func exampleIdeal() (*polyring.Ideal, error) {
	ring, err := polyring.NewRing([]string{"x1", "x2", "x3", "x4"})
	if err != nil {
		return nil, err
	}
	quadric, err := polyring.NewPolynomial(ring, []polyring.Term{
		polyring.NewTermInt64(1, []int{1, 0, 0, 1}),
		polyring.NewTermInt64(-1, []int{0, 1, 1, 0}),
	})
	if err != nil {
		return nil, err
	}
	return polyring.NewIdeal(ring, []*polyring.Polynomial{quadric})
}

// exampleSecondaryFan returns the secondary fan of the quadric's point
// configuration as a raw ray/incidence pair: two rays on either side of
// the configuration's single circuit, plus the lineality-space cone.
func exampleSecondaryFan() (fanfilter.SecondaryInput, error) {
	rays, err := ratmat.NewFromInt64Array([]int64{
		1, 0, 0, 1,
		0, 1, 1, 0,
	}, 2, 4)
	if err != nil {
		return fanfilter.SecondaryInput{}, err
	}
	cones := [][]bool{
		{false, false},
		{true, false},
		{false, true},
	}
	return fanfilter.FromPairs(rays, cones), nil
}
