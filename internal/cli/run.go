package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/invlab/invlab/internal/demo"
	"github.com/invlab/invlab/internal/inventory"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Items    int
	Seed     int64
	Profile  string
	NoReport bool

	// Tokens allows overriding the run token source (for testing).
	// If nil, the runner defaults to UUIDv7 tokens.
	Tokens demo.TokenSource
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute one demo pass",
		Long: `Execute exactly one demo pass: generate a synthetic inventory,
run a linear search, a binary search hit and miss, validate the whole
store through binary search, shuffle, quicksort by value, and print
the final order.

The pass is deterministic for a given seed. Flags override values
from --profile when both are given.

Example:
  invlab run --items 50 --seed 42
  invlab run --profile profiles/smoke.yaml --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Items, "items", demo.DefaultItems, "number of items to generate")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 1, "random seed for generation, shuffling, and sampling")
	cmd.Flags().StringVar(&opts.Profile, "profile", "", "path to a YAML run profile")
	cmd.Flags().BoolVar(&opts.NoReport, "no-report", false, "suppress the final-order block")

	return cmd
}

func runDemo(opts *RunOptions, cmd *cobra.Command) error {
	// Configure logging based on verbose flag. Diagnostics go to
	// stderr so the stdout transcript stays clean.
	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	}))

	profile := demo.DefaultProfile()
	if opts.Profile != "" {
		p, err := demo.LoadProfile(opts.Profile)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load profile", err)
		}
		profile = p
	}

	// Flags override profile values only when set explicitly.
	if cmd.Flags().Changed("items") {
		profile.Items = opts.Items
	}
	if cmd.Flags().Changed("seed") {
		profile.Seed = opts.Seed
	}
	if opts.NoReport {
		profile.SkipReport = true
	}

	// Catch bad flag/profile combinations before the run starts.
	if err := profile.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid profile", err)
	}

	runner := &demo.Runner{
		Log:    logger,
		Out:    cmd.OutOrStdout(),
		Tokens: opts.Tokens,
	}
	if opts.Format == "json" {
		// JSON mode emits the report envelope instead of the transcript.
		runner.Out = io.Discard
	}

	report, err := runner.Run(profile)
	if err != nil {
		if inventory.IsInvalidCount(err) {
			return WrapExitError(ExitCommandError, "invalid item count", err)
		}
		return WrapExitError(ExitFailure, "demo run failed", err)
	}

	if opts.Format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return WrapExitError(ExitFailure, "failed to encode report", err)
		}
	}

	if n := len(report.Warnings); n > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d validation mismatches", n))
	}
	return nil
}
