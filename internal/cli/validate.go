package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invlab/invlab/internal/demo"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <profile.yaml>",
		Short: "Validate a run profile without executing it",
		Long: `Load a YAML run profile, reject unknown fields, and check that
every field is in range. Nothing is executed.

Example:
  invlab validate profiles/smoke.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format: rootOpts.Format,
				Writer: cmd.OutOrStdout(),
			}

			profile, err := demo.LoadProfile(args[0])
			if err != nil {
				_ = formatter.Error(err.Error())
				return WrapExitError(ExitCommandError, "invalid profile", err)
			}

			return formatter.Success(fmt.Sprintf(
				"profile %q OK (items=%d, seed=%d)",
				profile.Name, profile.Items, profile.Seed,
			))
		},
	}

	return cmd
}
