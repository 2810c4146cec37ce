package cmd

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var bumpCmd = &cobra.Command{
	Use:   "compute-bump-level <current_version>",
	Short: "Compute the version bump the pending changes require",
	Long: `Compute the minimum semantic-version bump level required across
all pending change fragments, given the current version.

Prints exactly one of "major", "minor", or "patch" to standard output.
Fails when the changes directory holds no fragments: the command
presupposes that there is something to release.`,
	Args: cobra.ExactArgs(1),
	RunE: runComputeBumpLevel,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(bumpCmd)
}

func runComputeBumpLevel(command *cobra.Command, args []string) error {
	current, err := semver.StrictNewVersion(args[0])
	if err != nil {
		return fmt.Errorf("invalid current version %q: %w", args[0], err)
	}

	svc, _, err := buildService()
	if err != nil {
		return err
	}

	level, err := svc.ComputeBumpLevel(context.Background(), current)
	if err != nil {
		return err
	}

	fmt.Fprintln(command.OutOrStdout(), level)
	return nil
}
