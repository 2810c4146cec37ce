package cmd

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var allowEmpty bool

//nolint:gochecknoglobals // required by cobra CLI pattern
var changelogCmd = &cobra.Command{
	Use:   "compile-changelog <new_version>",
	Short: "Compile the pending changes into a changelog section",
	Long: `Compile every pending change fragment into one markdown changelog
section for the given new version.

The section heading carries the new version and the current date.
Changes are ordered by author-assigned priority (highest first, then
oldest first) and grouped into the fixed category order: Added, Fixed,
Changed, Removed, Deprecated, Security. Categories without changes are
omitted.

By default an empty changes directory is an error, matching
compute-bump-level; pass --allow-empty to render just the heading.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompileChangelog,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	changelogCmd.Flags().BoolVar(&allowEmpty, "allow-empty", false,
		"Render a heading-only section when no fragments are pending")
	rootCmd.AddCommand(changelogCmd)
}

func runCompileChangelog(command *cobra.Command, args []string) error {
	newVersion, err := semver.StrictNewVersion(args[0])
	if err != nil {
		return fmt.Errorf("invalid new version %q: %w", args[0], err)
	}

	svc, cfg, err := buildService()
	if err != nil {
		return err
	}

	return svc.CompileChangelog(
		context.Background(),
		command.OutOrStdout(),
		newVersion,
		allowEmpty || cfg.AllowEmptyChangelog,
	)
}
