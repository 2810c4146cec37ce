package cmd

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	configPath string
	changesDir string
	provSource string
	verbose    bool
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var rootCmd = &cobra.Command{
	Use:   "autorelease",
	Short: "Semantic-version bump calculator and changelog compiler",
	Long: `A build-time release tool that aggregates pending change fragments
and derives what the next release needs.

Each fragment is one file under the changes directory, holding YAML
frontmatter (kind, optional breaking flag, optional priority) followed
by a free-text changelog line. From the full set of fragments the tool
computes the minimum semantic-version bump the release requires, or
compiles the corresponding changelog section as markdown.

Intended to be driven by CI or release scripts; all output goes to
standard output, diagnostics to standard error.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetLevel(logger.DebugLevel)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().StringVar(&changesDir, "changes-dir", "",
		"Directory holding the pending change fragments (default: .changes)")
	rootCmd.PersistentFlags().StringVar(&provSource, "provenance", "",
		"Source of fragment creation times (git, mtime)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
}
