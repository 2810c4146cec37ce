package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the pending change fragments",
	Long: `List every pending change fragment with its kind, breaking flag,
priority, and creation date, in the order a compiled changelog would
render them.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(command *cobra.Command, _ []string) error {
	svc, _, err := buildService()
	if err != nil {
		return err
	}

	pending, err := svc.ListPending(context.Background())
	if err != nil {
		return err
	}

	if len(pending) == 0 {
		fmt.Fprintln(command.OutOrStdout(), "No pending changes.")
		return nil
	}

	w := tabwriter.NewWriter(command.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tBREAKING\tPRIORITY\tCREATED\tFILE")
	for _, p := range pending {
		fmt.Fprintf(
			w, "%s\t%s\t%s\t%s\t%s\n",
			p.Change.Kind,
			formatBreaking(p.Change.Breaking),
			formatPriority(p.Change.Priority),
			p.Change.Created.UTC().Format("2006-01-02"),
			p.Path,
		)
	}
	return w.Flush()
}

func formatBreaking(breaking *bool) string {
	if breaking == nil {
		return "-"
	}
	return fmt.Sprintf("%t", *breaking)
}

func formatPriority(priority *uint8) string {
	if priority == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *priority)
}
