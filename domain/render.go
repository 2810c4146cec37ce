package domain

import (
	"fmt"
	"io"
	"time"
)

// Clock supplies the current instant. The renderer takes it as an injected
// capability so the heading date is controllable in tests.
type Clock func() time.Time

// WriteChangelogSection renders one changelog section in markdown: a heading
// with the new version and the calendar date, then one subsection per
// non-empty category in CategoryOrder, each listing its changes as bullets.
//
// The changes are sorted once, over the whole batch, before grouping.
func WriteChangelogSection(w io.Writer, version string, now Clock, changes []Change) error {
	sorted := make([]Change, len(changes))
	copy(sorted, changes)
	SortChanges(sorted)

	date := now().UTC()
	if _, err := fmt.Fprintf(
		w, "## %s - %d-%d-%d\n\n",
		version, date.Year(), int(date.Month()), date.Day(),
	); err != nil {
		return fmt.Errorf("failed to write changelog heading: %w", err)
	}

	groups := GroupByKind(sorted)
	for _, kind := range CategoryOrder {
		bucket := groups[kind]
		if len(bucket) == 0 {
			continue
		}

		if _, err := fmt.Fprintf(w, "### %s\n\n", kind.Header()); err != nil {
			return fmt.Errorf("failed to write %s heading: %w", kind.Header(), err)
		}
		for _, change := range bucket {
			if _, err := fmt.Fprintf(w, "- %s\n", change.Content); err != nil {
				return fmt.Errorf("failed to write changelog entry: %w", err)
			}
		}
	}

	return nil
}
