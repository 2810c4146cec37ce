package domain

import "sort"

// SortChanges orders a batch for rendering: highest priority first (a change
// without a priority sorts after every change with one), then oldest first.
// The sort is stable, so the original relative order is the final tiebreak.
// It sorts in place and returns the slice for convenience.
func SortChanges(changes []Change) []Change {
	sort.SliceStable(changes, func(i, j int) bool {
		return Less(changes[i], changes[j])
	})
	return changes
}

// Less is the ordering relation of SortChanges, exposed so callers sorting
// wrappers around Change apply the exact same order.
func Less(a, b Change) bool {
	if c := comparePriority(a.Priority, b.Priority); c != 0 {
		return c > 0 // descending
	}
	return a.Created.Before(b.Created)
}

// comparePriority orders optional priorities: nil is lower than any explicit
// value, higher values beat lower ones.
func comparePriority(a, b *uint8) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}

// GroupByKind partitions changes into per-category buckets, preserving the
// order of the input slice within each bucket. Sorting happens once over the
// whole batch before grouping; grouping never re-sorts.
func GroupByKind(changes []Change) map[Kind][]Change {
	groups := make(map[Kind][]Change)
	for _, change := range changes {
		groups[change.Kind] = append(groups[change.Kind], change)
	}
	return groups
}
