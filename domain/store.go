package domain

import "context"

// FragmentStore abstracts the durable home of pending change fragments.
// The filesystem directory of fragment files is itself the store; there is
// no other persistence.
type FragmentStore interface {
	// Load discovers and parses every pending fragment. A fragment that
	// fails to parse aborts the whole load: no partial output.
	Load(ctx context.Context) ([]Fragment, error)
}
