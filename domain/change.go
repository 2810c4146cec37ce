package domain

import (
	"fmt"
	"time"
)

// Kind classifies a pending change, following the Keep-a-Changelog categories.
type Kind string

const (
	KindAdded      Kind = "added"
	KindFixed      Kind = "fixed"
	KindChanged    Kind = "changed"
	KindDeprecated Kind = "deprecated"
	KindRemoved    Kind = "removed"
	KindSecurity   Kind = "security"
)

// CategoryOrder is the fixed order in which categories appear in a rendered
// changelog section. It is independent of the ordering relation applied to
// the changes themselves.
var CategoryOrder = []Kind{
	KindAdded,
	KindFixed,
	KindChanged,
	KindRemoved,
	KindDeprecated,
	KindSecurity,
}

// ParseKind validates a raw kind value from fragment metadata.
func ParseKind(raw string) (Kind, error) {
	switch k := Kind(raw); k {
	case KindAdded, KindFixed, KindChanged, KindDeprecated, KindRemoved, KindSecurity:
		return k, nil
	default:
		return "", fmt.Errorf(
			"unknown kind %q (expected added, fixed, changed, deprecated, removed, or security)",
			raw,
		)
	}
}

// Header returns the capitalized section heading for this kind.
func (k Kind) Header() string {
	switch k {
	case KindAdded:
		return "Added"
	case KindFixed:
		return "Fixed"
	case KindChanged:
		return "Changed"
	case KindDeprecated:
		return "Deprecated"
	case KindRemoved:
		return "Removed"
	case KindSecurity:
		return "Security"
	default:
		return string(k)
	}
}

// Change is one pending, not-yet-released change. It is immutable after
// construction; duplicates are permitted and rendered independently.
//
// Breaking is a tri-state: nil means the author did not specify whether the
// change is backward-incompatible. Absence and an explicit false carry
// different policy meanings, so it must never be defaulted to false.
type Change struct {
	Kind     Kind
	Breaking *bool
	Priority *uint8
	Created  time.Time
	Content  string
}

// Fragment is a parsed change file before provenance resolution: the
// structured metadata plus body, together with the path it was read from.
type Fragment struct {
	Path     string
	Kind     Kind
	Breaking *bool
	Priority *uint8
	Content  string
}
