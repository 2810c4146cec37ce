package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/autorelease/domain"
)

// ChangeBuilder helps create test changes with a fluent interface.
type ChangeBuilder struct {
	*testkit.BaseBuilder
	kind     domain.Kind
	breaking *bool
	priority *uint8
	created  time.Time
	content  string
}

// NewChangeBuilder creates a new change builder with sensible defaults.
func NewChangeBuilder() *ChangeBuilder {
	return &ChangeBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		kind:        domain.KindAdded,
		created:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		content:     "test change",
	}
}

// WithKind sets the change kind.
func (b *ChangeBuilder) WithKind(kind domain.Kind) *ChangeBuilder {
	b.kind = kind
	return b
}

// WithBreaking sets an explicit breaking flag.
func (b *ChangeBuilder) WithBreaking(breaking bool) *ChangeBuilder {
	b.breaking = &breaking
	return b
}

// WithoutBreaking clears the breaking flag (unspecified).
func (b *ChangeBuilder) WithoutBreaking() *ChangeBuilder {
	b.breaking = nil
	return b
}

// WithPriority sets an explicit priority.
func (b *ChangeBuilder) WithPriority(priority uint8) *ChangeBuilder {
	b.priority = &priority
	return b
}

// WithCreated sets the creation instant.
func (b *ChangeBuilder) WithCreated(created time.Time) *ChangeBuilder {
	b.created = created
	return b
}

// WithContent sets the changelog line.
func (b *ChangeBuilder) WithContent(content string) *ChangeBuilder {
	b.content = content
	return b
}

// Build creates the change (satisfies testkit.Builder interface).
func (b *ChangeBuilder) Build() interface{} {
	return b.BuildChange()
}

// BuildChange creates the change with a concrete return type.
func (b *ChangeBuilder) BuildChange() domain.Change {
	return domain.Change{
		Kind:     b.kind,
		Breaking: b.breaking,
		Priority: b.priority,
		Created:  b.created,
		Content:  b.content,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ChangeBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.kind = domain.KindAdded
	b.breaking = nil
	b.priority = nil
	b.created = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	b.content = "test change"
	return b
}

// Clone creates a deep copy of the ChangeBuilder.
func (b *ChangeBuilder) Clone() testkit.Builder {
	clone := &ChangeBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		kind:        b.kind,
		created:     b.created,
		content:     b.content,
	}
	if b.breaking != nil {
		breaking := *b.breaking
		clone.breaking = &breaking
	}
	if b.priority != nil {
		priority := *b.priority
		clone.priority = &priority
	}
	return clone
}
