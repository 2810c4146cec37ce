package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/autorelease/domain"
	"github.com/rios0rios0/autorelease/test/entitybuilders"
)

func TestSortChanges(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should sort by descending priority then ascending age with none last", func(t *testing.T) {
		t.Parallel()

		// given
		changes := []domain.Change{
			entitybuilders.NewChangeBuilder().
				WithPriority(1).WithCreated(base.Add(-10 * time.Second)).WithContent("A").BuildChange(),
			entitybuilders.NewChangeBuilder().
				WithCreated(base).WithContent("B").BuildChange(),
			entitybuilders.NewChangeBuilder().
				WithCreated(base.Add(-30 * time.Second)).WithContent("C").BuildChange(),
			entitybuilders.NewChangeBuilder().
				WithPriority(5).WithCreated(base).WithContent("D").BuildChange(),
			entitybuilders.NewChangeBuilder().
				WithPriority(5).WithCreated(base.Add(-10 * time.Second)).WithContent("E").BuildChange(),
		}

		// when
		domain.SortChanges(changes)

		// then
		assert.Equal(t, []string{"E", "D", "A", "C", "B"}, contents(changes))
	})

	t.Run("should be idempotent", func(t *testing.T) {
		t.Parallel()

		// given
		changes := []domain.Change{
			entitybuilders.NewChangeBuilder().WithCreated(base).WithContent("newest").BuildChange(),
			entitybuilders.NewChangeBuilder().WithPriority(2).WithCreated(base).WithContent("second").BuildChange(),
			entitybuilders.NewChangeBuilder().WithPriority(7).WithCreated(base).WithContent("first").BuildChange(),
		}

		// when
		domain.SortChanges(changes)
		once := contents(changes)
		domain.SortChanges(changes)

		// then
		assert.Equal(t, once, contents(changes))
	})

	t.Run("should preserve original relative order on fully equal keys", func(t *testing.T) {
		t.Parallel()

		// given
		changes := []domain.Change{
			entitybuilders.NewChangeBuilder().WithPriority(3).WithCreated(base).WithContent("first").BuildChange(),
			entitybuilders.NewChangeBuilder().WithPriority(3).WithCreated(base).WithContent("second").BuildChange(),
			entitybuilders.NewChangeBuilder().WithPriority(3).WithCreated(base).WithContent("third").BuildChange(),
		}

		// when
		domain.SortChanges(changes)

		// then
		assert.Equal(t, []string{"first", "second", "third"}, contents(changes))
	})
}

func TestGroupByKind(t *testing.T) {
	t.Parallel()

	t.Run("should place every change in exactly one bucket", func(t *testing.T) {
		t.Parallel()

		// given
		changes := []domain.Change{
			entitybuilders.NewChangeBuilder().WithKind(domain.KindAdded).WithContent("a1").BuildChange(),
			entitybuilders.NewChangeBuilder().WithKind(domain.KindFixed).WithContent("f1").BuildChange(),
			entitybuilders.NewChangeBuilder().WithKind(domain.KindAdded).WithContent("a2").BuildChange(),
		}

		// when
		groups := domain.GroupByKind(changes)

		// then
		total := 0
		for _, bucket := range groups {
			total += len(bucket)
		}
		assert.Equal(t, len(changes), total)
		assert.Equal(t, []string{"a1", "a2"}, contents(groups[domain.KindAdded]))
		assert.Equal(t, []string{"f1"}, contents(groups[domain.KindFixed]))
	})

	t.Run("should create no bucket for absent kinds", func(t *testing.T) {
		t.Parallel()

		// given
		changes := []domain.Change{
			entitybuilders.NewChangeBuilder().WithKind(domain.KindSecurity).BuildChange(),
		}

		// when
		groups := domain.GroupByKind(changes)

		// then
		assert.Len(t, groups, 1)
		assert.NotContains(t, groups, domain.KindAdded)
	})

	t.Run("should keep identical duplicates independent", func(t *testing.T) {
		t.Parallel()

		// given
		duplicate := entitybuilders.NewChangeBuilder().WithContent("same line").BuildChange()
		changes := []domain.Change{duplicate, duplicate}

		// when
		groups := domain.GroupByKind(changes)

		// then
		assert.Len(t, groups[domain.KindAdded], 2)
	})
}

func contents(changes []domain.Change) []string {
	result := make([]string, 0, len(changes))
	for _, change := range changes {
		result = append(result, change.Content)
	}
	return result
}
