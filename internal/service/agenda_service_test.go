package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskman/internal/apperr"
)

func TestPlanNormalizesToDateOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	account := f.register(t, "alice@example.com")
	category := firstCategory(t, f, account.ID)
	task, err := f.tasks.Create(ctx, account.ID, category.ID, "Buy milk", "")
	require.NoError(t, err)

	noon := time.Date(2024, time.June, 1, 12, 34, 56, 0, time.Local)
	item, err := f.agenda.Plan(ctx, account.ID, task.ID, noon)
	require.NoError(t, err)

	want := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, want.Equal(item.PlannedDate))

	items, err := f.agenda.ListForDate(ctx, account.ID, noon)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Buy milk", items[0].Task.Title)
}

func TestPlanForeignTaskIsNotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	alice := f.register(t, "alice@example.com")
	bob := f.register(t, "bob@example.com")
	bobCategory := firstCategory(t, f, bob.ID)
	task, err := f.tasks.Create(ctx, bob.ID, bobCategory.ID, "Theirs", "")
	require.NoError(t, err)

	_, err = f.agenda.Plan(ctx, alice.ID, task.ID, time.Now())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRescheduleMovesEntry(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	account := f.register(t, "alice@example.com")
	category := firstCategory(t, f, account.ID)
	task, err := f.tasks.Create(ctx, account.ID, category.ID, "Buy milk", "")
	require.NoError(t, err)

	day1 := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 3)

	item, err := f.agenda.Plan(ctx, account.ID, task.ID, day1)
	require.NoError(t, err)
	require.NoError(t, f.agenda.Reschedule(ctx, account.ID, item.ID, day2))

	items, err := f.agenda.ListForDate(ctx, account.ID, day1)
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = f.agenda.ListForDate(ctx, account.ID, day2)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

// The full scenario from end to end: category "Work", task "Buy milk"
// planned on 2024-06-01. Deleting the category empties both the task and
// agenda views while the raw rows survive as deleted.
func TestCategoryDeleteCascadesToAgendaView(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	account := f.register(t, "u1@example.com")
	category, err := f.categories.Create(ctx, account.ID, "Errands")
	require.NoError(t, err)
	task, err := f.tasks.Create(ctx, account.ID, category.ID, "Buy milk", "")
	require.NoError(t, err)

	day := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	_, err = f.agenda.Plan(ctx, account.ID, task.ID, day)
	require.NoError(t, err)

	require.NoError(t, f.categories.SoftDelete(ctx, account.ID, category.ID))

	_, err = f.tasks.Get(ctx, account.ID, task.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	items, err := f.agenda.ListForDate(ctx, account.ID, day)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAgendaSoftDeleteSingleEntry(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	account := f.register(t, "alice@example.com")
	category := firstCategory(t, f, account.ID)
	task, err := f.tasks.Create(ctx, account.ID, category.ID, "Buy milk", "")
	require.NoError(t, err)

	day := time.Now()
	item, err := f.agenda.Plan(ctx, account.ID, task.ID, day)
	require.NoError(t, err)

	require.NoError(t, f.agenda.SoftDelete(ctx, account.ID, item.ID))

	items, err := f.agenda.ListForDate(ctx, account.ID, day)
	require.NoError(t, err)
	assert.Empty(t, items)

	// The task itself is untouched.
	got, err := f.tasks.Get(ctx, account.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got.Title)
}
