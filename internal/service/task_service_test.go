package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskman/internal/apperr"
	"taskman/internal/model"
	"taskman/internal/repository"
)

// firstCategory returns one of the account's default categories.
func firstCategory(t *testing.T, f *fixture, accountID string) model.Category {
	t.Helper()
	categories, err := f.categories.List(context.Background(), accountID)
	require.NoError(t, err)
	require.NotEmpty(t, categories)
	return categories[0]
}

func TestCreateTaskUnderOwnCategory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	account := f.register(t, "alice@example.com")
	category := firstCategory(t, f, account.ID)

	task, err := f.tasks.Create(ctx, account.ID, category.ID, "Buy milk", "2 liters")
	require.NoError(t, err)
	assert.Equal(t, account.ID, task.AccountID)
	assert.Equal(t, category.ID, task.CategoryID)
	assert.False(t, task.IsCompleted)
}

func TestCreateTaskUnderForeignCategoryIsNotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	alice := f.register(t, "alice@example.com")
	bob := f.register(t, "bob@example.com")
	bobCategory := firstCategory(t, f, bob.ID)

	_, err := f.tasks.Create(ctx, alice.ID, bobCategory.ID, "Sneaky", "")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateTaskRequiresTitle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	account := f.register(t, "alice@example.com")
	category := firstCategory(t, f, account.ID)

	_, err := f.tasks.Create(ctx, account.ID, category.ID, "   ", "")
	assert.ErrorIs(t, err, apperr.ErrInvalidOperation)
}

func TestUpdateAndCompleteTask(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	account := f.register(t, "alice@example.com")
	category := firstCategory(t, f, account.ID)
	task, err := f.tasks.Create(ctx, account.ID, category.ID, "Draft", "")
	require.NoError(t, err)

	require.NoError(t, f.tasks.Update(ctx, account.ID, task.ID, "Final", "polished"))
	require.NoError(t, f.tasks.SetCompleted(ctx, account.ID, task.ID, true))

	got, err := f.tasks.Get(ctx, account.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, "polished", got.Description)
	assert.True(t, got.IsCompleted)
}

func TestGetForeignTaskIsNotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	alice := f.register(t, "alice@example.com")
	bob := f.register(t, "bob@example.com")
	bobCategory := firstCategory(t, f, bob.ID)
	task, err := f.tasks.Create(ctx, bob.ID, bobCategory.ID, "Theirs", "")
	require.NoError(t, err)

	_, err = f.tasks.Get(ctx, alice.ID, task.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSoftDeleteTaskHidesItFromListing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	account := f.register(t, "alice@example.com")
	category := firstCategory(t, f, account.ID)
	task, err := f.tasks.Create(ctx, account.ID, category.ID, "Ephemeral", "")
	require.NoError(t, err)

	require.NoError(t, f.tasks.SoftDelete(ctx, account.ID, task.ID))

	tasks, err := f.tasks.List(ctx, account.ID, category.ID, repository.StatusAll)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	err = f.tasks.SoftDelete(ctx, account.ID, task.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListForUnknownActorIsEmpty(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	tasks, err := f.tasks.List(ctx, "ghost", 1, repository.StatusAll)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
