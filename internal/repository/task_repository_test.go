package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskman/internal/model"
	"taskman/internal/repository"
)

func TestListByCategoryStatusFilter(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)

	category := r.mustCategory(t, "u1", "Work")
	open := r.mustTask(t, "u1", category.ID, "Open task")
	done := r.mustTask(t, "u1", category.ID, "Done task")
	done.IsCompleted = true
	require.NoError(t, r.tasks.Save(ctx, done))

	all, err := r.tasks.ListByCategory(ctx, "u1", category.ID, repository.StatusAll)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Open tasks sort before completed ones.
	assert.Equal(t, open.ID, all[0].ID)

	onlyOpen, err := r.tasks.ListByCategory(ctx, "u1", category.ID, repository.StatusOpen)
	require.NoError(t, err)
	require.Len(t, onlyOpen, 1)
	assert.Equal(t, open.ID, onlyOpen[0].ID)

	onlyDone, err := r.tasks.ListByCategory(ctx, "u1", category.ID, repository.StatusCompleted)
	require.NoError(t, err)
	require.Len(t, onlyDone, 1)
	assert.Equal(t, done.ID, onlyDone[0].ID)
}

func TestTaskSoftDeleteCascadeMarksAgenda(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)

	category := r.mustCategory(t, "u1", "Work")
	task := r.mustTask(t, "u1", category.ID, "Call dentist")
	item := r.mustAgenda(t, "u1", task.ID, time.Now())

	found, err := r.tasks.SoftDeleteCascade(ctx, "u1", task.ID)
	require.NoError(t, err)
	require.True(t, found)

	var rawTask model.TaskItem
	require.NoError(t, r.db.First(&rawTask, task.ID).Error)
	assert.True(t, rawTask.IsDeleted)

	var rawAgenda model.AgendaItem
	require.NoError(t, r.db.First(&rawAgenda, item.ID).Error)
	assert.True(t, rawAgenda.IsDeleted)
}

func TestTaskSoftDeleteCascadeWithoutAgendaSucceeds(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)

	category := r.mustCategory(t, "u1", "Work")
	task := r.mustTask(t, "u1", category.ID, "Lonely task")

	found, err := r.tasks.SoftDeleteCascade(ctx, "u1", task.ID)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestTaskSoftDeleteCascadeForeignTaskIsNoop(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)

	category := r.mustCategory(t, "u2", "Theirs")
	task := r.mustTask(t, "u2", category.ID, "Their task")

	found, err := r.tasks.SoftDeleteCascade(ctx, "u1", task.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCountByOwnerCompletionSplit(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)

	category := r.mustCategory(t, "u1", "Work")
	r.mustTask(t, "u1", category.ID, "a")
	done := r.mustTask(t, "u1", category.ID, "b")
	done.IsCompleted = true
	require.NoError(t, r.tasks.Save(ctx, done))

	total, err := r.tasks.CountByOwner(ctx, "u1", nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	completed := true
	n, err := r.tasks.CountByOwner(ctx, "u1", &completed)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
