package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskman/internal/model"
)

func TestListForDateMatchesCalendarDayOnly(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)

	category := r.mustCategory(t, "u1", "Work")
	task := r.mustTask(t, "u1", category.ID, "Buy milk")

	day := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	r.mustAgenda(t, "u1", task.ID, day)
	r.mustAgenda(t, "u1", task.ID, day.AddDate(0, 0, 1))

	items, err := r.agenda.ListForDate(ctx, "u1", day.Add(15*time.Hour))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, day.Equal(items[0].PlannedDate))
	assert.Equal(t, "Buy milk", items[0].Task.Title)
}

func TestListForDateIsolatesTenants(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)

	c1 := r.mustCategory(t, "u1", "Work")
	t1 := r.mustTask(t, "u1", c1.ID, "Mine")
	c2 := r.mustCategory(t, "u2", "Work")
	t2 := r.mustTask(t, "u2", c2.ID, "Theirs")

	day := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	r.mustAgenda(t, "u1", t1.ID, day)
	r.mustAgenda(t, "u2", t2.ID, day)

	items, err := r.agenda.ListForDate(ctx, "u1", day)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "u1", items[0].AccountID)
}

func TestAgendaSoftDelete(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)

	category := r.mustCategory(t, "u1", "Work")
	task := r.mustTask(t, "u1", category.ID, "Buy milk")
	item := r.mustAgenda(t, "u1", task.ID, time.Now())

	found, err := r.agenda.SoftDelete(ctx, "u1", item.ID)
	require.NoError(t, err)
	assert.True(t, found)

	// Second delete misses: the row is already hidden.
	found, err = r.agenda.SoftDelete(ctx, "u1", item.ID)
	require.NoError(t, err)
	assert.False(t, found)

	var raw model.AgendaItem
	require.NoError(t, r.db.First(&raw, item.ID).Error)
	assert.True(t, raw.IsDeleted)
}

func TestCountForRangeInclusive(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)

	category := r.mustCategory(t, "u1", "Work")
	task := r.mustTask(t, "u1", category.ID, "Buy milk")

	day := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	r.mustAgenda(t, "u1", task.ID, day)
	r.mustAgenda(t, "u1", task.ID, day.AddDate(0, 0, 7))
	r.mustAgenda(t, "u1", task.ID, day.AddDate(0, 0, 8))

	n, err := r.agenda.CountForRange(ctx, "u1", day, day.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}
