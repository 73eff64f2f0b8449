package service

import (
	"context"
	"testing"

	"interviewflow/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryTrackerRepo struct {
	data     *model.TrackerData
	replaces int
}

func (m *memoryTrackerRepo) Get(_ context.Context) (*model.TrackerData, error) {
	return m.data, nil
}

func (m *memoryTrackerRepo) Replace(_ context.Context, data *model.TrackerData) error {
	m.data = data
	m.replaces++
	return nil
}

func TestBoard_SeedsDefaultOnFirstRead(t *testing.T) {
	repo := &memoryTrackerRepo{}
	svc := NewTrackerService(repo)

	data, err := svc.Board(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"wishlist", "applied", "phone", "technical", "offer", "rejected"}, data.ColumnOrder)
	assert.Len(t, data.Columns["wishlist"].Items, 2)
	assert.Equal(t, "Netflix", data.Columns["wishlist"].Items[0].Company)
	assert.Empty(t, data.Columns["offer"].Items)

	// Seed is persisted
	assert.Equal(t, 1, repo.replaces)
	require.NotNil(t, repo.data)

	// Second read does not reseed
	_, err = svc.Board(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.replaces)
}

func TestUpdate_ReplacesBoard(t *testing.T) {
	repo := &memoryTrackerRepo{}
	svc := NewTrackerService(repo)

	board := &model.TrackerData{
		Columns: map[string]model.TrackerColumn{
			"wishlist": {ID: "wishlist", Title: "Wishlist", Items: []model.JobApplication{}},
		},
		ColumnOrder: []string{"wishlist"},
	}

	got, err := svc.Update(context.Background(), board)
	require.NoError(t, err)
	assert.Same(t, board, got)
	assert.Same(t, board, repo.data)
}

func TestAddJob_DefaultsToWishlist(t *testing.T) {
	repo := &memoryTrackerRepo{}
	svc := NewTrackerService(repo)

	job := model.JobApplication{ID: "job-42", Company: "Datadog", Role: "Go Engineer", Status: "active"}
	data, err := svc.AddJob(context.Background(), job, "")
	require.NoError(t, err)

	items := data.Columns["wishlist"].Items
	require.Len(t, items, 3)
	assert.Equal(t, "Datadog", items[2].Company)
}

func TestAddJob_NamedColumn(t *testing.T) {
	repo := &memoryTrackerRepo{}
	svc := NewTrackerService(repo)

	job := model.JobApplication{ID: "job-43", Company: "Fly.io", Role: "Platform Engineer"}
	data, err := svc.AddJob(context.Background(), job, "offer")
	require.NoError(t, err)

	require.Len(t, data.Columns["offer"].Items, 1)
	assert.Equal(t, "Fly.io", data.Columns["offer"].Items[0].Company)
}

func TestAddJob_UnknownColumnLeavesBoardUnchanged(t *testing.T) {
	repo := &memoryTrackerRepo{}
	svc := NewTrackerService(repo)

	job := model.JobApplication{ID: "job-44", Company: "Acme"}
	data, err := svc.AddJob(context.Background(), job, "no-such-column")
	require.NoError(t, err)

	total := 0
	for _, column := range data.Columns {
		total += len(column.Items)
	}
	assert.Equal(t, 7, total) // only the seed cards
}
