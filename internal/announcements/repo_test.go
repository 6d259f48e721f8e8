package announcements

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/red-stick-digital/brga-backend/pkg/db/models"
)

func setupAnnouncementsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS announcements (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  body TEXT NOT NULL,
  author_id TEXT NOT NULL,
  published_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func seedAnnouncement(t *testing.T, db *gorm.DB, title string, createdAt time.Time, published bool) models.Announcement {
	t.Helper()

	row := models.Announcement{
		ID:        uuid.New(),
		Title:     title,
		Body:      "body",
		AuthorID:  uuid.New(),
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if published {
		at := createdAt
		row.PublishedAt = &at
	}
	require.NoError(t, db.Create(&row).Error)
	return row
}

func TestAnnouncementsListPaginates(t *testing.T) {
	db := setupAnnouncementsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	oldest := seedAnnouncement(t, db, "oldest", base, true)
	middle := seedAnnouncement(t, db, "middle", base.Add(time.Hour), true)
	newest := seedAnnouncement(t, db, "newest", base.Add(2*time.Hour), true)

	rows, cursor, err := repo.List(ctx, listParams{Limit: 2, PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, cursor)
	assert.Equal(t, newest.ID, rows[0].ID)
	assert.Equal(t, middle.ID, rows[1].ID)

	rows, cursor, err = repo.List(ctx, listParams{Limit: 2, PublishedOnly: true, Cursor: cursor})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, cursor)
	assert.Equal(t, oldest.ID, rows[0].ID)
}

func TestAnnouncementsListFiltersUnpublished(t *testing.T) {
	db := setupAnnouncementsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seedAnnouncement(t, db, "draft", base, false)
	published := seedAnnouncement(t, db, "live", base.Add(time.Minute), true)

	rows, _, err := repo.List(ctx, listParams{PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, published.ID, rows[0].ID)

	rows, _, err = repo.List(ctx, listParams{})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestAnnouncementsPublishOnlyOnce(t *testing.T) {
	db := setupAnnouncementsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	draft := seedAnnouncement(t, db, "draft", time.Now().UTC(), false)

	ok, err := repo.Publish(ctx, draft.ID, time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Publish(ctx, draft.ID, time.Now().UTC())
	require.NoError(t, err)
	assert.False(t, ok)

	stored, err := repo.FindByID(ctx, draft.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.PublishedAt)
}

func TestAnnouncementsDelete(t *testing.T) {
	db := setupAnnouncementsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	row := seedAnnouncement(t, db, "gone", time.Now().UTC(), true)

	ok, err := repo.Delete(ctx, row.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, row.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
