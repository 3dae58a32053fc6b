package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedbackboardapp/feedback-board/internal/domain"
	"github.com/feedbackboardapp/feedback-board/internal/snapshot"
)

func setupStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "snapshots.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoad_Empty(t *testing.T) {
	s := setupStore(t)

	data, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data.Companies)
	assert.Nil(t, data.User)
}

func TestRoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	want := &snapshot.Data{
		Companies: []domain.Company{{ID: "company-1", Name: "Acme Inc.", Slug: "acme-inc", OwnerID: domain.AnonymousID, CreatedAt: now}},
		Feedbacks: []domain.Feedback{{ID: "feedback-1", Title: "Dark mode", BoardID: "board-1", Status: domain.StatusPlanned, Upvotes: []string{}, CreatedAt: now, UpdatedAt: now}},
		User:      &domain.User{ID: "u1", Name: "Jo", Email: "jo@example.com", CreatedAt: now},
	}
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.Companies, got.Companies)
	assert.Equal(t, want.Feedbacks, got.Feedbacks)
	require.NotNil(t, got.User)
	assert.Equal(t, "u1", got.User.ID)
	assert.Empty(t, got.Boards)
	assert.Empty(t, got.Comments)
}

func TestSave_NilUserRemovesRow(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	user := &domain.User{ID: "u1", Name: "Jo", Email: "jo@example.com", CreatedAt: time.Now()}
	require.NoError(t, s.Save(ctx, &snapshot.Data{User: user}))
	require.NoError(t, s.Save(ctx, &snapshot.Data{}))

	var raw []byte
	err := s.db.QueryRowContext(ctx, "SELECT value FROM snapshots WHERE key = ?", snapshot.KeyUser).Scan(&raw)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestLoad_CorruptKeyDegradesToEmpty(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	data := &snapshot.Data{
		Companies: []domain.Company{{ID: "company-1", Name: "Acme", Slug: "acme", OwnerID: domain.AnonymousID, CreatedAt: now}},
		Comments:  []domain.Comment{{ID: "comment-1", Content: "hi", FeedbackID: "feedback-1", AuthorID: "u1", AuthorName: "Jo", CreatedAt: now}},
	}
	require.NoError(t, s.Save(ctx, data))

	_, err := s.db.ExecContext(ctx, "UPDATE snapshots SET value = ? WHERE key = ?", []byte("nope"), snapshot.KeyComments)
	require.NoError(t, err)

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Comments)
	assert.Len(t, got.Companies, 1)
}
