package snapshot

import (
	"context"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedbackboardapp/feedback-board/internal/domain"
)

func setupBadger(t *testing.T) *Badger {
	t.Helper()

	b, err := OpenBadger(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return b
}

func sampleData() *Data {
	now := time.Now().UTC().Truncate(time.Second)
	return &Data{
		Companies: []domain.Company{
			{ID: "company-1", Name: "Acme Inc.", Slug: "acme-inc", OwnerID: "u1", CreatedAt: now},
		},
		Boards: []domain.Board{
			{ID: "board-1", Name: "Feature Requests", Slug: "feature-requests", CompanyID: "company-1", IsPublic: true, CreatedAt: now, UpdatedAt: now},
		},
		Feedbacks: []domain.Feedback{
			{ID: "feedback-1", Title: "Dark mode", BoardID: "board-1", Status: domain.StatusUnderReview, Category: domain.CategoryFeature, AuthorID: "u1", AuthorName: "Jo", Upvotes: []string{"u1"}, CommentCount: 1, CreatedAt: now, UpdatedAt: now},
		},
		Comments: []domain.Comment{
			{ID: "comment-1", Content: "Yes please", FeedbackID: "feedback-1", AuthorID: "u1", AuthorName: "Jo", CreatedAt: now},
		},
		User: &domain.User{ID: "u1", Name: "Jo", Email: "jo@example.com", CreatedAt: now},
	}
}

func TestBadger_LoadEmpty(t *testing.T) {
	b := setupBadger(t)

	data, err := b.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data.Companies)
	assert.Empty(t, data.Boards)
	assert.Empty(t, data.Feedbacks)
	assert.Empty(t, data.Comments)
	assert.Nil(t, data.User)
}

func TestBadger_RoundTrip(t *testing.T) {
	b := setupBadger(t)
	ctx := context.Background()

	want := sampleData()
	require.NoError(t, b.Save(ctx, want))

	got, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.Companies, got.Companies)
	assert.Equal(t, want.Boards, got.Boards)
	assert.Equal(t, want.Feedbacks, got.Feedbacks)
	assert.Equal(t, want.Comments, got.Comments)
	require.NotNil(t, got.User)
	assert.Equal(t, want.User.ID, got.User.ID)
}

func TestBadger_SaveNilUserRemovesKey(t *testing.T) {
	b := setupBadger(t)
	ctx := context.Background()

	require.NoError(t, b.Save(ctx, sampleData()))

	data := sampleData()
	data.User = nil
	require.NoError(t, b.Save(ctx, data))

	// The user key must be gone from storage, not stored as null.
	err := b.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(KeyUser))
		return err
	})
	assert.ErrorIs(t, err, badger.ErrKeyNotFound)

	got, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got.User)
}

func TestBadger_CorruptKeyDegradesToEmpty(t *testing.T) {
	b := setupBadger(t)
	ctx := context.Background()

	require.NoError(t, b.Save(ctx, sampleData()))

	// Corrupt one collection; the others must survive.
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(KeyBoards), []byte("{not json"))
	})
	require.NoError(t, err)

	got, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Boards)
	assert.Len(t, got.Companies, 1)
	assert.Len(t, got.Feedbacks, 1)
	assert.Len(t, got.Comments, 1)
	assert.NotNil(t, got.User)
}

func TestMemory_RoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	want := sampleData()
	require.NoError(t, m.Save(ctx, want))

	got, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.Feedbacks, got.Feedbacks)
	require.NotNil(t, got.User)

	want.User = nil
	require.NoError(t, m.Save(ctx, want))
	got, err = m.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got.User)
}

func TestMemory_CorruptKeyDegradesToEmpty(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Save(ctx, sampleData()))
	m.SetRaw(KeyFeedbacks, []byte("]["))

	got, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Feedbacks)
	assert.Len(t, got.Companies, 1)
}
