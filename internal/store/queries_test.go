package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardBySlug(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	acme, _ := s.CreateCompany(ctx, CreateCompanyInput{Name: "Acme"})
	other, _ := s.CreateCompany(ctx, CreateCompanyInput{Name: "Other"})
	roadmap, _ := s.CreateBoard(ctx, CreateBoardInput{Name: "Roadmap", CompanyID: acme.ID})
	// Same board slug under a different company must not shadow.
	_, err := s.CreateBoard(ctx, CreateBoardInput{Name: "Roadmap", CompanyID: other.ID})
	require.NoError(t, err)

	got, ok := s.BoardBySlug("acme", "roadmap")
	require.True(t, ok)
	assert.Equal(t, roadmap.ID, got.ID)

	_, ok = s.BoardBySlug("acme", "missing")
	assert.False(t, ok)
	_, ok = s.BoardBySlug("missing", "roadmap")
	assert.False(t, ok)
}

func TestCompanyBySlug_FirstMatchWins(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// Slug uniqueness is not enforced; the oldest match resolves.
	first, _ := s.CreateCompany(ctx, CreateCompanyInput{Name: "Acme"})
	_, err := s.CreateCompany(ctx, CreateCompanyInput{Name: "Acme"})
	require.NoError(t, err)

	got, ok := s.CompanyBySlug("acme")
	require.True(t, ok)
	assert.Equal(t, first.ID, got.ID)
}

func TestBoardsByCompany_InsertionOrder(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	company, _ := s.CreateCompany(ctx, CreateCompanyInput{Name: "Acme"})
	b1, _ := s.CreateBoard(ctx, CreateBoardInput{Name: "One", CompanyID: company.ID})
	b2, _ := s.CreateBoard(ctx, CreateBoardInput{Name: "Two", CompanyID: company.ID})
	_, err := s.CreateBoard(ctx, CreateBoardInput{Name: "Elsewhere", CompanyID: "other"})
	require.NoError(t, err)

	boards := s.BoardsByCompany(company.ID)
	require.Len(t, boards, 2)
	assert.Equal(t, b1.ID, boards[0].ID)
	assert.Equal(t, b2.ID, boards[1].ID)
}

func TestCommentsByFeedback_InsertionOrder(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	f, _ := s.CreateFeedback(ctx, CreateFeedbackInput{Title: "x", BoardID: "b1"})
	m1, _ := s.AddComment(ctx, AddCommentInput{Content: "first", FeedbackID: f.ID})
	m2, _ := s.AddComment(ctx, AddCommentInput{Content: "second", FeedbackID: f.ID})

	comments := s.CommentsByFeedback(f.ID)
	require.Len(t, comments, 2)
	assert.Equal(t, m1.ID, comments[0].ID)
	assert.Equal(t, m2.ID, comments[1].ID)

	assert.Empty(t, s.CommentsByFeedback("ghost"))
}
