package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedbackboardapp/feedback-board/internal/domain"
)

// seedBoardView populates one board with three distinguishable items.
func seedBoardView(t *testing.T) (*Store, string) {
	t.Helper()

	s, _ := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	fa, err := s.CreateFeedback(ctx, CreateFeedbackInput{Title: "Dark mode", Description: "please", Category: domain.CategoryFeature, BoardID: "b1"})
	require.NoError(t, err)
	fb, err := s.CreateFeedback(ctx, CreateFeedbackInput{Title: "Crash on save", Description: "boom", Category: domain.CategoryBug, BoardID: "b1"})
	require.NoError(t, err)
	_, err = s.CreateFeedback(ctx, CreateFeedbackInput{Title: "Faster search", Description: "dark corners of the index", Category: domain.CategoryImprovement, BoardID: "b1"})
	require.NoError(t, err)

	// fb: two anonymous votes and a comment; fa: one vote.
	require.NoError(t, s.ToggleUpvote(ctx, fb.ID))
	require.NoError(t, s.ToggleUpvote(ctx, fb.ID))
	require.NoError(t, s.ToggleUpvote(ctx, fa.ID))
	_, err = s.AddComment(ctx, AddCommentInput{Content: "same here", FeedbackID: fb.ID})
	require.NoError(t, err)
	require.NoError(t, s.UpdateFeedbackStatus(ctx, fb.ID, domain.StatusInProgress))

	return s, "b1"
}

func TestFeedbackView_DefaultSortIsMostVotes(t *testing.T) {
	s, boardID := seedBoardView(t)

	items := s.FeedbackView(boardID, FeedbackFilter{})
	require.Len(t, items, 3)
	assert.Equal(t, "Crash on save", items[0].Title)
	assert.Equal(t, "Dark mode", items[1].Title)
	assert.Equal(t, "Faster search", items[2].Title)
}

func TestFeedbackView_SortOrders(t *testing.T) {
	s, boardID := seedBoardView(t)

	newest := s.FeedbackView(boardID, FeedbackFilter{Sort: SortNewest})
	assert.Equal(t, "Faster search", newest[0].Title)

	oldest := s.FeedbackView(boardID, FeedbackFilter{Sort: SortOldest})
	assert.Equal(t, "Dark mode", oldest[0].Title)

	comments := s.FeedbackView(boardID, FeedbackFilter{Sort: SortMostComments})
	assert.Equal(t, "Crash on save", comments[0].Title)
}

func TestFeedbackView_QueryMatchesTitleAndDescription(t *testing.T) {
	s, boardID := seedBoardView(t)

	// "dark" appears in one title and one description, any case.
	items := s.FeedbackView(boardID, FeedbackFilter{Query: "DARK"})
	require.Len(t, items, 2)

	items = s.FeedbackView(boardID, FeedbackFilter{Query: "no such thing"})
	assert.Empty(t, items)
}

func TestFeedbackView_StatusAndCategoryFilters(t *testing.T) {
	s, boardID := seedBoardView(t)

	items := s.FeedbackView(boardID, FeedbackFilter{Status: domain.StatusInProgress})
	require.Len(t, items, 1)
	assert.Equal(t, "Crash on save", items[0].Title)

	items = s.FeedbackView(boardID, FeedbackFilter{Category: domain.CategoryFeature})
	require.Len(t, items, 1)
	assert.Equal(t, "Dark mode", items[0].Title)

	items = s.FeedbackView(boardID, FeedbackFilter{Status: domain.StatusCompleted})
	assert.Empty(t, items)
}

func TestStatusCounts(t *testing.T) {
	s, boardID := seedBoardView(t)

	counts := s.StatusCounts(boardID)
	assert.Equal(t, 2, counts[domain.StatusUnderReview])
	assert.Equal(t, 1, counts[domain.StatusInProgress])
	assert.Equal(t, 0, counts[domain.StatusCompleted])
}
