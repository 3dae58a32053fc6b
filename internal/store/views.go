package store

import (
	"sort"
	"strings"

	"github.com/feedbackboardapp/feedback-board/internal/domain"
)

// SortOption ranks a board's feedback list.
type SortOption string

const (
	// SortMostVotes is the default board view.
	SortMostVotes    SortOption = "most-votes"
	SortNewest       SortOption = "newest"
	SortOldest       SortOption = "oldest"
	SortMostComments SortOption = "most-comments"
)

// FeedbackFilter narrows and ranks a board's feedback. Zero values mean
// "no constraint"; the zero Sort falls back to most-votes.
type FeedbackFilter struct {
	// Query matches case-insensitively against title and description.
	Query string
	// Status filters to one workflow status.
	Status domain.FeedbackStatus
	// Category filters to one category.
	Category domain.FeedbackCategory
	Sort     SortOption
}

// FeedbackView returns the board's feedback filtered and ranked for
// display.
func (s *Store) FeedbackView(boardID string, filter FeedbackFilter) []domain.Feedback {
	items := s.FeedbacksByBoard(boardID)

	if filter.Query != "" {
		query := strings.ToLower(filter.Query)
		items = removeWhere(items, func(f domain.Feedback) bool {
			return !strings.Contains(strings.ToLower(f.Title), query) &&
				!strings.Contains(strings.ToLower(f.Description), query)
		})
	}
	if filter.Status != "" {
		items = removeWhere(items, func(f domain.Feedback) bool { return f.Status != filter.Status })
	}
	if filter.Category != "" {
		items = removeWhere(items, func(f domain.Feedback) bool { return f.Category != filter.Category })
	}

	// Stable sort keeps insertion order among ties.
	switch filter.Sort {
	case SortNewest:
		sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	case SortOldest:
		sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	case SortMostComments:
		sort.SliceStable(items, func(i, j int) bool { return items[i].CommentCount > items[j].CommentCount })
	case SortMostVotes, "":
		sort.SliceStable(items, func(i, j int) bool { return items[i].VoteCount() > items[j].VoteCount() })
	}
	return items
}

// StatusCounts tallies the board's feedback per workflow status, for the
// filter chips rendered above a board.
func (s *Store) StatusCounts(boardID string) map[domain.FeedbackStatus]int {
	counts := make(map[domain.FeedbackStatus]int, len(domain.Statuses()))
	for _, f := range s.FeedbacksByBoard(boardID) {
		counts[f.Status]++
	}
	return counts
}
