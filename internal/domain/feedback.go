package domain

import (
	"slices"
	"time"
)

// FeedbackStatus tracks where an item sits in the owner's workflow.
type FeedbackStatus string

const (
	// StatusUnderReview is the initial status of every feedback item.
	StatusUnderReview FeedbackStatus = "under-review"
	// StatusPlanned marks an item the owner has committed to.
	StatusPlanned FeedbackStatus = "planned"
	// StatusInProgress marks an item being worked on.
	StatusInProgress FeedbackStatus = "in-progress"
	// StatusCompleted marks a shipped item.
	StatusCompleted FeedbackStatus = "completed"
)

// Statuses lists all workflow statuses in display order.
func Statuses() []FeedbackStatus {
	return []FeedbackStatus{StatusUnderReview, StatusPlanned, StatusInProgress, StatusCompleted}
}

// FeedbackCategory classifies a feedback item.
type FeedbackCategory string

const (
	CategoryFeature     FeedbackCategory = "feature"
	CategoryBug         FeedbackCategory = "bug"
	CategoryImprovement FeedbackCategory = "improvement"
	CategoryQuestion    FeedbackCategory = "question"
	CategoryOther       FeedbackCategory = "other"
)

// Feedback is a single item submitted to a board.
//
// Upvotes is an ordered, duplicate-free sequence of voter ids. CommentCount
// is a derived cache maintained incrementally by the store; it must equal
// the number of live comments referencing this item at all times, and is
// never recomputed by scanning.
type Feedback struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Category     FeedbackCategory `json:"category"`
	Status       FeedbackStatus   `json:"status"`
	BoardID      string           `json:"boardId"`
	AuthorID     string           `json:"authorId"`
	AuthorName   string           `json:"authorName"`
	AuthorEmail  string           `json:"authorEmail,omitempty"`
	Upvotes      []string         `json:"upvotes"`
	CommentCount int              `json:"commentCount"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// HasUpvoted reports whether the given voter id is present in Upvotes.
func (f *Feedback) HasUpvoted(userID string) bool {
	return slices.Contains(f.Upvotes, userID)
}

// VoteCount returns the number of upvotes.
func (f *Feedback) VoteCount() int {
	return len(f.Upvotes)
}
