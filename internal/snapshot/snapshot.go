// Package snapshot is the durable-storage boundary of the store: it mirrors
// the four entity collections plus the current user under five fixed logical
// keys, loaded once at startup and rewritten after every mutation.
package snapshot

import (
	"context"

	"github.com/feedbackboardapp/feedback-board/internal/domain"
)

// Storage keys. Each key holds an independently parsed JSON value; a
// corrupted value degrades that key alone to its empty default.
const (
	KeyCompanies = "feedback-board-companies"
	KeyBoards    = "feedback-board-boards"
	KeyFeedbacks = "feedback-board-feedbacks"
	KeyComments  = "feedback-board-comments"
	KeyUser      = "feedback-board-user"
)

// Data is one full snapshot of the persisted application state.
// Collection order is insertion order and is preserved across round trips.
type Data struct {
	Companies []domain.Company `json:"companies"`
	Boards    []domain.Board   `json:"boards"`
	Feedbacks []domain.Feedback `json:"feedbacks"`
	Comments  []domain.Comment `json:"comments"`
	// User is nil when nobody is signed in; its key is then removed from
	// storage rather than written as null.
	User *domain.User `json:"user,omitempty"`
}

// Empty returns a snapshot with all collections empty and no user.
func Empty() *Data {
	return &Data{}
}

// Store reads and writes durable snapshots.
//
// Load never fails on malformed values: each key degrades to its empty
// default independently. It returns an error only when the backing storage
// itself cannot be read. Save rewrites all five keys.
type Store interface {
	Load(ctx context.Context) (*Data, error)
	Save(ctx context.Context, data *Data) error
	Close() error
}
