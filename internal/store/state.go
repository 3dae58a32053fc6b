// Package store holds the canonical application state: four normalized
// entity collections plus the current-user slot, mutated exclusively
// through the closed operation set on Store and mirrored to durable
// storage after every change.
package store

import (
	"github.com/feedbackboardapp/feedback-board/internal/domain"
	"github.com/feedbackboardapp/feedback-board/internal/snapshot"
)

// AppState is the full in-memory state. Collections are ordered sequences;
// insertion order is preserved and is the order queries return.
//
// State values are treated as immutable: the reducer builds a new state
// (copy-on-write per collection) rather than mutating in place, so a state
// value handed out at any point stays internally consistent.
type AppState struct {
	Companies []domain.Company
	Boards    []domain.Board
	Feedbacks []domain.Feedback
	Comments  []domain.Comment

	// CurrentUser is nil when nobody is signed in.
	CurrentUser *domain.User

	// Loading starts true and clears exactly once, after the initial
	// snapshot load finishes (successfully or not). It never returns to
	// true.
	Loading bool
}

// initialState is the state before the snapshot load completes.
func initialState() AppState {
	return AppState{Loading: true}
}

// toSnapshot converts the state to its persisted form.
func (st AppState) toSnapshot() *snapshot.Data {
	return &snapshot.Data{
		Companies: st.Companies,
		Boards:    st.Boards,
		Feedbacks: st.Feedbacks,
		Comments:  st.Comments,
		User:      st.CurrentUser,
	}
}
