package store

import (
	"time"

	"github.com/feedbackboardapp/feedback-board/internal/domain"
	"github.com/feedbackboardapp/feedback-board/internal/snapshot"
)

// action is the closed set of state transitions. Every mutation the store
// exposes dispatches exactly one action through reduce; nothing else may
// touch AppState. The variants are unexported: the set is sealed inside
// this package.
//
// Actions carry every input the transition needs, timestamps included, so
// reduce stays a pure function of (state, action).
type action interface {
	isAction()
}

// stateLoaded replaces the entire state with the loaded snapshot and
// clears the Loading flag.
type stateLoaded struct {
	data *snapshot.Data
}

// setUser replaces the current-user slot; nil means signed out.
type setUser struct {
	user *domain.User
}

type addCompany struct{ company domain.Company }

// updateCompany replaces the company with a matching id verbatim.
// No-op when the id is unknown.
type updateCompany struct{ company domain.Company }

// deleteCompany removes the company and cascades to its boards. The cascade
// deliberately stops there: feedback and comments under those boards are
// left behind, matching the behavior this store has always had.
type deleteCompany struct{ id string }

type addBoard struct{ board domain.Board }

type updateBoard struct{ board domain.Board }

// deleteBoard removes the board and cascades to its feedback, but not to
// the comments of that feedback (same deliberate gap as deleteCompany).
type deleteBoard struct{ id string }

type addFeedback struct{ feedback domain.Feedback }

type updateFeedback struct{ feedback domain.Feedback }

// deleteFeedback removes the feedback and cascades to its comments.
type deleteFeedback struct{ id string }

// toggleUpvote adds the voter id to the feedback's upvotes, or removes it
// if already present. No-op when the feedback id is unknown.
type toggleUpvote struct {
	feedbackID string
	userID     string
	at         time.Time
}

// addComment appends the comment and increments the parent feedback's
// comment count in the same transition.
type addComment struct{ comment domain.Comment }

// deleteComment removes the comment and decrements the parent feedback's
// comment count, floored at zero. No-op when the id is unknown.
type deleteComment struct{ id string }

func (stateLoaded) isAction()    {}
func (setUser) isAction()        {}
func (addCompany) isAction()     {}
func (updateCompany) isAction()  {}
func (deleteCompany) isAction()  {}
func (addBoard) isAction()       {}
func (updateBoard) isAction()    {}
func (deleteBoard) isAction()    {}
func (addFeedback) isAction()    {}
func (updateFeedback) isAction() {}
func (deleteFeedback) isAction() {}
func (toggleUpvote) isAction()   {}
func (addComment) isAction()     {}
func (deleteComment) isAction()  {}
