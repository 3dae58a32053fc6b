package store

import (
	"slices"

	"github.com/feedbackboardapp/feedback-board/internal/domain"
)

// Queries are pure reads of the current state, recomputed on demand.
// Lookups that miss return ok=false rather than an error: a dangling
// reference is answered with nothing, not rejected.

// IsLoading reports whether the initial snapshot load has not yet
// completed. Before then, queries answer from the empty state.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Loading
}

// CurrentUser returns the signed-in user, or nil.
func (s *Store) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state.CurrentUser == nil {
		return nil
	}
	user := *s.state.CurrentUser
	return &user
}

// Companies returns all companies in insertion order.
func (s *Store) Companies() []domain.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Companies)
}

// CompanyBySlug returns the first company with an exact slug match.
// Slug uniqueness is not enforced at creation, so with duplicates the
// oldest company wins.
func (s *Store) CompanyBySlug(slug string) (domain.Company, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.state.Companies {
		if s.state.Companies[i].Slug == slug {
			return s.state.Companies[i], true
		}
	}
	return domain.Company{}, false
}

// BoardBySlug resolves the company by slug first, then the board by slug
// within that company's boards. Both must match for a hit.
func (s *Store) BoardBySlug(companySlug, boardSlug string) (domain.Board, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var companyID string
	for i := range s.state.Companies {
		if s.state.Companies[i].Slug == companySlug {
			companyID = s.state.Companies[i].ID
			break
		}
	}
	if companyID == "" {
		return domain.Board{}, false
	}

	for i := range s.state.Boards {
		b := &s.state.Boards[i]
		if b.CompanyID == companyID && b.Slug == boardSlug {
			return *b, true
		}
	}
	return domain.Board{}, false
}

// BoardsByCompany returns the company's boards in insertion order.
func (s *Store) BoardsByCompany(companyID string) []domain.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Board
	for i := range s.state.Boards {
		if s.state.Boards[i].CompanyID == companyID {
			out = append(out, s.state.Boards[i])
		}
	}
	return out
}

// FeedbacksByBoard returns the board's feedback in insertion order.
// Callers wanting filtering or ranking use FeedbackView instead.
func (s *Store) FeedbacksByBoard(boardID string) []domain.Feedback {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Feedback
	for i := range s.state.Feedbacks {
		if s.state.Feedbacks[i].BoardID == boardID {
			out = append(out, s.state.Feedbacks[i])
		}
	}
	return out
}

// FeedbackByID returns the feedback with the given id.
func (s *Store) FeedbackByID(feedbackID string) (domain.Feedback, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.state.Feedbacks {
		if s.state.Feedbacks[i].ID == feedbackID {
			return s.state.Feedbacks[i], true
		}
	}
	return domain.Feedback{}, false
}

// CommentsByFeedback returns the feedback's comments in insertion order.
func (s *Store) CommentsByFeedback(feedbackID string) []domain.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Comment
	for i := range s.state.Comments {
		if s.state.Comments[i].FeedbackID == feedbackID {
			out = append(out, s.state.Comments[i])
		}
	}
	return out
}
