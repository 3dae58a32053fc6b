package store

import (
	"fmt"
	"slices"

	"github.com/feedbackboardapp/feedback-board/internal/domain"
)

// reduce applies one action to the state and returns the new state. It is
// pure: no clock, no randomness, no I/O. Collections the action does not
// touch are carried over as-is; touched collections are rebuilt, never
// mutated in place.
//
// The type switch is exhaustive over the sealed action set; an unhandled
// variant is a programming error and panics rather than silently keeping
// the old state.
func reduce(st AppState, act action) AppState {
	switch a := act.(type) {
	case stateLoaded:
		return AppState{
			Companies:   a.data.Companies,
			Boards:      a.data.Boards,
			Feedbacks:   a.data.Feedbacks,
			Comments:    a.data.Comments,
			CurrentUser: a.data.User,
			Loading:     false,
		}

	case setUser:
		st.CurrentUser = a.user
		return st

	case addCompany:
		st.Companies = append(slices.Clip(st.Companies), a.company)
		return st

	case updateCompany:
		st.Companies = replaceByID(st.Companies, a.company, func(c domain.Company) string { return c.ID })
		return st

	case deleteCompany:
		st.Companies = removeWhere(st.Companies, func(c domain.Company) bool { return c.ID == a.id })
		st.Boards = removeWhere(st.Boards, func(b domain.Board) bool { return b.CompanyID == a.id })
		return st

	case addBoard:
		st.Boards = append(slices.Clip(st.Boards), a.board)
		return st

	case updateBoard:
		st.Boards = replaceByID(st.Boards, a.board, func(b domain.Board) string { return b.ID })
		return st

	case deleteBoard:
		st.Boards = removeWhere(st.Boards, func(b domain.Board) bool { return b.ID == a.id })
		st.Feedbacks = removeWhere(st.Feedbacks, func(f domain.Feedback) bool { return f.BoardID == a.id })
		return st

	case addFeedback:
		st.Feedbacks = append(slices.Clip(st.Feedbacks), a.feedback)
		return st

	case updateFeedback:
		st.Feedbacks = replaceByID(st.Feedbacks, a.feedback, func(f domain.Feedback) string { return f.ID })
		return st

	case deleteFeedback:
		st.Feedbacks = removeWhere(st.Feedbacks, func(f domain.Feedback) bool { return f.ID == a.id })
		st.Comments = removeWhere(st.Comments, func(c domain.Comment) bool { return c.FeedbackID == a.id })
		return st

	case toggleUpvote:
		st.Feedbacks = mapSlice(st.Feedbacks, func(f domain.Feedback) domain.Feedback {
			if f.ID != a.feedbackID {
				return f
			}
			if f.HasUpvoted(a.userID) {
				f.Upvotes = removeWhere(f.Upvotes, func(id string) bool { return id == a.userID })
			} else {
				f.Upvotes = append(slices.Clip(f.Upvotes), a.userID)
			}
			f.UpdatedAt = a.at
			return f
		})
		return st

	case addComment:
		st.Comments = append(slices.Clip(st.Comments), a.comment)
		st.Feedbacks = mapSlice(st.Feedbacks, func(f domain.Feedback) domain.Feedback {
			if f.ID == a.comment.FeedbackID {
				f.CommentCount++
			}
			return f
		})
		return st

	case deleteComment:
		idx := slices.IndexFunc(st.Comments, func(c domain.Comment) bool { return c.ID == a.id })
		if idx < 0 {
			return st
		}
		parentID := st.Comments[idx].FeedbackID
		st.Comments = removeWhere(st.Comments, func(c domain.Comment) bool { return c.ID == a.id })
		st.Feedbacks = mapSlice(st.Feedbacks, func(f domain.Feedback) domain.Feedback {
			if f.ID == parentID {
				f.CommentCount = max(0, f.CommentCount-1)
			}
			return f
		})
		return st

	default:
		panic(fmt.Sprintf("store: unhandled action %T", act))
	}
}

// replaceByID returns a new slice with the element whose id matches
// replaced verbatim. Unknown ids leave the slice unchanged.
func replaceByID[T any](items []T, replacement T, idOf func(T) string) []T {
	id := idOf(replacement)
	return mapSlice(items, func(item T) T {
		if idOf(item) == id {
			return replacement
		}
		return item
	})
}

// removeWhere returns a new slice without the elements matching the
// predicate, preserving order.
func removeWhere[T any](items []T, match func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !match(item) {
			out = append(out, item)
		}
	}
	return out
}

// mapSlice returns a new slice with fn applied to every element.
func mapSlice[T any](items []T, fn func(T) T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}
