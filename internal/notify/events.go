// Package notify broadcasts store change events so the presentation layer
// can re-query after each mutation. It is transport-free: subscribers
// receive events on channels and decide themselves how to surface them.
package notify

import "time"

// EventType represents the type of a store change event.
type EventType string

const (
	// EventStateLoaded fires once, after the initial snapshot load.
	EventStateLoaded EventType = "state.loaded"

	// EventUserLoggedIn fires when a session user is created.
	EventUserLoggedIn EventType = "user.logged_in"
	// EventUserLoggedOut fires when the session user is cleared.
	EventUserLoggedOut EventType = "user.logged_out"

	EventCompanyCreated EventType = "company.created"
	EventCompanyUpdated EventType = "company.updated"
	EventCompanyDeleted EventType = "company.deleted"

	EventBoardCreated EventType = "board.created"
	EventBoardUpdated EventType = "board.updated"
	EventBoardDeleted EventType = "board.deleted"

	EventFeedbackCreated EventType = "feedback.created"
	EventFeedbackUpdated EventType = "feedback.updated"
	EventFeedbackDeleted EventType = "feedback.deleted"
	// EventFeedbackUpvoted fires for both vote and un-vote toggles.
	EventFeedbackUpvoted EventType = "feedback.upvoted"

	EventCommentAdded   EventType = "comment.added"
	EventCommentDeleted EventType = "comment.deleted"
)

// Event is one store change notification. EntityID identifies the entity
// the mutation touched; cascade victims do not get events of their own.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	EntityID  string    `json:"entityId,omitempty"`
}

// Emitter is the seam the store broadcasts through. Implementations must
// not block: the store emits synchronously inside its mutation path.
type Emitter interface {
	Emit(event Event)
}

// NoopEmitter is a no-op implementation of Emitter for testing.
type NoopEmitter struct{}

// Emit implements Emitter.Emit as a no-op.
func (NoopEmitter) Emit(Event) {}

// NewNoopEmitter creates a new no-op emitter for testing.
func NewNoopEmitter() Emitter {
	return NoopEmitter{}
}
