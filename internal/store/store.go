package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/feedbackboardapp/feedback-board/internal/domain"
	"github.com/feedbackboardapp/feedback-board/internal/id"
	"github.com/feedbackboardapp/feedback-board/internal/notify"
	"github.com/feedbackboardapp/feedback-board/internal/snapshot"
	"github.com/feedbackboardapp/feedback-board/internal/util"
)

// SearchIndexer is the interface for keeping the search index in sync.
// Store uses this without depending on the search implementation; index
// failures are logged, never surfaced, because search is a degradable
// convenience on top of the canonical state.
type SearchIndexer interface {
	IndexFeedback(ctx context.Context, f *domain.Feedback) error
	DeleteFeedback(ctx context.Context, feedbackID string) error
}

// NoopSearchIndexer is a no-op implementation for testing.
type NoopSearchIndexer struct{}

// IndexFeedback is a no-op.
func (NoopSearchIndexer) IndexFeedback(context.Context, *domain.Feedback) error { return nil }

// DeleteFeedback is a no-op.
func (NoopSearchIndexer) DeleteFeedback(context.Context, string) error { return nil }

// NewNoopSearchIndexer creates a new no-op search indexer for testing.
func NewNoopSearchIndexer() SearchIndexer {
	return NoopSearchIndexer{}
}

// Store is the single shared state engine of a running application.
//
// The mutation protocol assumes one logical writer; the mutex turns that
// assumption into a guarantee and lets any goroutine read safely. Every
// mutation runs to completion as one transition: reduce, swap state,
// snapshot, then notify.
type Store struct {
	mu    sync.RWMutex
	state AppState

	logger    *slog.Logger
	snapshots snapshot.Store
	emitter   notify.Emitter

	// Search indexer, set via SetSearchIndexer after store creation to
	// avoid circular dependencies.
	indexer SearchIndexer

	now func() time.Time
}

// New creates a Store over the given snapshot backend. The state starts
// empty with Loading set; call Load before serving queries.
func New(snapshots snapshot.Store, logger *slog.Logger, emitter notify.Emitter) *Store {
	if emitter == nil {
		emitter = notify.NewNoopEmitter()
	}
	return &Store{
		state:     initialState(),
		logger:    logger,
		snapshots: snapshots,
		emitter:   emitter,
		indexer:   NewNoopSearchIndexer(),
		now:       time.Now,
	}
}

// SetSearchIndexer sets the search indexer for keeping search in sync.
func (s *Store) SetSearchIndexer(indexer SearchIndexer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.indexer = indexer
}

// Load performs the one-time initial load from the snapshot store and
// clears the Loading flag. A failed load still clears the flag — the
// application starts from an empty state rather than hanging — so Load
// only logs the failure.
func (s *Store) Load(ctx context.Context) {
	data, err := s.snapshots.Load(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("failed to load snapshot, starting empty", "error", err)
		}
		data = snapshot.Empty()
	}

	s.mu.Lock()
	s.state = reduce(s.state, stateLoaded{data: data})
	feedbacks := s.state.Feedbacks
	s.mu.Unlock()

	// Warm the search index with the loaded feedback.
	for i := range feedbacks {
		if err := s.indexer.IndexFeedback(ctx, &feedbacks[i]); err != nil {
			s.logIndexErr(err)
		}
	}

	if s.logger != nil {
		s.logger.Info("state loaded",
			"companies", len(data.Companies),
			"boards", len(data.Boards),
			"feedbacks", len(data.Feedbacks),
			"comments", len(data.Comments),
			"signed_in", data.User != nil,
		)
	}
	s.emitter.Emit(notify.Event{Type: notify.EventStateLoaded})
}

// dispatch applies the action under the write lock and snapshots the new
// state. The in-memory transition always applies; only the durability of
// this particular change is at stake when Save fails, so the error is
// returned for the caller to surface.
func (s *Store) dispatch(ctx context.Context, act action) error {
	s.mu.Lock()
	s.state = reduce(s.state, act)
	st := s.state
	s.mu.Unlock()

	// Mirror every post-load change durably. During startup the snapshot
	// store is the source of truth, so nothing is written back yet.
	if st.Loading {
		return nil
	}
	return s.snapshots.Save(ctx, st.toSnapshot())
}

// Login creates a fresh session user and makes it current. Identities are
// never merged: logging in twice with the same email yields two distinct
// users.
func (s *Store) Login(ctx context.Context, name, email string) (domain.User, error) {
	user := domain.User{
		ID:        id.NewUserID(),
		Name:      name,
		Email:     email,
		CreatedAt: s.now(),
	}
	err := s.dispatch(ctx, setUser{user: &user})
	s.emitter.Emit(notify.Event{Type: notify.EventUserLoggedIn, EntityID: user.ID})
	return user, err
}

// Logout clears the current user. The user key is removed from durable
// storage rather than written as null.
func (s *Store) Logout(ctx context.Context) error {
	err := s.dispatch(ctx, setUser{user: nil})
	s.emitter.Emit(notify.Event{Type: notify.EventUserLoggedOut})
	return err
}

// CreateCompanyInput is the caller-supplied part of a new company.
type CreateCompanyInput struct {
	Name         string
	Description  string
	Website      string
	Logo         string
	PrimaryColor string
}

// CreateCompany creates a company owned by the current user (or the
// anonymous sentinel). The slug is derived from the name once, here, and
// never re-derived; collisions with existing slugs are not checked.
func (s *Store) CreateCompany(ctx context.Context, in CreateCompanyInput) (domain.Company, error) {
	company := domain.Company{
		ID:           id.MustGenerate(id.PrefixCompany),
		Name:         in.Name,
		Slug:         util.Slugify(in.Name),
		Description:  in.Description,
		Website:      in.Website,
		Logo:         in.Logo,
		PrimaryColor: in.PrimaryColor,
		OwnerID:      s.currentUserID(),
		CreatedAt:    s.now(),
	}
	err := s.dispatch(ctx, addCompany{company: company})
	s.emitter.Emit(notify.Event{Type: notify.EventCompanyCreated, EntityID: company.ID})
	return company, err
}

// UpdateCompany replaces the stored company with the given value verbatim.
// Silently a no-op when the id is unknown.
func (s *Store) UpdateCompany(ctx context.Context, company domain.Company) error {
	err := s.dispatch(ctx, updateCompany{company: company})
	s.emitter.Emit(notify.Event{Type: notify.EventCompanyUpdated, EntityID: company.ID})
	return err
}

// DeleteCompany removes the company and cascades to its boards. Feedback
// and comments under those boards are intentionally left in place; queries
// for them simply come back empty once their board is gone.
func (s *Store) DeleteCompany(ctx context.Context, companyID string) error {
	err := s.dispatch(ctx, deleteCompany{id: companyID})
	s.emitter.Emit(notify.Event{Type: notify.EventCompanyDeleted, EntityID: companyID})
	return err
}

// CreateBoardInput is the caller-supplied part of a new board.
type CreateBoardInput struct {
	Name           string
	Description    string
	CompanyID      string
	IsPublic       bool
	AllowAnonymous bool
}

// CreateBoard creates a board under the given company. The slug is derived
// from the name and is unique only within the company's namespace, by
// construction of the slug lookup.
func (s *Store) CreateBoard(ctx context.Context, in CreateBoardInput) (domain.Board, error) {
	now := s.now()
	board := domain.Board{
		ID:             id.MustGenerate(id.PrefixBoard),
		Name:           in.Name,
		Slug:           util.Slugify(in.Name),
		Description:    in.Description,
		CompanyID:      in.CompanyID,
		IsPublic:       in.IsPublic,
		AllowAnonymous: in.AllowAnonymous,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	err := s.dispatch(ctx, addBoard{board: board})
	s.emitter.Emit(notify.Event{Type: notify.EventBoardCreated, EntityID: board.ID})
	return board, err
}

// UpdateBoard replaces the stored board, refreshing UpdatedAt. Silently a
// no-op when the id is unknown.
func (s *Store) UpdateBoard(ctx context.Context, board domain.Board) error {
	board.UpdatedAt = s.now()
	err := s.dispatch(ctx, updateBoard{board: board})
	s.emitter.Emit(notify.Event{Type: notify.EventBoardUpdated, EntityID: board.ID})
	return err
}

// DeleteBoard removes the board and cascades to its feedback (but not to
// that feedback's comments). Cascaded feedback is removed from the search
// index.
func (s *Store) DeleteBoard(ctx context.Context, boardID string) error {
	victims := s.feedbackIDsByBoard(boardID)

	err := s.dispatch(ctx, deleteBoard{id: boardID})
	for _, fid := range victims {
		if derr := s.indexer.DeleteFeedback(ctx, fid); derr != nil {
			s.logIndexErr(derr)
		}
	}
	s.emitter.Emit(notify.Event{Type: notify.EventBoardDeleted, EntityID: boardID})
	return err
}

// CreateFeedbackInput is the caller-supplied part of a new feedback item.
type CreateFeedbackInput struct {
	Title       string
	Description string
	Category    domain.FeedbackCategory
	BoardID     string
	AuthorName  string
	AuthorEmail string
}

// CreateFeedback creates a feedback item. Status always starts at
// under-review, the comment count at zero, and a signed-in author casts the
// first upvote implicitly. The author name defaults through: explicit value
// → current user's name → "Anonymous".
func (s *Store) CreateFeedback(ctx context.Context, in CreateFeedbackInput) (domain.Feedback, error) {
	user := s.CurrentUser()

	authorID := domain.AnonymousID
	authorName := in.AuthorName
	authorEmail := in.AuthorEmail
	upvotes := []string{}
	if user != nil {
		authorID = user.ID
		if authorName == "" {
			authorName = user.Name
		}
		if authorEmail == "" {
			authorEmail = user.Email
		}
		upvotes = []string{user.ID}
	}
	if authorName == "" {
		authorName = domain.AnonymousName
	}

	now := s.now()
	feedback := domain.Feedback{
		ID:           id.MustGenerate(id.PrefixFeedback),
		Title:        in.Title,
		Description:  in.Description,
		Category:     in.Category,
		Status:       domain.StatusUnderReview,
		BoardID:      in.BoardID,
		AuthorID:     authorID,
		AuthorName:   authorName,
		AuthorEmail:  authorEmail,
		Upvotes:      upvotes,
		CommentCount: 0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err := s.dispatch(ctx, addFeedback{feedback: feedback})
	if ierr := s.indexer.IndexFeedback(ctx, &feedback); ierr != nil {
		s.logIndexErr(ierr)
	}
	s.emitter.Emit(notify.Event{Type: notify.EventFeedbackCreated, EntityID: feedback.ID})
	return feedback, err
}

// UpdateFeedback replaces the stored feedback, refreshing UpdatedAt.
// Silently a no-op when the id is unknown.
func (s *Store) UpdateFeedback(ctx context.Context, feedback domain.Feedback) error {
	feedback.UpdatedAt = s.now()
	err := s.dispatch(ctx, updateFeedback{feedback: feedback})
	if ierr := s.indexer.IndexFeedback(ctx, &feedback); ierr != nil {
		s.logIndexErr(ierr)
	}
	s.emitter.Emit(notify.Event{Type: notify.EventFeedbackUpdated, EntityID: feedback.ID})
	return err
}

// UpdateFeedbackStatus overwrites only the status (and UpdatedAt) of the
// feedback with the given id. Silently a no-op when the id is unknown.
func (s *Store) UpdateFeedbackStatus(ctx context.Context, feedbackID string, status domain.FeedbackStatus) error {
	s.mu.RLock()
	var found *domain.Feedback
	for i := range s.state.Feedbacks {
		if s.state.Feedbacks[i].ID == feedbackID {
			f := s.state.Feedbacks[i]
			found = &f
			break
		}
	}
	s.mu.RUnlock()

	if found == nil {
		return nil
	}
	found.Status = status
	return s.UpdateFeedback(ctx, *found)
}

// DeleteFeedback removes the feedback and cascades to its comments.
func (s *Store) DeleteFeedback(ctx context.Context, feedbackID string) error {
	err := s.dispatch(ctx, deleteFeedback{id: feedbackID})
	if derr := s.indexer.DeleteFeedback(ctx, feedbackID); derr != nil {
		s.logIndexErr(derr)
	}
	s.emitter.Emit(notify.Event{Type: notify.EventFeedbackDeleted, EntityID: feedbackID})
	return err
}

// ToggleUpvote adds or removes the current user's upvote on the feedback.
// With nobody signed in a throwaway voter id is generated, so an anonymous
// toggle always adds a vote and can never retract one.
func (s *Store) ToggleUpvote(ctx context.Context, feedbackID string) error {
	userID := s.currentUserID()
	if userID == domain.AnonymousID {
		userID = id.NewAnonymousVoterID()
	}

	err := s.dispatch(ctx, toggleUpvote{feedbackID: feedbackID, userID: userID, at: s.now()})
	s.emitter.Emit(notify.Event{Type: notify.EventFeedbackUpvoted, EntityID: feedbackID})
	return err
}

// AddCommentInput is the caller-supplied part of a new comment.
type AddCommentInput struct {
	Content    string
	FeedbackID string
	IsOfficial bool
}

// AddComment appends the comment and increments the parent feedback's
// comment count in the same transition.
func (s *Store) AddComment(ctx context.Context, in AddCommentInput) (domain.Comment, error) {
	user := s.CurrentUser()
	authorID := domain.AnonymousID
	authorName := domain.AnonymousName
	if user != nil {
		authorID = user.ID
		authorName = user.Name
	}

	comment := domain.Comment{
		ID:         id.MustGenerate(id.PrefixComment),
		Content:    in.Content,
		FeedbackID: in.FeedbackID,
		AuthorID:   authorID,
		AuthorName: authorName,
		IsOfficial: in.IsOfficial,
		CreatedAt:  s.now(),
	}
	err := s.dispatch(ctx, addComment{comment: comment})
	s.emitter.Emit(notify.Event{Type: notify.EventCommentAdded, EntityID: comment.ID})
	return comment, err
}

// DeleteComment removes the comment and decrements the parent feedback's
// comment count, floored at zero. Silently a no-op when the id is unknown.
func (s *Store) DeleteComment(ctx context.Context, commentID string) error {
	err := s.dispatch(ctx, deleteComment{id: commentID})
	s.emitter.Emit(notify.Event{Type: notify.EventCommentDeleted, EntityID: commentID})
	return err
}

// currentUserID returns the current user's id, or the anonymous sentinel.
func (s *Store) currentUserID() string {
	if user := s.CurrentUser(); user != nil {
		return user.ID
	}
	return domain.AnonymousID
}

func (s *Store) feedbackIDsByBoard(boardID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	for i := range s.state.Feedbacks {
		if s.state.Feedbacks[i].BoardID == boardID {
			ids = append(ids, s.state.Feedbacks[i].ID)
		}
	}
	return ids
}

func (s *Store) logIndexErr(err error) {
	if s.logger != nil {
		s.logger.Warn("search index update failed", "error", err)
	}
}
