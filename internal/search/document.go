// Package search provides full-text search over feedback using Bleve.
// It is a degradable convenience on top of the store: when no index is
// wired, callers fall back to the store's substring filter.
package search

import "github.com/feedbackboardapp/feedback-board/internal/domain"

// Document is the indexed shape of one feedback item. Board id, status and
// category are stored as exact keywords for filtering; title and
// description are the full-text targets.
type Document struct {
	ID          string `json:"id"`
	BoardID     string `json:"board_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status"`
}

// newDocument maps a feedback item to its indexed form.
func newDocument(f *domain.Feedback) Document {
	return Document{
		ID:          f.ID,
		BoardID:     f.BoardID,
		Title:       f.Title,
		Description: f.Description,
		Category:    string(f.Category),
		Status:      string(f.Status),
	}
}
