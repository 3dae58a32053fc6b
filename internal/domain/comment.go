package domain

import "time"

// Comment is a reply on a feedback item. IsOfficial marks a comment posted
// by the board owner rather than a visitor.
type Comment struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	FeedbackID string    `json:"feedbackId"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	IsOfficial bool      `json:"isOfficial"`
	CreatedAt  time.Time `json:"createdAt"`
}
