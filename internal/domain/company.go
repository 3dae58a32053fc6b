package domain

import "time"

// Company is a tenant: the owner of one or more feedback boards.
//
// Slug is derived from Name at creation time and never re-derived. The
// store does not enforce slug uniqueness across companies; lookups by slug
// resolve to the first match in insertion order.
type Company struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Logo         string    `json:"logo,omitempty"`
	Description  string    `json:"description,omitempty"`
	Website      string    `json:"website,omitempty"`
	PrimaryColor string    `json:"primaryColor,omitempty"`
	OwnerID      string    `json:"ownerId"` // creating user's id, or AnonymousID
	CreatedAt    time.Time `json:"createdAt"`
}
