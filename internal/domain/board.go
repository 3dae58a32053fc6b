package domain

import "time"

// Board is a named feedback-collection surface owned by one company.
//
// CompanyID must reference an existing company; this is enforced by the
// mutation protocol's cascades rather than by the type system. Slug is
// unique only within its parent company's namespace, by construction of the
// slug lookup (company resolves first, then the board within it).
type Board struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description"`
	CompanyID      string    `json:"companyId"`
	IsPublic       bool      `json:"isPublic"`
	AllowAnonymous bool      `json:"allowAnonymous"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
