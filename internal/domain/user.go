// Package domain defines the entity types shared by the store, snapshot,
// and search layers.
package domain

import "time"

// AnonymousID is the persisted owner/author id recorded when no user is
// signed in. Real ids always carry an entity prefix (or are UUIDs), so the
// sentinel can never collide with a generated id.
const AnonymousID = "anonymous"

// AnonymousName is the display name recorded for unsigned authors.
const AnonymousName = "Anonymous"

// User is whoever is currently using this session. It is not a durable
// account registry entry: each login mints a fresh identity, even with an
// email seen before, and at most one user is current at a time.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
