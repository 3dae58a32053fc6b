// Package id generates the opaque identifiers used across all entity types.
package id

import (
	"fmt"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Entity prefixes. Ids read as "board-V1StGXR8_Z5jdHi6B-myT" which makes
// dangling references obvious when inspecting persisted snapshots.
const (
	PrefixCompany  = "company"
	PrefixBoard    = "board"
	PrefixFeedback = "feedback"
	PrefixComment  = "comment"
	PrefixAnon     = "anon"
)

// Generate creates a prefixed unique ID using NanoID.
//
// NanoIDs are URL-friendly, compact (21 characters vs UUID's 36),
// and use a larger alphabet for better entropy per character.
//
// Returns an error if the system has insufficient entropy for secure random generation.
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// MustGenerate is like Generate but panics if ID generation fails.
// Entity creation has no useful recovery path when the system cannot
// produce random bytes, so the mutation protocol uses this form.
func MustGenerate(prefix string) string {
	id, err := Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return id
}

// NewUserID creates an identifier for a session user. Users are ephemeral
// browser-session identities rather than durable accounts, and keep the
// UUID format their records have always been persisted with.
func NewUserID() string {
	return uuid.NewString()
}

// NewAnonymousVoterID creates a throwaway voter identity for an upvote
// toggled while no user is signed in. A fresh id is generated per call, so
// an anonymous toggle can never find (and therefore never retract) a
// previous anonymous vote.
func NewAnonymousVoterID() string {
	return MustGenerate(PrefixAnon)
}
