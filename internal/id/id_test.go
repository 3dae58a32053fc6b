package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	got, err := Generate(PrefixCompany)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "company-"))
	// prefix + "-" + 21-char nanoid
	assert.Len(t, got, len(PrefixCompany)+1+21)
}

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 1000 {
		id := MustGenerate(PrefixFeedback)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestNewAnonymousVoterID_FreshPerCall(t *testing.T) {
	a := NewAnonymousVoterID()
	b := NewAnonymousVoterID()
	assert.True(t, strings.HasPrefix(a, "anon-"))
	assert.NotEqual(t, a, b)
}

func TestNewUserID(t *testing.T) {
	a := NewUserID()
	b := NewUserID()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}
