package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasUpvoted(t *testing.T) {
	f := &Feedback{Upvotes: []string{"u1", "u2"}}

	assert.True(t, f.HasUpvoted("u1"))
	assert.True(t, f.HasUpvoted("u2"))
	assert.False(t, f.HasUpvoted("u3"))
	assert.Equal(t, 2, f.VoteCount())
}

func TestHasUpvoted_Empty(t *testing.T) {
	f := &Feedback{}

	assert.False(t, f.HasUpvoted("u1"))
	assert.Equal(t, 0, f.VoteCount())
}

func TestStatuses_Order(t *testing.T) {
	want := []FeedbackStatus{StatusUnderReview, StatusPlanned, StatusInProgress, StatusCompleted}
	assert.Equal(t, want, Statuses())
}
