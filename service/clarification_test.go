package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClarificationSetAndTake(t *testing.T) {
	store := NewClarificationStore()

	store.Set("sess", "covering")
	assert.Equal(t, "covering", store.Take("sess"))
	assert.Equal(t, "", store.Take("sess"), "taking consumes the entry")
}

func TestClarificationIsolatedPerSession(t *testing.T) {
	store := NewClarificationStore()

	store.Set("a", "covering")
	assert.Equal(t, "", store.Take("b"))
	assert.Equal(t, "covering", store.Take("a"))
}

func TestClarificationExpires(t *testing.T) {
	store := NewClarificationStore()
	current := time.Now()
	store.now = func() time.Time { return current }

	store.Set("sess", "covering")
	current = current.Add(clarificationTTL + time.Second)

	assert.Equal(t, "", store.Take("sess"))
}

func TestClarificationReplacement(t *testing.T) {
	store := NewClarificationStore()

	store.Set("sess", "covering")
	store.Set("sess", "size")
	assert.Equal(t, "size", store.Take("sess"))
}
