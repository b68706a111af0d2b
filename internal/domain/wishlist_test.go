package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWishlist_AddIsIdempotent(t *testing.T) {
	now := time.Now()
	w := Wishlist{SessionID: "sess-1"}

	assert.True(t, w.Add("rose-noir", now))
	assert.False(t, w.Add("rose-noir", now))
	assert.Len(t, w.Entries, 1)
}

func TestWishlist_PreservesInsertionOrder(t *testing.T) {
	now := time.Now()
	w := Wishlist{}

	w.Add("a", now)
	w.Add("b", now)
	w.Add("c", now)
	w.Remove("b")

	assert.Equal(t, "a", w.Entries[0].ProductID)
	assert.Equal(t, "c", w.Entries[1].ProductID)
}

func TestWishlist_RemoveMissingIsNoop(t *testing.T) {
	w := Wishlist{}
	w.Add("a", time.Now())

	assert.False(t, w.Remove("missing"))
	assert.Len(t, w.Entries, 1)
}

func TestWishlist_Contains(t *testing.T) {
	w := Wishlist{}
	w.Add("a", time.Now())

	assert.True(t, w.Contains("a"))
	assert.False(t, w.Contains("b"))
}
