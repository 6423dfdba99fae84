package views_test

import (
	"testing"

	"github.com/lumenledger/backend/internal/sharedprops"
	"github.com/lumenledger/backend/internal/views"
	"github.com/stretchr/testify/assert"
)

func TestCacheSameSnapshot(t *testing.T) {
	snapshot := &sharedprops.Snapshot{App: sharedprops.App{Name: "Lumen Ledger"}}

	var cache views.Cache
	first := cache.For(snapshot)
	second := cache.For(snapshot)

	// Same snapshot, same page
	assert.Equal(t, first, second)
	assert.Equal(t, "Lumen Ledger", second.App.Name())
}

func TestCacheNewSnapshot(t *testing.T) {
	var cache views.Cache

	page := cache.For(&sharedprops.Snapshot{App: sharedprops.App{Name: "before"}})
	assert.Equal(t, "before", page.App.Name())

	// A navigation produces a new snapshot and therefore a new page,
	// even when the contents are identical to the cached one
	page = cache.For(&sharedprops.Snapshot{App: sharedprops.App{Name: "after"}})
	assert.Equal(t, "after", page.App.Name())
}

func TestPage(t *testing.T) {
	snapshot := &sharedprops.Snapshot{
		Auth: sharedprops.Auth{Authenticated: true, User: &sharedprops.User{}},
	}

	page := views.NewPage(snapshot)
	assert.True(t, page.Auth.IsAuthenticated())
	assert.False(t, page.Flash.HasMessages())
}
