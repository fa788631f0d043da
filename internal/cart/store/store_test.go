package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/tair/storefront/internal/catalog/domain"
)

func product(id string, price float64) *catalog.Product {
	return &catalog.Product{ID: id, Name: "Product " + id, BasePrice: price}
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	s := New()

	s.AddItem("alice", product("tea", 4), 2)
	s.AddItem("bob", product("soda", 3), 1)

	assert.Equal(t, 2, s.Get("alice").TotalItems)
	assert.Equal(t, 1, s.Get("bob").TotalItems)
	assert.Equal(t, 2, s.Sessions())
}

func TestStore_MutationsAreImmediatelyVisible(t *testing.T) {
	s := New()

	snap := s.AddItem("sess", product("tea", 4), 2)
	assert.Equal(t, 2, snap.TotalItems)
	assert.Equal(t, 8.0, snap.TotalPrice)

	snap = s.UpdateQuantity("sess", "tea", 1)
	assert.Equal(t, 1, snap.TotalItems)
	assert.Equal(t, 4.0, snap.TotalPrice)

	snap = s.RemoveItem("sess", "tea")
	assert.Equal(t, 0, snap.TotalItems)
	assert.Empty(t, snap.Lines)
}

func TestStore_GetUnknownSession(t *testing.T) {
	s := New()

	snap := s.Get("nobody")
	assert.NotNil(t, snap.Lines)
	assert.Empty(t, snap.Lines)
	assert.Equal(t, 0, snap.TotalItems)
	assert.Equal(t, 0.0, snap.TotalPrice)
	assert.Equal(t, 0, s.Sessions(), "reads do not create sessions")
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	s := New()
	s.AddItem("sess", product("tea", 4), 2)

	snap := s.Clear("sess")
	assert.Equal(t, 0, snap.TotalItems)

	snap = s.Clear("sess")
	assert.Equal(t, 0, snap.TotalItems)
	assert.Empty(t, snap.Lines)
}

func TestStore_ConcurrentAddsSameProduct(t *testing.T) {
	s := New()
	p := product("tea", 4)

	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			s.AddItem("sess", p, 1)
		}()
	}
	wg.Wait()

	snap := s.Get("sess")
	require.Len(t, snap.Lines, 1, "one line per product, not one per add")
	assert.Equal(t, goroutines, snap.TotalItems)
	assert.Equal(t, float64(goroutines)*4, snap.TotalPrice)
}

func TestStore_ConcurrentSessions(t *testing.T) {
	s := New()

	const sessions = 20
	var wg sync.WaitGroup
	wg.Add(sessions)
	for i := 0; i < sessions; i++ {
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("sess-%d", n)
			s.AddItem(id, product("tea", 4), 2)
			s.AddItem(id, product("soda", 3), 1)
			s.UpdateQuantity(id, "tea", 1)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, sessions, s.Sessions())
	for i := 0; i < sessions; i++ {
		snap := s.Get(fmt.Sprintf("sess-%d", i))
		assert.Equal(t, 2, snap.TotalItems)
		assert.Equal(t, 7.0, snap.TotalPrice)
	}
}
