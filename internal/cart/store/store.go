package store

import (
	"sync"

	cart "github.com/tair/storefront/internal/cart/domain"
	catalog "github.com/tair/storefront/internal/catalog/domain"
)

// Snapshot is a consistent read of one session's cart
type Snapshot struct {
	Lines      []cart.Line `json:"lines"`
	TotalItems int         `json:"total_items"`
	TotalPrice float64     `json:"total_price"`
}

// Store holds one cart per shopper session, in memory only. Carts do not
// survive a restart.
//
// HTTP handlers call into the store concurrently, and none of the cart
// operations compose atomically from smaller steps, so every public
// operation is a single critical section under one mutex.
type Store struct {
	mu    sync.Mutex
	carts map[string]*cart.Cart
}

// New creates an empty session store
func New() *Store {
	return &Store{carts: make(map[string]*cart.Cart)}
}

func (s *Store) cartLocked(sessionID string) *cart.Cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = cart.New()
		s.carts[sessionID] = c
	}
	return c
}

// AddItem adds the product to the session's cart. Invalid input degrades
// to a no-op inside the cart.
func (s *Store) AddItem(sessionID string, product *catalog.Product, quantity int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cartLocked(sessionID)
	c.Add(product, quantity)
	return snapshotLocked(c)
}

// RemoveItem removes the product's line from the session's cart
func (s *Store) RemoveItem(sessionID, productID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cartLocked(sessionID)
	c.Remove(productID)
	return snapshotLocked(c)
}

// UpdateQuantity sets the line's quantity; zero or less removes the line
func (s *Store) UpdateQuantity(sessionID, productID string, quantity int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cartLocked(sessionID)
	c.SetQuantity(productID, quantity)
	return snapshotLocked(c)
}

// Clear empties the session's cart
func (s *Store) Clear(sessionID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cartLocked(sessionID)
	c.Clear()
	return snapshotLocked(c)
}

// Get returns a snapshot of the session's cart without mutating it
func (s *Store) Get(sessionID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[sessionID]; ok {
		return snapshotLocked(c)
	}
	return Snapshot{Lines: []cart.Line{}}
}

// Sessions returns the number of sessions holding a cart
func (s *Store) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}

func snapshotLocked(c *cart.Cart) Snapshot {
	lines := c.Lines()
	if lines == nil {
		lines = []cart.Line{}
	}
	return Snapshot{
		Lines:      lines,
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}
