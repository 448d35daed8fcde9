package cart

import "sync"

// DefaultSession is used when a request carries no session id.
const DefaultSession = "local"

// Store hands out one Cart per session id, creating carts on demand.
// Each cart remains a single-owner container; the store only routes to
// it.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewStore returns an empty cart registry.
func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Get returns the cart for the session, creating it if absent. An empty
// session id maps to DefaultSession.
func (s *Store) Get(sessionID string) *Cart {
	if sessionID == "" {
		sessionID = DefaultSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		c = New()
		s.carts[sessionID] = c
	}
	return c
}
