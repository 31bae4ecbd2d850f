package cart

import "sync"

// Store hands out one Manager per user so every request for the same
// user's cart funnels through the same mutex.
type Store struct {
	mu       sync.Mutex
	api      API
	managers map[int64]*Manager
}

func NewStore(api API) *Store {
	return &Store{
		api:      api,
		managers: make(map[int64]*Manager),
	}
}

func (s *Store) Manager(userID int64) *Manager {
	s.mu.Lock()
	defer s.mu.Unlock()

	manager, ok := s.managers[userID]
	if !ok {
		manager = NewManager(s.api)
		s.managers[userID] = manager
	}
	return manager
}

// Drop forgets a user's manager, e.g. on logout.
func (s *Store) Drop(userID int64) {
	s.mu.Lock()
	delete(s.managers, userID)
	s.mu.Unlock()
}
