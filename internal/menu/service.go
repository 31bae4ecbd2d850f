package menu

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Fetcher pulls a fresh menu reference snapshot from the backend.
type Fetcher interface {
	MenuReferences(ctx context.Context, token string) (*MenuReference, error)
}

// Service caches the menu reference snapshot. The catalog is shared
// reference data, so one cached copy serves every user; concurrent cache
// misses collapse into a single upstream call.
type Service struct {
	fetcher Fetcher
	ttl     time.Duration

	group singleflight.Group

	mu        sync.RWMutex
	snapshot  *MenuReference
	fetchedAt time.Time
}

func NewService(fetcher Fetcher, ttl time.Duration) *Service {
	return &Service{fetcher: fetcher, ttl: ttl}
}

// Reference returns the cached snapshot, fetching when stale or absent.
func (s *Service) Reference(ctx context.Context, token string) (*MenuReference, error) {
	s.mu.RLock()
	snap, fetchedAt := s.snapshot, s.fetchedAt
	s.mu.RUnlock()

	if snap != nil && time.Since(fetchedAt) < s.ttl {
		return snap, nil
	}

	return s.Refresh(ctx, token)
}

// Refresh bypasses the cache. Stock-sensitive flows (reorder validation,
// staff stock edits) call this so they never judge against stale counts.
func (s *Service) Refresh(ctx context.Context, token string) (*MenuReference, error) {
	result, err, _ := s.group.Do("references", func() (any, error) {
		snap, err := s.fetcher.MenuReferences(ctx, token)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.snapshot = snap
		s.fetchedAt = time.Now()
		s.mu.Unlock()

		return snap, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*MenuReference), nil
}

// Invalidate drops the cached snapshot. Called after staff stock updates
// so the next customer read sees the new counts.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.snapshot = nil
	s.mu.Unlock()
}
