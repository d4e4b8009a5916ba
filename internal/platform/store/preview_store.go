// Package store provides the TTL-bounded store for action previews. A preview
// is only executable within its validity window; expired previews disappear
// and the executor treats them as unknown.
package store

import (
	"time"

	"github.com/finance-assistant/internal/domain/action"
	gocache "github.com/patrickmn/go-cache"
)

// PreviewStore holds action previews for their validity window.
type PreviewStore struct {
	cache *gocache.Cache
}

// NewPreviewStore creates a preview store. ttl is the validity window of a
// preview; cleanupInterval controls how often expired entries are purged.
func NewPreviewStore(ttl, cleanupInterval time.Duration) *PreviewStore {
	return &PreviewStore{
		cache: gocache.New(ttl, cleanupInterval),
	}
}

// Put stores a preview under its ID for the store's TTL.
func (s *PreviewStore) Put(preview *action.Preview) {
	s.cache.Set(preview.ID, preview, gocache.DefaultExpiration)
}

// Get returns the preview with the given ID if it exists, has not expired,
// and belongs to the given kind. Previews of a different kind are reported
// as not found so an executor can never complete a preview issued for
// another action type.
func (s *PreviewStore) Get(id string, kind action.Kind) (*action.Preview, error) {
	entry, found := s.cache.Get(id)
	if !found {
		return nil, action.ErrPreviewNotFound{ID: id}
	}

	preview := entry.(*action.Preview)
	if preview.Kind != kind {
		return nil, action.ErrPreviewNotFound{ID: id}
	}
	return preview, nil
}
