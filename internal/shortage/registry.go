package shortage

import (
	"sync"

	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/menu"
)

// Registry accumulates active shortage state per component code for the
// lifetime of the process. Menu, cart, and history screens read it to
// disable actions; staff stock updates clear it.
//
// Entries are stored as `any` because earlier storefront builds persisted
// a bare display-name string per code; the read path normalizes both
// shapes so consumers only ever see *Info.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]any
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]any)}
}

// Register merges info into the entry for its code. A field is only
// overwritten when the new info actually provides it; an update that
// changes nothing is skipped so memoizing consumers keep a stable view.
// Returns true when the stored entry changed.
func (r *Registry) Register(info *Info) bool {
	if info == nil || info.Code == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing := normalize(info.Code, r.entries[info.Code])

	merged := Info{Code: info.Code}

	merged.DisplayName = info.DisplayName
	if merged.DisplayName == "" && existing != nil {
		merged.DisplayName = existing.DisplayName
	}
	if merged.DisplayName == "" {
		merged.DisplayName = menu.RegisteredDisplayName(info.Code)
	}

	merged.Label = info.Label
	if merged.Label == "" && existing != nil {
		merged.Label = existing.Label
	}

	merged.Available = info.Available
	if merged.Available == nil && existing != nil {
		merged.Available = existing.Available
	}
	merged.Required = info.Required
	if merged.Required == nil && existing != nil {
		merged.Required = existing.Required
	}

	if existing != nil && equal(existing, &merged) {
		return false
	}

	r.entries[info.Code] = &merged
	return true
}

// Get returns the normalized entry for a code.
func (r *Registry) Get(code string) (*Info, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	raw, ok := r.entries[code]
	if !ok {
		return nil, false
	}
	return normalize(code, raw), true
}

// All returns a normalized copy of every active shortage.
func (r *Registry) All() map[string]*Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*Info, len(r.entries))
	for code, raw := range r.entries {
		out[code] = normalize(code, raw)
	}
	return out
}

// Clear removes one entry; no-op when absent.
func (r *Registry) Clear(code string) {
	r.mu.Lock()
	delete(r.entries, code)
	r.mu.Unlock()
}

// ClearAll resets the whole registry.
func (r *Registry) ClearAll() {
	r.mu.Lock()
	r.entries = make(map[string]any)
	r.mu.Unlock()
}

func normalize(code string, raw any) *Info {
	switch v := raw.(type) {
	case *Info:
		return v
	case string:
		// legacy shape: code -> display name
		return &Info{Code: code, DisplayName: v}
	default:
		return nil
	}
}

func equal(a, b *Info) bool {
	if a.DisplayName != b.DisplayName || a.Label != b.Label {
		return false
	}
	if !intPtrEqual(a.Available, b.Available) {
		return false
	}
	return intPtrEqual(a.Required, b.Required)
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
