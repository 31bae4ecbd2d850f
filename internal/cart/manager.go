package cart

import (
	"context"
	"errors"
	"log"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/menu"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/modification"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/pricing"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/upstream"
)

var (
	ErrMissingSelection = errors.New("dinner type and serving style are required")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")

	// ErrDeleteConfirmation signals that a quantity decrement would drop
	// a backend-tracked line to zero; the UI must run its confirm flow
	// and issue an explicit delete instead.
	ErrDeleteConfirmation = errors.New("removing the last unit requires delete confirmation")
)

// API is the slice of the upstream client the cart manager uses.
type API interface {
	GetCart(ctx context.Context, token string) (*upstream.CartResponse, error)
	AddCartItem(ctx context.Context, token string, req upstream.AddCartItemRequest) error
	RemoveCartItem(ctx context.Context, token string, lineID int64) error
	UpdateCartItemQuantity(ctx context.Context, token string, lineID int64, quantity int) error
	ClearCart(ctx context.Context, token string) error
}

// AddInput is one dinner configuration heading into the cart.
// Modifications is the ABSOLUTE per-component map for one unit.
// CalculatedPrice is the client-side estimate sent as a hint; the server
// reprices and its figure wins on the next load.
type AddInput struct {
	DinnerType       string
	DinnerName       string
	ServingStyle     string
	ServingStyleName string
	Quantity         int
	Modifications    modification.AbsoluteMap
	CalculatedPrice  int
}

// Manager is the single source of truth for one user's cart. All
// mutations run under one mutex, so overlapping requests cannot
// interleave their resync reads. After every successful backend mutation
// the local list is replaced wholesale from a fresh fetch.
type Manager struct {
	mu    sync.Mutex
	api   API
	items []Item
}

func NewManager(api API) *Manager {
	return &Manager{api: api}
}

// Load replaces local state with the backend cart. Every failure,
// including "no cart exists yet", yields an empty cart: an absent cart is
// a normal state for a user who has not started shopping.
func (m *Manager) Load(ctx context.Context, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.load(ctx, token)
}

func (m *Manager) load(ctx context.Context, token string) {
	resp, err := m.api.GetCart(ctx, token)
	if err != nil {
		m.items = nil
		return
	}
	m.items = fromResponse(resp)
}

// Add submits a configured dinner. Structured backend rejections are
// returned to the caller for shortage translation; transport failures
// fall back to a locally-synthesized line so the user can keep composing
// an order offline, accepting divergence from backend truth.
func (m *Manager) Add(ctx context.Context, token string, input AddInput) error {
	if input.DinnerType == "" || input.ServingStyle == "" {
		return ErrMissingSelection
	}
	if input.Quantity < 1 {
		return ErrInvalidQuantity
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.api.AddCartItem(ctx, token, upstream.AddCartItemRequest{
		DinnerType:             input.DinnerType,
		ServingStyle:           input.ServingStyle,
		Quantity:               input.Quantity,
		ComponentModifications: input.Modifications,
		CalculatedPrice:        input.CalculatedPrice,
	})

	if err == nil {
		m.load(ctx, token)
		return nil
	}

	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		return err
	}

	// Offline degradation: best effort only.
	log.Printf("cart add fell back to local state: %v", err)
	m.items = append(m.items, localItem(input))
	return nil
}

func localItem(input AddInput) Item {
	components := make([]menu.RecipeItem, 0, len(input.Modifications))
	for code, qty := range input.Modifications {
		components = append(components, menu.RecipeItem{
			ComponentCode: code,
			ComponentName: menu.RegisteredDisplayName(code),
			Quantity:      qty,
		})
	}

	return Item{
		ID:               uuid.NewString(),
		DinnerType:       input.DinnerType,
		DinnerName:       input.DinnerName,
		ServingStyle:     input.ServingStyle,
		ServingStyleName: input.ServingStyleName,
		Quantity:         input.Quantity,
		// CalculatedPrice is the quantity-multiplied line total; Item.Price
		// is per unit, like the backend's line price.
		Price:      pricing.RoundToHundred(input.CalculatedPrice / input.Quantity),
		Components: components,
	}
}

// RemoveLocal drops a line from local state only.
func (m *Manager) RemoveLocal(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocal(id)
}

func (m *Manager) removeLocal(id string) {
	kept := m.items[:0]
	for _, item := range m.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	m.items = kept
}

// RemoveRemote deletes a backend line and resyncs. Failures propagate:
// the user must know a delete did not happen.
func (m *Manager) RemoveRemote(ctx context.Context, token string, lineID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.api.RemoveCartItem(ctx, token, lineID); err != nil {
		return err
	}
	m.load(ctx, token)
	return nil
}

// UpdateQuantity changes a line's quantity. Dropping to zero or below
// removes local lines outright but demands confirmation for backend
// lines.
func (m *Manager) UpdateQuantity(ctx context.Context, token, id string, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	lineID, parseErr := strconv.ParseInt(id, 10, 64)

	if quantity <= 0 {
		if parseErr != nil {
			m.removeLocal(id)
			return nil
		}
		return ErrDeleteConfirmation
	}

	if parseErr != nil {
		for i := range m.items {
			if m.items[i].ID == id {
				m.items[i].Quantity = quantity
			}
		}
		return nil
	}

	if err := m.api.UpdateCartItemQuantity(ctx, token, lineID, quantity); err != nil {
		return err
	}
	m.load(ctx, token)
	return nil
}

// Clear empties the cart. The backend call is best-effort: whatever it
// returns, the local cart ends up empty so the UI can never get stuck
// showing stale lines.
func (m *Manager) Clear(ctx context.Context, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.api.ClearCart(ctx, token); err != nil {
		log.Printf("cart clear failed upstream, local state emptied anyway: %v", err)
	}
	m.items = nil
}

// Items returns a copy of the current lines.
func (m *Manager) Items() []Item {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out
}

// Total sums price x quantity across lines. The VIP discount is layered
// on by checkout, not here.
func (m *Manager) Total() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := 0
	for _, item := range m.items {
		total += item.Price * item.Quantity
	}
	return total
}
