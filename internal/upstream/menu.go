package upstream

import (
	"context"
	"net/http"

	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/menu"
)

// MenuReferences fetches a fresh catalog snapshot.
func (c *Client) MenuReferences(ctx context.Context, token string) (*menu.MenuReference, error) {
	var ref menu.MenuReference
	if err := c.do(ctx, http.MethodGet, "/api/menus/references", token, nil, nil, &ref); err != nil {
		return nil, err
	}
	return &ref, nil
}
