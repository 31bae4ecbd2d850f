package cart

import (
	"strconv"

	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/menu"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/pricing"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/upstream"
)

// Item is one configured dinner line as the storefront displays it.
// Backend-tracked lines carry the upstream line id as a decimal string;
// lines appended on the offline-degradation path carry a generated uuid,
// which is how the two kinds are told apart.
type Item struct {
	ID               string            `json:"id"`
	DinnerType       string            `json:"dinnerType"`
	DinnerName       string            `json:"dinnerName"`
	ServingStyle     string            `json:"servingStyle"`
	ServingStyleName string            `json:"servingStyleName"`
	Quantity         int               `json:"quantity"`
	Price            int               `json:"price"`
	Components       []menu.RecipeItem `json:"components"`
}

// Local reports whether the line exists only in this process (never
// acknowledged by the backend).
func (i Item) Local() bool {
	_, err := strconv.ParseInt(i.ID, 10, 64)
	return err != nil
}

func fromResponse(resp *upstream.CartResponse) []Item {
	items := make([]Item, 0, len(resp.Items))
	for _, line := range resp.Items {
		components := make([]menu.RecipeItem, 0, len(line.Components))
		for _, comp := range line.Components {
			components = append(components, menu.RecipeItem{
				ComponentCode: comp.ComponentCode,
				ComponentName: comp.ComponentName,
				Quantity:      comp.Quantity,
			})
		}

		items = append(items, Item{
			ID:               strconv.FormatInt(line.ID, 10),
			DinnerType:       line.DinnerType,
			DinnerName:       line.DinnerName,
			ServingStyle:     line.ServingStyle,
			ServingStyleName: line.ServingStyleName,
			Quantity:         line.Quantity,
			// The backend figure is authoritative; it is only re-rounded,
			// never recomputed, to avoid drift against the client engine.
			Price:      pricing.RoundToHundred(line.Price),
			Components: components,
		})
	}
	return items
}
