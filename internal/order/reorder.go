package order

import (
	"context"

	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/cart"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/menu"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/modification"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/pricing"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/shortage"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/upstream"
)

// Reorder re-submits a past order's line items into the cart. Each line's
// component list is converted back to an absolute map, padded with
// explicit zeros for recipe components the customer had removed, priced
// from a FRESH snapshot, and re-validated against live stock. Every line
// must pass validation before any line is added, so a shortage cannot
// leave a half-rebuilt cart behind.
//
// A non-nil Info means the reorder was blocked by a shortage (already
// registered); a non-nil error is any other failure.
func (s *Service) Reorder(ctx context.Context, token string, userID, orderID int64) (*shortage.Info, error) {
	orders, err := s.api.MyOrders(ctx, token)
	if err != nil {
		return nil, err
	}

	var past *upstream.Order
	for i := range orders {
		if orders[i].ID == orderID {
			past = &orders[i]
			break
		}
	}
	if past == nil {
		return nil, ErrOrderNotFound
	}

	ref, err := s.menus.Refresh(ctx, token)
	if err != nil {
		return nil, err
	}
	engine := pricing.NewEngine(ref)

	type pricedLine struct {
		line  upstream.OrderLine
		abs   modification.AbsoluteMap
		price int
	}

	priced := make([]pricedLine, 0, len(past.Items))
	for _, line := range past.Items {
		abs := modification.ToAbsolute(recipeItems(line.Components))
		abs = modification.FillRecipeDefaults(line.DinnerType, abs, ref)

		if info := shortage.CheckAvailability(ref, line.ServingStyle, abs, line.Quantity); info != nil {
			s.shortages.Register(info)
			return info, nil
		}

		diff := modification.ToDiff(line.DinnerType, abs, ref)
		price := engine.TotalOrderPrice(line.DinnerType, line.ServingStyle, line.Quantity, diff)
		priced = append(priced, pricedLine{line: line, abs: abs, price: price})
	}

	manager := s.carts.Manager(userID)
	for _, p := range priced {
		err := manager.Add(ctx, token, cart.AddInput{
			DinnerType:       p.line.DinnerType,
			DinnerName:       p.line.DinnerName,
			ServingStyle:     p.line.ServingStyle,
			ServingStyleName: p.line.ServingStyleName,
			Quantity:         p.line.Quantity,
			Modifications:    p.abs,
			CalculatedPrice:  p.price,
		})
		if err != nil {
			if info := shortage.FromError(err); info != nil {
				s.shortages.Register(info)
				return info, nil
			}
			return nil, err
		}
	}

	return nil, nil
}

func recipeItems(components []upstream.ComponentLine) []menu.RecipeItem {
	items := make([]menu.RecipeItem, 0, len(components))
	for _, comp := range components {
		items = append(items, menu.RecipeItem{
			ComponentCode: comp.ComponentCode,
			ComponentName: comp.ComponentName,
			Quantity:      comp.Quantity,
		})
	}
	return items
}
