package pricing

import (
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/menu"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/modification"
)

// The champagne feast dinner ships with the Grand style included, so the
// style surcharge is waived for it. Older snapshots carry no defaultStyle
// field and are matched by display name instead.
const (
	champagneFeastDinnerName = "샴페인 축제 디너"
	grandStyleName           = "그랜드"
)

// Flat discount rate applied when a removal cannot be priced against a
// known dinner recipe.
const fallbackDiscountPercent = 30

// Engine prices dinner configurations against one menu reference
// snapshot. Every method is a pure function of the snapshot and its
// arguments: unknown codes degrade to a zero contribution rather than an
// error, so a stale or partially loaded snapshot can never fail checkout.
type Engine struct {
	ref *menu.MenuReference
}

func NewEngine(ref *menu.MenuReference) *Engine {
	return &Engine{ref: ref}
}

// DinnerBasePrice returns the dinner's base price, 0 for unknown codes.
func (e *Engine) DinnerBasePrice(dinnerCode string) int {
	dinner := e.ref.Dinner(dinnerCode)
	if dinner == nil {
		return 0
	}
	return dinner.Price
}

// ServingStyleSurcharge returns the extra price for serving the given
// dinner in the given style. The surcharge is waived when the style is
// the dinner's included default.
func (e *Engine) ServingStyleSurcharge(dinnerCode, styleCode string) int {
	style := e.ref.Style(styleCode)
	if style == nil {
		return 0
	}

	dinner := e.ref.Dinner(dinnerCode)
	if dinner != nil {
		if dinner.DefaultStyle != "" && dinner.DefaultStyle == styleCode {
			return 0
		}
		// Legacy snapshots: champagne feast includes Grand, keyed by name.
		if dinner.DefaultStyle == "" &&
			dinner.Description == champagneFeastDinnerName &&
			style.Description == grandStyleName {
			return 0
		}
	}

	return style.ExtraPrice
}

// ComponentDiscountAmount prices the refund for removing removedQty units
// of a component from a dinner. Removing an ingredient refunds its
// proportional contribution to the dinner's price, not its raw market
// price: discount = basePrice x (unitPrice / recipe component value) x
// removedQty, in integer arithmetic. Unknown dinners fall back to a flat
// 30% of the component's market price.
func (e *Engine) ComponentDiscountAmount(dinnerCode, componentCode string, removedQty int) int {
	if removedQty <= 0 {
		return 0
	}

	comp := e.ref.Component(componentCode)
	if comp == nil {
		return 0
	}

	dinner := e.ref.Dinner(dinnerCode)
	if dinner == nil {
		return comp.Price * removedQty * fallbackDiscountPercent / 100
	}

	recipeValue := 0
	for _, item := range dinner.Recipe {
		if c := e.ref.Component(item.ComponentCode); c != nil {
			recipeValue += c.Price * item.Quantity
		}
	}
	if recipeValue == 0 {
		return comp.Price * removedQty * fallbackDiscountPercent / 100
	}

	return dinner.Price * comp.Price * removedQty / recipeValue
}

// ComponentModificationPrice totals the price impact of a diff map:
// additions charge full component price, removals apply the proportional
// discount, zero deltas never appear in a diff map.
func (e *Engine) ComponentModificationPrice(dinnerCode string, diff modification.DiffMap) int {
	total := 0
	for code, delta := range diff {
		switch {
		case delta > 0:
			if comp := e.ref.Component(code); comp != nil {
				total += comp.Price * delta
			}
		case delta < 0:
			total -= e.ComponentDiscountAmount(dinnerCode, code, -delta)
		}
	}
	return total
}

// TotalOrderPrice computes the final line price: unit price is base plus
// style surcharge plus modification price; the quantity-multiplied total
// is clamped at zero and rounded to the nearest 100 won.
func (e *Engine) TotalOrderPrice(dinnerCode, styleCode string, quantity int, diff modification.DiffMap) int {
	unit := e.DinnerBasePrice(dinnerCode) +
		e.ServingStyleSurcharge(dinnerCode, styleCode) +
		e.ComponentModificationPrice(dinnerCode, diff)

	total := unit * quantity
	if total < 0 {
		total = 0
	}
	return RoundToHundred(total)
}

// RoundToHundred rounds half-up to the nearest 100 currency units.
// Callers re-round backend-reported unit prices with this too; rounding
// at different granularities is not associative, so the exact literals in
// the pricing tests are the contract.
func RoundToHundred(amount int) int {
	if amount < 0 {
		return -RoundToHundred(-amount)
	}
	return (amount + 50) / 100 * 100
}
