package modification

import (
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/menu"
)

// AbsoluteMap holds the realized quantity per component for ONE unit of a
// configured dinner. This is the shape cart and order payloads carry.
type AbsoluteMap map[string]int

// DiffMap holds realized minus recipe-baseline quantities. Zero deltas are
// never stored; values can be negative. Only pricing consumes this shape.
//
// The two map types are deliberately distinct so a diff can never be sent
// where an absolute map is expected, or priced as if it were absolute.
type DiffMap map[string]int

// ToAbsolute builds an absolute map from a line item's component list.
// Last write wins on duplicate codes.
func ToAbsolute(components []menu.RecipeItem) AbsoluteMap {
	abs := make(AbsoluteMap, len(components))
	for _, comp := range components {
		abs[comp.ComponentCode] = comp.Quantity
	}
	return abs
}

// FillRecipeDefaults inserts an explicit zero for every recipe component
// of the dinner that the absolute map omits. An omitted component and a
// zeroed-out component mean different things to diff pricing, so the
// reorder flow must never hand pricing a map with recipe keys missing.
func FillRecipeDefaults(dinnerCode string, abs AbsoluteMap, ref *menu.MenuReference) AbsoluteMap {
	filled := make(AbsoluteMap, len(abs))
	for code, qty := range abs {
		filled[code] = qty
	}

	dinner := ref.Dinner(dinnerCode)
	if dinner == nil {
		return filled
	}

	for _, item := range dinner.Recipe {
		if _, ok := filled[item.ComponentCode]; !ok {
			filled[item.ComponentCode] = 0
		}
	}
	return filled
}

// ToDiff compares an absolute map against the dinner's recipe baseline.
// Keys come from the union of both sides; zero deltas are dropped.
func ToDiff(dinnerCode string, abs AbsoluteMap, ref *menu.MenuReference) DiffMap {
	baseline := make(map[string]int)
	if dinner := ref.Dinner(dinnerCode); dinner != nil {
		for _, item := range dinner.Recipe {
			baseline[item.ComponentCode] = item.Quantity
		}
	}

	diff := make(DiffMap)
	for code, actual := range abs {
		if delta := actual - baseline[code]; delta != 0 {
			diff[code] = delta
		}
	}
	for code, base := range baseline {
		if _, ok := abs[code]; !ok && base != 0 {
			diff[code] = -base
		}
	}
	return diff
}
