package shortage

import (
	"fmt"
	"sort"

	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/menu"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/modification"
)

// CheckAvailability validates a configured dinner against the snapshot's
// stock counts before submission: every realized component quantity and
// the style's tableware, multiplied by the line quantity, must be
// coverable. Returns the first shortfall as an Info, nil when everything
// is available. Components unknown to the snapshot are skipped, matching
// the pricing engine's soft-fail rule.
func CheckAvailability(
	ref *menu.MenuReference,
	styleCode string,
	abs modification.AbsoluteMap,
	quantity int,
) *Info {

	if quantity < 1 {
		quantity = 1
	}

	needs := make(map[string]int, len(abs))
	for code, perUnit := range abs {
		if perUnit > 0 {
			needs[code] += perUnit * quantity
		}
	}
	if style := ref.Style(styleCode); style != nil {
		for _, tw := range style.Tableware {
			needs[tw.ComponentCode] += tw.Quantity * quantity
		}
	}

	codes := make([]string, 0, len(needs))
	for code := range needs {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		comp := ref.Component(code)
		if comp == nil {
			continue
		}

		stock := comp.Stock
		if stock < 0 {
			stock = 0
		}
		if needs[code] <= stock {
			continue
		}

		available, required := stock, needs[code]
		info := &Info{
			Code:        code,
			DisplayName: menu.DisplayName(code, ref),
			Available:   &available,
			Required:    &required,
		}
		info.Label = fmt.Sprintf("%s의 재고가 부족합니다.", info.DisplayName)
		return info
	}

	return nil
}
