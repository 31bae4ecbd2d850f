package menu

// displayNames maps component codes to the customer-facing Korean names
// used in shortage labels and the order composition screens.
var displayNames = map[string]string{
	"STEAK":        "스테이크",
	"WINE":         "와인",
	"CHAMPAGNE":    "샴페인",
	"COFFEE":       "커피",
	"COFFEE_POT":   "커피 포트",
	"SALAD":        "샐러드",
	"EGG_SCRAMBLE": "에그 스크램블",
	"BACON":        "베이컨",
	"BREAD":        "빵",
	"BAGUETTE":     "바게트 빵",
	"PLASTIC_TRAY": "플라스틱 쟁반",
	"WOOD_TRAY":    "나무 쟁반",
	"SILVER_TRAY":  "은쟁반",
	"PLASTIC_PLATE": "플라스틱 접시",
	"CERAMIC_PLATE": "도자기 접시",
	"SILVER_PLATE":  "은접시",
	"PLASTIC_CUP":   "플라스틱 컵",
	"GLASS_CUP":     "유리컵",
	"NAPKIN":        "냅킨",
	"LINEN_NAPKIN":  "린넨 냅킨",
	"FLOWER":        "꽃",
	"VASE":          "꽃병",
}

// DisplayName resolves a component code to a human-readable name: the
// static registry first, then the snapshot's own description, then the
// bare code as a last resort.
func DisplayName(code string, ref *MenuReference) string {
	if name, ok := displayNames[code]; ok {
		return name
	}
	if comp := ref.Component(code); comp != nil && comp.Description != "" {
		return comp.Description
	}
	return code
}

// RegisteredDisplayName looks up only the static registry; empty string
// when the code has no registered name.
func RegisteredDisplayName(code string) string {
	return displayNames[code]
}
