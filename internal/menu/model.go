package menu

// MenuReference is one immutable snapshot of the dinner catalog: dinner
// types, serving styles, and component stock/price reference data. It is
// fetched whole and never patched locally.
type MenuReference struct {
	DinnerTypes    []DinnerType    `json:"dinnerTypes"`
	ServingStyles  []ServingStyle  `json:"servingStyles"`
	ComponentTypes []ComponentType `json:"componentTypes"`
}

// DinnerType is a purchasable dinner set with its default recipe.
// DefaultStyle is the serving style already included in the base price;
// older snapshots omit it.
type DinnerType struct {
	Code         string       `json:"code"`
	Description  string       `json:"description"`
	Price        int          `json:"price"`
	ImageURL     string       `json:"imageUrl"`
	DefaultStyle string       `json:"defaultStyle,omitempty"`
	Recipe       []RecipeItem `json:"recipe"`
}

type RecipeItem struct {
	ComponentCode string `json:"componentCode"`
	ComponentName string `json:"componentName"`
	Quantity      int    `json:"quantity"`
}

// ServingStyle is a presentation tier. Tableware components are consumed
// regardless of the dinner's recipe.
type ServingStyle struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	ExtraPrice  int             `json:"extraPrice"`
	Tableware   []TablewareItem `json:"tableware"`
}

type TablewareItem struct {
	ComponentCode string `json:"componentCode"`
	Quantity      int    `json:"quantity"`
}

// ComponentType is a single ingredient or tableware unit.
type ComponentType struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Stock       int    `json:"stockQuantity"`
}

// Dinner returns the dinner type for a code, nil if unknown.
func (r *MenuReference) Dinner(code string) *DinnerType {
	if r == nil {
		return nil
	}
	for i := range r.DinnerTypes {
		if r.DinnerTypes[i].Code == code {
			return &r.DinnerTypes[i]
		}
	}
	return nil
}

// Style returns the serving style for a code, nil if unknown.
func (r *MenuReference) Style(code string) *ServingStyle {
	if r == nil {
		return nil
	}
	for i := range r.ServingStyles {
		if r.ServingStyles[i].Code == code {
			return &r.ServingStyles[i]
		}
	}
	return nil
}

// Component returns the component type for a code, nil if unknown.
// Callers treat nil as "no price impact, no stock check".
func (r *MenuReference) Component(code string) *ComponentType {
	if r == nil {
		return nil
	}
	for i := range r.ComponentTypes {
		if r.ComponentTypes[i].Code == code {
			return &r.ComponentTypes[i]
		}
	}
	return nil
}
