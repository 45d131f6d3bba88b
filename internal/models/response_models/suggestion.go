package response_models

// ItemType classifies what kind of plan item an edit request is about.
type ItemType string

const (
	ItemTypeNone      ItemType = "none"
	ItemTypeHotel     ItemType = "hotel"
	ItemTypeBreakfast ItemType = "breakfast"
	ItemTypeLunch     ItemType = "lunch"
	ItemTypeDinner    ItemType = "dinner"
	ItemTypeActivity  ItemType = "activity"
)

// MealTag maps meal item types to the document's meal tag, or "" for
// non-meal types.
func (t ItemType) MealTag() string {
	switch t {
	case ItemTypeBreakfast:
		return MealBreakfast
	case ItemTypeLunch:
		return MealLunch
	case ItemTypeDinner:
		return MealDinner
	}
	return ""
}

func (t ItemType) IsMeal() bool { return t.MealTag() != "" }

// PendingSuggestion holds AI-proposed replacement candidates awaiting the
// user's selection. CurrentItem may be empty, meaning no specific target was
// identified and the engine must clarify before applying.
type PendingSuggestion struct {
	Request     string   `json:"understood_request"`
	ItemType    ItemType `json:"item_type"`
	CurrentItem string   `json:"current_item"`
	Candidates  []string `json:"suggestions"`
}

// PendingAddition holds a chosen candidate while the engine waits for the
// user to disambiguate which existing item it should replace.
type PendingAddition struct {
	Candidate string   `json:"candidate"`
	ItemType  ItemType `json:"item_type"`
}
