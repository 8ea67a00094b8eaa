// Package domain contains the core data types for the Travel Booklet API.
// This package has zero external dependencies and is imported by every other
// internal package (store, service, handler).
package domain

// Canonical selection vocabularies offered by the form UI. The server only
// enforces that at least one value is chosen, not membership in these lists,
// so a client sending its own free-text values is accepted.
var (
	Interests = []string{
		"Culture & History",
		"Food & Dining",
		"Nature & Outdoors",
		"Shopping",
		"Art & Museums",
		"Nightlife",
		"Adventure Sports",
		"Relaxation",
	}

	DiningPreferences = []string{
		"Local Cuisine",
		"Fine Dining",
		"Street Food",
		"Vegetarian",
		"Vegan",
		"Seafood",
		"International",
	}

	ActivityLevels = []string{
		"Relaxed",
		"Moderate",
		"Active",
		"Very Active",
	}
)

// Restaurant budget tiers. The wire value is the integer; the label is what
// gets interpolated into model prompts.
const (
	BudgetLow    = 1
	BudgetMedium = 2
	BudgetHigh   = 3
)

var budgetLabels = map[int]string{
	BudgetLow:    "Budget-friendly",
	BudgetMedium: "Moderate",
	BudgetHigh:   "High-end",
}

// BudgetLabel returns the human-readable label for a budget tier,
// or "Unknown" for values outside [BudgetLow, BudgetHigh].
func BudgetLabel(tier int) string {
	if l, ok := budgetLabels[tier]; ok {
		return l
	}
	return "Unknown"
}

// PreferencesInput is the client-submitted portion of a travel-preferences
// record: everything except the store-assigned id and the generated booklet.
type PreferencesInput struct {
	Location          string   `json:"location"`
	StartDate         Date     `json:"startDate"`
	EndDate           Date     `json:"endDate"`
	Interests         []string `json:"interests"`
	ActivityLevel     string   `json:"activityLevel"`
	DiningPreferences []string `json:"diningPreferences"`
	RestaurantBudget  int      `json:"restaurantBudget"`
	AdditionalNotes   string   `json:"additionalNotes,omitempty"`
}

// TravelPreferences is the stored record: validated input plus the id
// assigned by the store and the generated booklet. Records are immutable
// once stored; there is no update or delete.
type TravelPreferences struct {
	ID int `json:"id"`
	PreferencesInput
	BookletContent *BookletContent `json:"bookletContent,omitempty"`
}
