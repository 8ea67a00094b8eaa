package service

import (
	"fmt"
	"strings"

	"github.com/acourtney/travel-booklet/internal/domain"
)

// Fixed system instructions for the three pipeline stages.
const (
	composerSystemPrompt = "You are a travel expert composing prompts. " +
		"Turn structured travel preferences into a single natural-language research prompt " +
		"optimized to elicit detailed, specific travel recommendations."

	fetcherSystemPrompt = "You are a travel expert. " +
		"Provide detailed recommendations based on the user's preferences."

	formatterSystemPrompt = "You are a professional travel writer creating " +
		"engaging and informative travel booklets."
)

// composerUserPrompt interpolates every preference field into the message
// sent to the prompt-composition model, mapping the numeric budget tier to
// its human-readable label.
func composerUserPrompt(in domain.PreferencesInput) string {
	return fmt.Sprintf(`Compose a research prompt asking for travel recommendations for %s with these preferences:
- Travel dates: %s to %s
- Interests: %s
- Activity level: %s
- Dining preferences: %s
- Restaurant budget: %s
- Additional notes: %s

Respond with the prompt text only.`,
		in.Location,
		in.StartDate, in.EndDate,
		strings.Join(in.Interests, ", "),
		in.ActivityLevel,
		strings.Join(in.DiningPreferences, ", "),
		domain.BudgetLabel(in.RestaurantBudget),
		notesOrNone(in.AdditionalNotes),
	)
}

// formatterUserPrompt asks the formatting model to turn free-text
// recommendations into a single JSON object with the booklet shape. The
// markup conventions match what the booklet renderer supports.
func formatterUserPrompt(in domain.PreferencesInput, recommendations string) string {
	return fmt.Sprintf(`Create a travel booklet for %s from the following recommendations:

%s

Format the response as a single JSON object with a "title", a "summary", and a "sections" array where each section has a "title" and markdown "content". In section content use:
- level-2 (##) and level-3 (###) headings
- bullet and numbered lists
- **bold** for emphasis
- > block quotes for callouts and tips
- --- horizontal rules between major topics`,
		in.Location, recommendations)
}

func notesOrNone(notes string) string {
	if notes == "" {
		return "None"
	}
	return notes
}
