package service

import (
	"time"

	"github.com/acourtney/travel-booklet/internal/domain"
)

// ValidatePreferences checks a submitted preferences payload against the
// schema rules and returns a ValidationError listing every violated field,
// or nil when the input is acceptable. It has no side effects: the pipeline
// calls it before any upstream request is made.
//
// Interests, dining preferences, and activity level are only checked for
// presence, not membership in the UI vocabularies — clients may send their
// own values.
func ValidatePreferences(in domain.PreferencesInput) *domain.ValidationError {
	var fields []domain.FieldError

	add := func(field, message string) {
		fields = append(fields, domain.FieldError{Field: field, Message: message})
	}

	if in.Location == "" {
		add("location", "Location is required")
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch {
	case in.StartDate.IsZero():
		add("startDate", "Start date is required")
	case in.StartDate.Before(today):
		add("startDate", "Start date must be in the future")
	}

	switch {
	case in.EndDate.IsZero():
		add("endDate", "End date is required")
	case !in.StartDate.IsZero() && !in.EndDate.After(in.StartDate.Time):
		add("endDate", "End date must be after start date")
	}

	if len(in.Interests) == 0 {
		add("interests", "Select at least one interest")
	}
	if in.ActivityLevel == "" {
		add("activityLevel", "Activity level is required")
	}
	if len(in.DiningPreferences) == 0 {
		add("diningPreferences", "Select at least one dining preference")
	}
	if in.RestaurantBudget < domain.BudgetLow || in.RestaurantBudget > domain.BudgetHigh {
		add("restaurantBudget", "Restaurant budget must be between 1 and 3")
	}

	if len(fields) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: fields}
}
