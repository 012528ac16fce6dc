package services

import (
	"strings"

	"github.com/ayushijadhav2006/smile-share/functions/gateway/helpers"
	internal_types "github.com/ayushijadhav2006/smile-share/functions/gateway/types"
)

// ApplyFilters runs the conjunctive filter pipeline over a snapshot. Each
// stage narrows the previous stage's output; snapshot iteration order is
// preserved and the snapshot itself is never mutated, so identical inputs
// always produce identical output.
func ApplyFilters(snapshot *internal_types.CatalogSnapshot, criteria internal_types.FilterCriteria) []internal_types.Activity {
	results := filterByDateWindow(snapshot.Activities, criteria.DateWindow)

	if criteria.Query != "" {
		query := strings.ToLower(criteria.Query)
		results = filterActivities(results, func(activity internal_types.Activity) bool {
			ngoName := resolveNgoName(snapshot, activity.NgoId)
			return strings.Contains(strings.ToLower(activity.EventName), query) ||
				strings.Contains(strings.ToLower(ngoName), query) ||
				strings.Contains(strings.ToLower(activity.ShortDescription), query)
		})
	}

	if criteria.Category != "" {
		results = filterActivities(results, func(activity internal_types.Activity) bool {
			return strings.EqualFold(activity.Category, criteria.Category)
		})
	}

	if criteria.Location != "" {
		results = filterActivities(results, func(activity internal_types.Activity) bool {
			return strings.EqualFold(activity.Location.Address, criteria.Location)
		})
	}

	if criteria.MinRating > 0 {
		results = filterActivities(results, func(activity internal_types.Activity) bool {
			return effectiveRating(snapshot, activity) >= criteria.MinRating
		})
	}

	return results
}

// SuggestActivities returns up to SUGGESTION_LIMIT activities whose event
// name contains the typed prefix, in source order. An empty or whitespace
// prefix yields no suggestions rather than the whole catalog.
func SuggestActivities(activities []internal_types.Activity, prefix string) []internal_types.Activity {
	input := strings.ToLower(strings.TrimSpace(prefix))
	suggestions := make([]internal_types.Activity, 0, helpers.SUGGESTION_LIMIT)
	if input == "" {
		return suggestions
	}

	for _, activity := range activities {
		if strings.Contains(strings.ToLower(activity.EventName), input) {
			suggestions = append(suggestions, activity)
			if len(suggestions) == helpers.SUGGESTION_LIMIT {
				break
			}
		}
	}
	return suggestions
}

func filterByDateWindow(activities []internal_types.Activity, window string) []internal_types.Activity {
	today := Today()

	switch window {
	case internal_types.DateWindowUpcoming:
		return filterActivities(activities, func(activity internal_types.Activity) bool {
			return !activity.EventDay.IsZero() && !activity.EventDay.Before(today)
		})
	case internal_types.DateWindowOngoing:
		return filterActivities(activities, func(activity internal_types.Activity) bool {
			return activity.EventDay.Equal(today)
		})
	case internal_types.DateWindowPast:
		return filterActivities(activities, func(activity internal_types.Activity) bool {
			return !activity.EventDay.IsZero() && activity.EventDay.Before(today)
		})
	default:
		// no window selected, pass the snapshot through as-is
		results := make([]internal_types.Activity, len(activities))
		copy(results, activities)
		return results
	}
}

func filterActivities(activities []internal_types.Activity, keep func(internal_types.Activity) bool) []internal_types.Activity {
	results := make([]internal_types.Activity, 0, len(activities))
	for _, activity := range activities {
		if keep(activity) {
			results = append(results, activity)
		}
	}
	return results
}

func resolveNgoName(snapshot *internal_types.CatalogSnapshot, ngoId string) string {
	if ngoId == "" {
		return ""
	}
	if organization, ok := snapshot.Organizations[ngoId]; ok {
		return organization.NgoName
	}
	return ""
}

// effectiveRating prefers the organization's rating, falls back to the
// rating stored on the activity itself, and treats everything else as 0.
func effectiveRating(snapshot *internal_types.CatalogSnapshot, activity internal_types.Activity) float64 {
	if activity.NgoId != "" {
		if organization, ok := snapshot.Organizations[activity.NgoId]; ok && organization.Rating != nil {
			return *organization.Rating
		}
	}
	if activity.NgoRating > 0 {
		return activity.NgoRating
	}
	return 0
}
