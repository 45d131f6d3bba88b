package services

import (
	"regexp"
	"strconv"
	"strings"

	"easytrip/internal/models/response_models"
)

// Keyword sets for request-type classification, checked in priority order:
// hotel first, then food (with meal-subtype refinement), then activity as
// the default fallback.
var (
	hotelKeywords = []string{
		"hotel", "accommodation", "stay somewhere", "resort", "lodge", "place to stay",
	}
	foodKeywords = []string{
		"restaurant", "food", "eat", "dining", "meal", "cafe", "cuisine",
		"breakfast", "lunch", "dinner", "brunch",
	}
	breakfastKeywords = []string{"breakfast", "brunch", "morning meal"}
	lunchKeywords     = []string{"lunch", "midday meal"}
)

// ClassifyItemType maps an edit request onto the closed item-type enum.
// Classification is deterministic: same text, same answer.
func ClassifyItemType(text string) response_models.ItemType {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return response_models.ItemTypeNone
	}

	if containsAny(lower, hotelKeywords) {
		return response_models.ItemTypeHotel
	}
	if containsAny(lower, foodKeywords) {
		switch {
		case containsAny(lower, breakfastKeywords):
			return response_models.ItemTypeBreakfast
		case containsAny(lower, lunchKeywords):
			return response_models.ItemTypeLunch
		default:
			return response_models.ItemTypeDinner
		}
	}
	return response_models.ItemTypeActivity
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// ActivityRef addresses one activity inside a document.
type ActivityRef struct {
	City     int
	Day      int
	Activity int
}

// LocateActivity finds the first activity whose name contains target,
// case-insensitively, scanning cities and days in document order. First
// match wins; there is deliberately no best-match scoring.
func LocateActivity(doc *response_models.ItineraryDocument, target string) (ActivityRef, bool) {
	needle := strings.ToLower(strings.TrimSpace(target))
	if needle == "" {
		return ActivityRef{}, false
	}

	for cityIdx, city := range doc.Cities {
		for dayIdx, day := range city.Recommendations {
			for actIdx, activity := range day.Activities {
				if strings.Contains(strings.ToLower(activity.Name), needle) {
					return ActivityRef{City: cityIdx, Day: dayIdx, Activity: actIdx}, true
				}
			}
		}
	}
	return ActivityRef{}, false
}

var dayNumberRe = regexp.MustCompile(`\d+`)

// ParseDayReference extracts the 1-based day number from text like
// "day 2" or "regenerate the 3rd day". Returns 0 when no number is present.
func ParseDayReference(text string) int {
	match := dayNumberRe.FindString(text)
	if match == "" {
		return 0
	}
	day, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return day
}

var tripDaysRe = regexp.MustCompile(`(\d+)\s*(day|days|night|nights)`)

// ExtractTripDays pulls the requested trip length out of conversation text,
// defaulting to 3 when the user never said.
func ExtractTripDays(text string) int {
	match := tripDaysRe.FindStringSubmatch(strings.ToLower(text))
	if len(match) > 1 {
		if days, err := strconv.Atoi(match[1]); err == nil && days > 0 {
			return days
		}
	}
	return 3
}
