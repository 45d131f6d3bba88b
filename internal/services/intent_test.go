package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"easytrip/internal/models/response_models"
)

func TestClassifyItemType(t *testing.T) {
	cases := []struct {
		text string
		want response_models.ItemType
	}{
		{"", response_models.ItemTypeNone},
		{"Can you suggest a better hotel?", response_models.ItemTypeHotel},
		{"somewhere nice for dinner", response_models.ItemTypeDinner},
		{"any good breakfast ideas", response_models.ItemTypeBreakfast},
		{"a casual lunch place", response_models.ItemTypeLunch},
		{"recommend a good restaurant", response_models.ItemTypeDinner},
		{"something fun to do", response_models.ItemTypeActivity},
		// Hotel wins over food when both appear.
		{"a hotel with a great restaurant", response_models.ItemTypeHotel},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyItemType(tc.text), "text: %q", tc.text)
	}
}

func TestLocateActivityFirstMatchWins(t *testing.T) {
	doc := sampleDocument()

	// "Beach" appears in both the transfer-free walk on day 1 and nowhere
	// else; add a second match later to prove document order decides.
	doc.Cities[0].Recommendations[1].Activities[1].Name = "Sanur Beach Swim"

	ref, ok := LocateActivity(doc, "beach")
	assert.True(t, ok)
	assert.Equal(t, ActivityRef{City: 0, Day: 0, Activity: 3}, ref)
}

func TestLocateActivityCaseInsensitive(t *testing.T) {
	doc := sampleDocument()

	ref, ok := LocateActivity(doc, "ULUWATU temple")
	assert.True(t, ok)
	assert.Equal(t, ActivityRef{City: 0, Day: 1, Activity: 2}, ref)
}

func TestLocateActivityNotFound(t *testing.T) {
	doc := sampleDocument()

	_, ok := LocateActivity(doc, "Eiffel Tower")
	assert.False(t, ok)

	_, ok = LocateActivity(doc, "   ")
	assert.False(t, ok)
}

func TestParseDayReference(t *testing.T) {
	assert.Equal(t, 2, ParseDayReference("day 2"))
	assert.Equal(t, 3, ParseDayReference("regenerate the 3rd day"))
	assert.Equal(t, 0, ParseDayReference("tomorrow"))
}

func TestExtractTripDays(t *testing.T) {
	assert.Equal(t, 5, ExtractTripDays("5 days in Bali with my family"))
	assert.Equal(t, 2, ExtractTripDays("just 2 nights somewhere warm"))
	assert.Equal(t, 3, ExtractTripDays("a relaxed getaway"))
}
