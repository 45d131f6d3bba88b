package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEditActionsReplaceHotel(t *testing.T) {
	actions := ParseEditActions("Change the hotel to Hilton Garden Inn")

	require.Len(t, actions, 1)
	assert.Equal(t, ActionReplaceHotel, actions[0].Kind)
	assert.Equal(t, "Hilton Garden Inn", actions[0].Name)
}

func TestParseEditActionsReplaceWith(t *testing.T) {
	actions := ParseEditActions("Replace Kuta Beach with a cooking class")

	require.Len(t, actions, 2)
	assert.Equal(t, ActionRemove, actions[0].Kind)
	assert.Equal(t, "Kuta Beach", actions[0].Target)
	assert.Equal(t, ActionAdd, actions[1].Kind)
	assert.Equal(t, "cooking class", actions[1].Name)
}

func TestParseEditActionsInsteadOf(t *testing.T) {
	actions := ParseEditActions("Instead of the temple, visit a waterfall")

	require.Len(t, actions, 2)
	assert.Equal(t, ActionRemove, actions[0].Kind)
	assert.Equal(t, "temple", actions[0].Target)
	assert.Equal(t, ActionAdd, actions[1].Kind)
	assert.Equal(t, "waterfall", actions[1].Name)
}

func TestParseEditActionsRegenerate(t *testing.T) {
	actions := ParseEditActions("Regenerate day 2")

	require.Len(t, actions, 1)
	assert.Equal(t, ActionRegenerate, actions[0].Kind)
	assert.Equal(t, 2, ParseDayReference(actions[0].DayRef))
}

func TestParseEditActionsRemove(t *testing.T) {
	actions := ParseEditActions("Remove the beach walk.")

	require.Len(t, actions, 1)
	assert.Equal(t, ActionRemove, actions[0].Kind)
	assert.Equal(t, "beach walk", actions[0].Target)
}

func TestParseEditActionsAddWithLocationHint(t *testing.T) {
	actions := ParseEditActions("Add a sushi bar near the hotel")

	require.Len(t, actions, 1)
	assert.Equal(t, ActionAdd, actions[0].Kind)
	assert.Equal(t, "sushi bar", actions[0].Name)
	assert.Equal(t, "the hotel", actions[0].AddressHint)
}

func TestParseEditActionsUnrecognized(t *testing.T) {
	assert.Empty(t, ParseEditActions("the weather is lovely"))
	assert.Empty(t, ParseEditActions(""))
}

func TestWantsSuggestions(t *testing.T) {
	assert.True(t, WantsSuggestions("Can you suggest a better dinner spot?"))
	assert.True(t, WantsSuggestions("what about something else"))
	assert.True(t, WantsSuggestions("I was thinking we could maybe find some other really nice things to do around there"))

	// Explicit commands must not be hijacked by the suggestion heuristic.
	assert.False(t, WantsSuggestions("Remove the beach walk"))
	assert.False(t, WantsSuggestions("Regenerate day 2"))
}

func TestParseReplaceTarget(t *testing.T) {
	assert.Equal(t, "Jimbaran Seafood", ParseReplaceTarget("Replace Jimbaran Seafood on Day 1 - Arrival"))
	assert.Equal(t, "Warung Made", ParseReplaceTarget("replace Warung Made (the lunch spot)"))
	assert.Equal(t, "Grand Bali Hotel", ParseReplaceTarget("Replace Grand Bali Hotel"))
	assert.Equal(t, "", ParseReplaceTarget("the second one"))
}
