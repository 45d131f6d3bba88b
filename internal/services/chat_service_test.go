package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"easytrip/pkg/memcache"
)

func newChatFixture(assistant *fakeAssistant) (ChatServiceInterface, memcache.SessionStore, *fakeRepo) {
	store := memcache.NewSessionStore(time.Hour)
	repo := &fakeRepo{}
	itinerary := NewItineraryService(assistant, repo)
	editor := NewEditorService(assistant, repo)
	chat := NewChatService(store, assistant, itinerary, editor)
	return chat, store, repo
}

func TestGreetingAndModeSelection(t *testing.T) {
	chat, _, _ := newChatFixture(&fakeAssistant{})
	ctx := context.Background()

	resp := chat.HandleTurn(ctx, "s1", "")
	assert.Contains(t, resp.NextQuestion, "Laura")
	require.Len(t, resp.Options, 3)

	resp = chat.HandleTurn(ctx, "s1", "1")
	assert.Contains(t, resp.NextQuestion, "Tell me about the trip")
}

func TestFreeTextAtGreetingStartsItinerary(t *testing.T) {
	chat, store, _ := newChatFixture(&fakeAssistant{})
	ctx := context.Background()

	chat.HandleTurn(ctx, "s1", "")
	resp := chat.HandleTurn(ctx, "s1", "4 days in Tokyo with my partner")

	assert.Contains(t, resp.NextQuestion, "traveling from")
	session, ok := store.Get("s1")
	require.True(t, ok)
	assert.Equal(t, "itinerary", session.Mode)
	assert.Equal(t, "4 days in Tokyo with my partner", session.Destination)
}

func TestIntakeFlowThroughGeneration(t *testing.T) {
	planJSON, err := json.Marshal(sampleDocument())
	require.NoError(t, err)

	assistant := &fakeAssistant{
		completeJSONFn: func(system, prompt string) (string, error) {
			return string(planJSON), nil
		},
	}
	chat, store, repo := newChatFixture(assistant)
	ctx := context.Background()

	chat.HandleTurn(ctx, "s1", "")
	chat.HandleTurn(ctx, "s1", "Plan a trip")

	resp := chat.HandleTurn(ctx, "s1", "5 days in Bali")
	assert.Contains(t, resp.NextQuestion, "traveling from")

	resp = chat.HandleTurn(ctx, "s1", "Singapore")
	require.Len(t, resp.Options, 4)

	resp = chat.HandleTurn(ctx, "s1", "1")
	assert.Contains(t, resp.NextQuestion, "Bali")
	require.Len(t, resp.Options, 2)

	// One refinement round before generating.
	resp = chat.HandleTurn(ctx, "s1", "Add more preferences")
	assert.Contains(t, resp.NextQuestion, "scenes")
	resp = chat.HandleTurn(ctx, "s1", "beaches and old towns")
	require.Len(t, resp.Options, 2)

	resp = chat.HandleTurn(ctx, "s1", "Generate an itinerary")
	require.NotNil(t, resp.Done)
	assert.True(t, *resp.Done)
	require.NotNil(t, resp.Result)
	// Assistant prose failed, so the canned feedback line is used.
	assert.Equal(t, []string{fallbackFeedback}, resp.Feedback)

	doc := resp.Result
	require.NotNil(t, doc.Summary)
	assert.Equal(t, len(doc.Cities), doc.Summary.Counts.Hotels)
	assert.Equal(t, "s1", doc.ID)
	assert.NotEmpty(t, doc.ETag)
	assert.Equal(t, 1, repo.upserts)

	firstDay := doc.Cities[0].Recommendations[0]
	assert.Equal(t, "Arrival", firstDay.Activities[0].Action)
	lastDay := doc.Cities[0].Recommendations[len(doc.Cities[0].Recommendations)-1]
	assert.Equal(t, "Departure", lastDay.Activities[len(lastDay.Activities)-1].Action)

	session, ok := store.Get("s1")
	require.True(t, ok)
	assert.True(t, session.Ready)
	assert.Equal(t, "Singapore", session.Origin)
	assert.Equal(t, "beaches and old towns", session.SceneTags)

	// Once a plan exists, turns route to the editor.
	resp = chat.HandleTurn(ctx, "s1", "Remove Uluwatu Temple")
	require.NotNil(t, resp.Done)
	assert.True(t, *resp.Done)
	assert.Contains(t, resp.Feedback[0], "removed Uluwatu Temple")
}

func TestGenerationParseError(t *testing.T) {
	assistant := &fakeAssistant{
		completeJSONFn: func(system, prompt string) (string, error) {
			return "not json at all", nil
		},
	}
	chat, store, repo := newChatFixture(assistant)
	ctx := context.Background()

	chat.HandleTurn(ctx, "s1", "")
	chat.HandleTurn(ctx, "s1", "Plan a trip")
	chat.HandleTurn(ctx, "s1", "3 days in Lisbon")
	chat.HandleTurn(ctx, "s1", "Paris")
	chat.HandleTurn(ctx, "s1", "2")

	resp := chat.HandleTurn(ctx, "s1", "Generate an itinerary")

	require.NotNil(t, resp.Done)
	assert.False(t, *resp.Done)
	assert.Equal(t, "Invalid JSON from AI", resp.Error)
	assert.Equal(t, "not json at all", resp.Raw)
	assert.Equal(t, 0, repo.upserts)

	session, _ := store.Get("s1")
	assert.False(t, session.Ready)
	assert.Nil(t, session.Result)
}

func TestTravelStyleDescribeMyself(t *testing.T) {
	chat, store, _ := newChatFixture(&fakeAssistant{})
	ctx := context.Background()

	chat.HandleTurn(ctx, "s1", "")
	chat.HandleTurn(ctx, "s1", "Plan a trip")
	chat.HandleTurn(ctx, "s1", "a week in Greece")
	chat.HandleTurn(ctx, "s1", "Athens")

	resp := chat.HandleTurn(ctx, "s1", "4")
	assert.Contains(t, resp.NextQuestion, "own words")

	resp = chat.HandleTurn(ctx, "s1", "slow mornings, island hopping, no crowds")
	require.Len(t, resp.Options, 2)

	session, _ := store.Get("s1")
	assert.Equal(t, "slow mornings, island hopping, no crowds", session.Vibe)
}

func TestEndChatTerminatesSession(t *testing.T) {
	chat, store, _ := newChatFixture(&fakeAssistant{})
	ctx := context.Background()

	chat.HandleTurn(ctx, "s1", "")
	resp := chat.HandleTurn(ctx, "s1", "End chat")

	require.NotNil(t, resp.Done)
	assert.True(t, *resp.Done)

	session, _ := store.Get("s1")
	assert.True(t, session.Ended)

	resp = chat.HandleTurn(ctx, "s1", "hello again")
	assert.Contains(t, resp.NextQuestion, "ended")
}

func TestDestinationsModeFallsBackWithoutAssistant(t *testing.T) {
	chat, _, _ := newChatFixture(&fakeAssistant{})
	ctx := context.Background()

	chat.HandleTurn(ctx, "s1", "")
	resp := chat.HandleTurn(ctx, "s1", "2")
	assert.Contains(t, resp.NextQuestion, "destination")

	resp = chat.HandleTurn(ctx, "s1", "somewhere with beaches")
	assert.NotEmpty(t, resp.NextQuestion)
	assert.Contains(t, resp.Options, "Plan a trip")
}
