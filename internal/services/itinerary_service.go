package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"easytrip/internal/models/response_models"
	"easytrip/internal/repositories"
	"easytrip/pkg/memcache"
	"easytrip/pkg/utils"
)

const travelSystemPrompt = "You are a helpful travel assistant."

const lauraSystemPrompt = "You are Laura, an enthusiastic travel assistant. Generate one personalized feedback sentence."

const fallbackFeedback = "Perfect! I've got all your travel details and this is going to be an amazing trip - here's your personalized itinerary 🎉"

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, session *memcache.Session) *response_models.TurnResponse
	GetItinerary(ctx context.Context, sessionID string) (*response_models.ItineraryDocument, error)
}

type ItineraryService struct {
	assistant utils.AssistantClientInterface
	repo      repositories.IItineraryRepository
}

func NewItineraryService(
	assistant utils.AssistantClientInterface,
	repo repositories.IItineraryRepository,
) ItineraryServiceInterface {
	return &ItineraryService{
		assistant: assistant,
		repo:      repo,
	}
}

// GenerateItinerary builds the plan prompt from everything collected so far,
// parses the assistant's JSON into a document, derives the summary, attaches
// store metadata and persists. A parse failure produces an error turn and
// leaves the session's plan untouched.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, session *memcache.Session) *response_models.TurnResponse {
	days := ExtractTripDays(strings.Join(session.History, " "))
	prompt := buildPlanPrompt(session, days)

	raw, err := s.assistant.CompleteJSON(ctx, travelSystemPrompt, prompt)
	if err != nil {
		log.Printf("itinerary generation failed for session %s: %v", session.ID, err)
		return response_models.ErrorResponse("Itinerary generation is unavailable right now, please try again.", "")
	}

	var doc response_models.ItineraryDocument
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(raw)), &doc); err != nil {
		log.Printf("invalid itinerary JSON for session %s: %v", session.ID, err)
		return response_models.ErrorResponse("Invalid JSON from AI", raw)
	}

	doc.Summary = Summarize(&doc)
	FinalizeDocumentMetadata(&doc, session.ID)

	if err := s.repo.UpsertDocument(ctx, &doc); err != nil {
		log.Printf("itinerary upsert failed for session %s: %v", session.ID, err)
	}

	session.Result = &doc
	session.Ready = true

	feedback := s.generateFeedback(ctx, session)
	return response_models.ResultResponse([]string{feedback}, &doc, "Update Plan", "End Chat")
}

func (s *ItineraryService) GetItinerary(ctx context.Context, sessionID string) (*response_models.ItineraryDocument, error) {
	doc, err := s.repo.GetDocument(ctx, sessionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if doc == nil {
		return nil, utils.ErrItineraryNotFound
	}
	return doc, nil
}

func (s *ItineraryService) generateFeedback(ctx context.Context, session *memcache.Session) string {
	prompt := fmt.Sprintf(`Based on this travel conversation history: %s
Origin: %s

Generate ONE single enthusiastic sentence as Laura the travel assistant that:
- Acknowledges specific details from the user's input (destination, duration, travel style, etc.)
- Uses appropriate emojis
- Is conversational and excited
- Ends with "Here's your personalized itinerary 🎉"

Return just the sentence, no JSON format needed.`,
		strings.Join(session.History, " "), orUnknown(session.Origin))

	feedback, err := s.assistant.Complete(ctx, lauraSystemPrompt, prompt)
	if err != nil || strings.TrimSpace(feedback) == "" {
		return fallbackFeedback
	}
	return strings.TrimSpace(feedback)
}

// FinalizeDocumentMetadata stamps the store metadata on a document: the id
// mirrors the session id, and every write gets a fresh revision tag and
// timestamp for the store's optimistic-concurrency conventions.
func FinalizeDocumentMetadata(doc *response_models.ItineraryDocument, sessionID string) {
	doc.ID = sessionID
	doc.SessionID = sessionID
	doc.RID = uuid.New().String()
	doc.Self = fmt.Sprintf("dbs/%s/colls/%s/docs/%s/", sessionID, sessionID, sessionID)
	doc.ETag = fmt.Sprintf("%q", uuid.New().String())
	doc.Attachments = "attachments/"
	doc.TS = time.Now().Unix()
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown"
	}
	return s
}

func buildPlanPrompt(session *memcache.Session, days int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a travel assistant. Based on this user description:\n%s\n", strings.Join(session.History, " "))
	fmt.Fprintf(&b, "Origin city: %s\n", orUnknown(session.Origin))
	if session.Destination != "" {
		fmt.Fprintf(&b, "Destination: %s\n", session.Destination)
	}
	if session.Vibe != "" {
		fmt.Fprintf(&b, "Travel style: %s\n", session.Vibe)
	}
	if session.SceneTags != "" {
		fmt.Fprintf(&b, "Scenes the traveler is drawn to: %s\n", session.SceneTags)
	}
	if session.Accommodation != "" {
		fmt.Fprintf(&b, "Accommodation preference: %s\n", session.Accommodation)
	}
	if session.MovieWord != "" {
		fmt.Fprintf(&b, "One word that captures the trip: %s\n", session.MovieWord)
	}
	if session.Goals != "" {
		fmt.Fprintf(&b, "Additional preferences: %s\n", session.Goals)
	}

	b.WriteString(`Generate a travel itinerary in the following exact JSON format:
{
  "persona": "A short description of the traveler",
  "cities": [
    {
      "city_name": "City Name",
      "hotel": {
        "name": "Hotel Name",
        "address": "Full address",
        "latitude": 0.0,
        "longitude": 0.0,
        "check_in": "HH:MM AM/PM",
        "check_out": "HH:MM AM/PM",
        "why_recommended": "1-2 sentences explaining why this hotel is recommended"
      },
      "recommendations": [
        {
          "day": "Day X - Title",
          "arrival_time": "HH:MM AM/PM",
          "activities": [
            {
              "time": "HH:MM AM/PM",
              "action": "Arrival",
              "name": "Arrival at <Airport Name>",
              "address": "Airport full address",
              "latitude": 0.0,
              "longitude": 0.0,
              "travel_distance_from_previous": "0 km",
              "travel_time_from_previous": "0 mins",
              "highlights": "3-4 descriptive sentences about arriving at the airport and first impressions of the city.",
              "rating": 4.5,
              "reviews": {"Review 1": "Short user-style review.", "Review 2": "Another short user-style review."}
            }
          ]
        }
      ]
    }
  ],
  "inter_city_travel": [
    {
      "from_city": "Origin City",
      "to_city": "Destination City",
      "mode": "Flight/Train/Bus",
      "departure_time": "HH:MM AM/PM",
      "arrival_time": "HH:MM AM/PM",
      "travel_duration": "Xh Ym",
      "departure_point": {"name": "Station or Airport Name", "address": "Full address", "latitude": 0.0, "longitude": 0.0},
      "arrival_point": {"name": "Station or Airport Name", "address": "Full address", "latitude": 0.0, "longitude": 0.0}
    }
  ]
}
Rules:
- Output must be valid JSON only.
- Always include latitude and longitude.
- Always include hotel details inside each city.
- Always split airport arrival, airport-to-hotel transfer, and hotel check-in into separate activities, with action tags "Arrival", "Transfer", "Pre Check-in Activity", "Hotel Check-in".
- Hotel check-in must happen at the official time (usually 3:00 PM or the hotel's stated check-in time).
- If arrival is before check-in, plan activities between the airport transfer and official check-in. Do not leave gaps in the itinerary.
- Each day must end with the traveler returning to their hotel (action "Return to Hotel") or a nightlife spot near the hotel (action "Nightlife"), never stranded outside.
- Sightseeing activities carry no "action" field; meals carry a "meal" field of Breakfast, Lunch or Dinner instead and never an "action".
- Meals must only be: Breakfast (7-10 AM), Lunch (12-2 PM), Dinner (7-9 PM). Do not mark nightlife or clubs as meals.
- Always make activities chronological with realistic travel times and meal breaks.
- Always include both "travel_distance_from_previous" (in km) and "travel_time_from_previous".
- Keep travel times consistent with distances (e.g., 1 km is about a 10 min walk, 5 km about 15 mins by taxi).
- For each activity, include "highlights" with 3-4 travel-guide style sentences, a "rating" (decimal between 1.0 and 5.0) and a "reviews" object with "Review 1" and "Review 2".
- For sightseeing, meals and pre check-in activities, also include "carry" (practical items) where applicable and "why_recommended" (1-2 sentences).
- Avoid repeating the same place (except hotel check-in/check-out).
- Always include a full round trip: one inter_city_travel leg from the origin city to the destination city and one returning leg after the last day of the trip.
- Day 1 must always start with airport arrival, then transfer, then pre-check-in activities, then official hotel check-in.
- The last day must always end with hotel check-out (action "Hotel Check-out") and return to the airport or station (action "Departure").
`)
	fmt.Fprintf(&b, "- Create a %d-day plan.\n", days)

	return b.String()
}
