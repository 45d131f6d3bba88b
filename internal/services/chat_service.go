package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"easytrip/internal/models/response_models"
	"easytrip/pkg/memcache"
	"easytrip/pkg/utils"
)

const greetingQuestion = "Hi, I'm Laura! 👋 I can help you plan a full trip, explore destinations, or answer travel questions. What would you like to do?"

const closingMessage = "Thanks for planning with me - have an amazing trip! 👋"

var modeOptions = []string{"Plan a trip", "Explore destinations", "Travel support"}

var travelStyleOptions = []string{
	"Solo Traveler - no specific requirements",
	"Family Vacation - with fun, food at the beach",
	"Perfect girls trip - to any beach destination",
	"None of these. I'll describe my trip myself",
}

// Exact-match command sets. Matching is on the trimmed, lowercased answer so
// option clicks and typed shorthand behave the same.
var generateCommands = map[string]bool{
	"1":                                  true,
	"generate persona":                   true,
	"generate persona & recommendations": true,
	"persona":                            true,
	"generate an itinerary":              true,
	"itinerary":                          true,
	"generate itinerary":                 true,
}

var morePreferencesCommands = map[string]bool{
	"2":                    true,
	"ask another":          true,
	"ask another question": true,
	"add more preferences": true,
	"preferences":          true,
	"more preferences":     true,
}

var endCommands = map[string]bool{
	"end chat":           true,
	"end the chat":       true,
	"proceed to booking": true,
	"save for callback":  true,
}

type ChatServiceInterface interface {
	HandleTurn(ctx context.Context, sessionID, answer string) *response_models.TurnResponse
}

type ChatService struct {
	store     memcache.SessionStore
	assistant utils.AssistantClientInterface
	itinerary ItineraryServiceInterface
	editor    EditorServiceInterface
}

func NewChatService(
	store memcache.SessionStore,
	assistant utils.AssistantClientInterface,
	itinerary ItineraryServiceInterface,
	editor EditorServiceInterface,
) ChatServiceInterface {
	return &ChatService{
		store:     store,
		assistant: assistant,
		itinerary: itinerary,
		editor:    editor,
	}
}

// HandleTurn advances one conversation by one turn. The session is looked up
// (or created) by id, mutated in place, and re-put to refresh its eviction
// deadline.
func (s *ChatService) HandleTurn(ctx context.Context, sessionID, answer string) *response_models.TurnResponse {
	session, created := s.store.GetOrCreate(sessionID)
	defer s.store.Put(sessionID, session)

	answer = strings.TrimSpace(answer)
	lower := strings.ToLower(answer)

	if session.Ended {
		return response_models.QuestionResponse("This chat has ended. Start a new session whenever you're ready to plan another trip! 👋")
	}

	if endCommands[lower] {
		session.Ended = true
		done := true
		return &response_models.TurnResponse{Done: &done, Feedback: []string{closingMessage}}
	}

	if created || answer == "" {
		return response_models.QuestionResponse(greetingQuestion, modeOptions...)
	}

	if session.Mode == "" {
		return s.selectMode(ctx, session, answer, lower)
	}

	switch session.Mode {
	case "destinations":
		return s.answerDestinations(ctx, answer)
	case "support":
		return s.answerSupport(ctx, answer)
	default:
		return s.handleItineraryTurn(ctx, session, answer, lower)
	}
}

func (s *ChatService) selectMode(ctx context.Context, session *memcache.Session, answer, lower string) *response_models.TurnResponse {
	switch {
	case lower == "1" || strings.Contains(lower, "plan"):
		session.Mode = "itinerary"
		return response_models.QuestionResponse("Awesome! Tell me about the trip you have in mind - where to, how long, what vibe? ✈️")
	case lower == "2" || strings.Contains(lower, "destination") || strings.Contains(lower, "explore"):
		session.Mode = "destinations"
		return response_models.QuestionResponse("Great! What kind of destination are you curious about - beaches, cities, mountains?")
	case lower == "3" || strings.Contains(lower, "support") || strings.Contains(lower, "question"):
		session.Mode = "support"
		return response_models.QuestionResponse("Sure! What travel question can I help you with?")
	default:
		// Free text at the greeting is taken as the trip description itself.
		session.Mode = "itinerary"
		return s.handleItineraryTurn(ctx, session, answer, lower)
	}
}

func (s *ChatService) handleItineraryTurn(ctx context.Context, session *memcache.Session, answer, lower string) *response_models.TurnResponse {
	session.History = append(session.History, answer)

	if session.Ready {
		return s.editor.HandleEditTurn(ctx, session, answer)
	}

	switch {
	case session.ExpectingOrigin:
		session.Origin = answer
		session.ExpectingOrigin = false
		session.ExpectingTravelStyle = true
		return response_models.QuestionResponse("Which of these sounds most like your trip?", travelStyleOptions...)

	case session.ExpectingTravelStyle:
		session.ExpectingTravelStyle = false
		style, describeOwn := resolveTravelStyle(answer, lower)
		if describeOwn {
			session.ExpectingRefine = "vibe"
			return response_models.QuestionResponse("No problem! Describe your trip in your own words ✍️")
		}
		session.Vibe = style
		return s.askGenerateOrRefine(session)

	case session.ExpectingRefine != "":
		// A generate command wins even mid-refinement.
		if generateCommands[lower] {
			session.ExpectingRefine = ""
			return s.itinerary.GenerateItinerary(ctx, session)
		}
		s.captureRefineAnswer(session, answer)
		return s.askGenerateOrRefine(session)

	case session.Destination == "":
		session.Destination = answer
		session.ExpectingOrigin = true
		return response_models.QuestionResponse("Sounds exciting! Where will you be traveling from? 🛫")

	default:
		switch {
		case generateCommands[lower]:
			return s.itinerary.GenerateItinerary(ctx, session)
		case morePreferencesCommands[lower]:
			return s.askRefineQuestion(ctx, session)
		default:
			// Unprompted extra detail counts as a preference.
			if session.Goals == "" {
				session.Goals = answer
			} else {
				session.Goals += "; " + answer
			}
			return s.askGenerateOrRefine(session)
		}
	}
}

func resolveTravelStyle(answer, lower string) (style string, describeOwn bool) {
	switch lower {
	case "1":
		return travelStyleOptions[0], false
	case "2":
		return travelStyleOptions[1], false
	case "3":
		return travelStyleOptions[2], false
	case "4":
		return "", true
	}
	if strings.Contains(lower, "none of these") || strings.Contains(lower, "describe my trip") {
		return "", true
	}
	for _, option := range travelStyleOptions[:3] {
		if strings.Contains(strings.ToLower(option), lower) || strings.Contains(lower, strings.ToLower(option)) {
			return option, false
		}
	}
	return answer, false
}

func (s *ChatService) askGenerateOrRefine(session *memcache.Session) *response_models.TurnResponse {
	session.ExpectingRefine = ""
	return response_models.QuestionResponse(
		fmt.Sprintf("Got it, %s! Shall I go ahead and generate your itinerary, or would you like to add more preferences first?", session.Destination),
		"Generate an itinerary", "Add more preferences")
}

// askRefineQuestion walks the fixed refinement queue, then falls through to
// assistant-generated clarifying questions once the scripted ones run out.
func (s *ChatService) askRefineQuestion(ctx context.Context, session *memcache.Session) *response_models.TurnResponse {
	step := session.RefineStep
	session.RefineStep++

	switch step {
	case 0:
		session.ExpectingRefine = "scene"
		return response_models.QuestionResponse("What kind of scenes are you drawn to - beaches, mountains, city lights, old towns? 🏞️")
	case 1:
		session.ExpectingRefine = "accommodation"
		return response_models.QuestionResponse("What kind of place would you love to stay at - a resort, a boutique hotel, somewhere local?")
	case 2:
		session.ExpectingRefine = "movie"
		return response_models.QuestionResponse("If your trip were a movie, what one word would describe it? 🎬")
	default:
		session.ExpectingRefine = "goals"
		session.AskedAnother = !session.AskedAnother
		question := s.clarifyingQuestion(ctx, session)
		return response_models.QuestionResponse(question)
	}
}

func (s *ChatService) clarifyingQuestion(ctx context.Context, session *memcache.Session) string {
	prompt := fmt.Sprintf(`Based on this travel conversation so far: %s
Ask ONE short, friendly clarifying question that would help personalize the itinerary further.
Do not repeat a question already asked. Return just the question.`,
		strings.Join(session.History, " "))

	question, err := s.assistant.Complete(ctx, lauraSystemPrompt, prompt)
	if err != nil || strings.TrimSpace(question) == "" {
		log.Printf("clarifying question fallback for session %s: %v", session.ID, err)
		return "Is there anything else that would make this trip perfect for you?"
	}
	return strings.TrimSpace(question)
}

func (s *ChatService) captureRefineAnswer(session *memcache.Session, answer string) {
	switch session.ExpectingRefine {
	case "vibe":
		session.Vibe = answer
	case "scene":
		session.SceneTags = answer
	case "accommodation":
		session.Accommodation = answer
	case "movie":
		session.MovieWord = answer
	default:
		if session.Goals == "" {
			session.Goals = answer
		} else {
			session.Goals += "; " + answer
		}
	}
	session.ExpectingRefine = ""
}

func (s *ChatService) answerDestinations(ctx context.Context, answer string) *response_models.TurnResponse {
	prompt := fmt.Sprintf(`A traveler exploring destination ideas asked: "%s".
Suggest 3 destinations that fit, each with one sentence on why. Keep it short and friendly.`, answer)

	reply, err := s.assistant.Complete(ctx, travelSystemPrompt, prompt)
	if err != nil || strings.TrimSpace(reply) == "" {
		reply = "Some crowd-pleasers: Bali for beaches and temples, Lisbon for food and old-town charm, Kyoto for culture and gardens."
	}
	return response_models.QuestionResponse(strings.TrimSpace(reply), "Plan a trip", "End Chat")
}

func (s *ChatService) answerSupport(ctx context.Context, answer string) *response_models.TurnResponse {
	prompt := fmt.Sprintf(`A traveler asked this travel support question: "%s".
Answer helpfully in 2-3 sentences. If it needs official or airline-specific info, say so.`, answer)

	reply, err := s.assistant.Complete(ctx, travelSystemPrompt, prompt)
	if err != nil || strings.TrimSpace(reply) == "" {
		reply = "I couldn't fetch an answer just now - for booking or document questions, your airline or embassy website is the safest source."
	}
	return response_models.QuestionResponse(strings.TrimSpace(reply), "Plan a trip", "End Chat")
}
