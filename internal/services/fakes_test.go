package services

import (
	"context"
	"errors"

	"easytrip/internal/models/response_models"
)

// fakeAssistant fails every call unless a hook is installed, which drives the
// services down their deterministic fallback paths.
type fakeAssistant struct {
	completeFn     func(system, prompt string) (string, error)
	completeJSONFn func(system, prompt string) (string, error)
}

func (f *fakeAssistant) Complete(_ context.Context, system, prompt string) (string, error) {
	if f.completeFn != nil {
		return f.completeFn(system, prompt)
	}
	return "", errors.New("assistant unavailable")
}

func (f *fakeAssistant) CompleteJSON(_ context.Context, system, prompt string) (string, error) {
	if f.completeJSONFn != nil {
		return f.completeJSONFn(system, prompt)
	}
	return "", errors.New("assistant unavailable")
}

type fakeRepo struct {
	upserts int
	last    *response_models.ItineraryDocument
}

func (f *fakeRepo) UpsertDocument(_ context.Context, doc *response_models.ItineraryDocument) error {
	f.upserts++
	f.last = doc
	return nil
}

func (f *fakeRepo) GetDocument(_ context.Context, sessionID string) (*response_models.ItineraryDocument, error) {
	if f.last != nil && f.last.ID == sessionID {
		return f.last, nil
	}
	return nil, nil
}

func sampleDocument() *response_models.ItineraryDocument {
	return &response_models.ItineraryDocument{
		Persona: "A beach-loving foodie",
		Cities: []response_models.City{
			{
				CityName: "Bali",
				Hotel: response_models.Hotel{
					Name:     "Grand Bali Hotel",
					Address:  "Jl. Pantai Kuta 1, Kuta, Bali",
					Latitude: -8.72, Longitude: 115.17,
					CheckIn: "3:00 PM", CheckOut: "11:00 AM",
					WhyRecommended: "Steps from the beach with great reviews.",
				},
				Recommendations: []response_models.DayPlan{
					{
						Day:         "Day 1 - Arrival",
						ArrivalTime: "10:00 AM",
						Activities: []response_models.Activity{
							{Time: "10:00 AM", Action: response_models.ActionArrival, Name: "Arrival at Ngurah Rai Airport", Address: "Tuban, Bali", Latitude: -8.74, Longitude: 115.16},
							{Time: "10:45 AM", Action: response_models.ActionTransfer, Name: "Transfer from Airport to Grand Bali Hotel", Address: "Jl. Pantai Kuta 1, Kuta, Bali", Latitude: -8.72, Longitude: 115.17},
							{Time: "12:30 PM", Meal: response_models.MealLunch, Name: "Warung Made", Address: "Jl. Raya Kuta, Bali", Latitude: -8.71, Longitude: 115.17,
								Highlights: "A Kuta institution serving Balinese classics.", Rating: 4.4,
								Reviews: map[string]string{"Review 1": "Loved the nasi campur!", "Review 2": "Great value."}},
							{Time: "2:00 PM", Name: "Beach Walk at Kuta Beach", Address: "Kuta Beach, Bali", Latitude: -8.72, Longitude: 115.17,
								TravelDistanceFromPrevious: "1 km", TravelTimeFromPrevious: "10 mins walk",
								Highlights: "Golden sand and famous sunsets.", Carry: "Sunscreen, hat, water bottle",
								WhyRecommended: "The classic first stop in Kuta.", Rating: 4.6,
								Reviews: map[string]string{"Review 1": "Beautiful sunset.", "Review 2": "Crowded but fun."}},
							{Time: "3:00 PM", Action: response_models.ActionHotelCheckIn, Name: "Grand Bali Hotel", Address: "Jl. Pantai Kuta 1, Kuta, Bali", Latitude: -8.72, Longitude: 115.17},
							{Time: "7:30 PM", Meal: response_models.MealDinner, Name: "Jimbaran Seafood", Address: "Jimbaran Bay, Bali", Latitude: -8.79, Longitude: 115.16,
								Highlights: "Grilled seafood on the sand.", Rating: 4.5,
								Reviews: map[string]string{"Review 1": "Fresh fish, great view.", "Review 2": "Romantic spot."}},
							{Time: "9:30 PM", Action: response_models.ActionReturnToHotel, Name: "Grand Bali Hotel", Address: "Jl. Pantai Kuta 1, Kuta, Bali", Latitude: -8.72, Longitude: 115.17},
						},
					},
					{
						Day: "Day 2 - Ubud and Departure",
						Activities: []response_models.Activity{
							{Time: "8:00 AM", Meal: response_models.MealBreakfast, Name: "Ubud Cafe", Address: "Ubud, Bali", Latitude: -8.51, Longitude: 115.26,
								Reviews: map[string]string{"Review 1": "Best smoothie bowls.", "Review 2": "Lovely garden."}},
							{Time: "9:30 AM", Name: "Tegalalang Rice Terrace", Address: "Tegalalang, Bali", Latitude: -8.43, Longitude: 115.28,
								Highlights: "Iconic terraced paddies.", Carry: "Camera, comfortable shoes", Rating: 4.7,
								Reviews: map[string]string{"Review 1": "Stunning views.", "Review 2": "Go early."}},
							{Time: "12:00 PM", Name: "Uluwatu Temple", Address: "Pecatu, Bali", Latitude: -8.83, Longitude: 115.08,
								Highlights: "Clifftop temple above the ocean.", Rating: 4.6,
								Reviews: map[string]string{"Review 1": "Watch your hat, monkeys!", "Review 2": "Breathtaking."}},
							{Time: "2:00 PM", Action: response_models.ActionHotelCheckOut, Name: "Grand Bali Hotel", Address: "Jl. Pantai Kuta 1, Kuta, Bali", Latitude: -8.72, Longitude: 115.17},
							{Time: "4:00 PM", Action: response_models.ActionDeparture, Name: "Departure from Ngurah Rai Airport", Address: "Tuban, Bali", Latitude: -8.74, Longitude: 115.16},
						},
					},
				},
			},
		},
		InterCityTravel: []response_models.InterCityLeg{
			{FromCity: "Singapore", ToCity: "Bali", Mode: "Flight", DepartureTime: "7:00 AM", ArrivalTime: "10:00 AM", TravelDuration: "2h 40m"},
			{FromCity: "Bali", ToCity: "Singapore", Mode: "Flight", DepartureTime: "6:00 PM", ArrivalTime: "8:40 PM", TravelDuration: "2h 40m"},
		},
	}
}
