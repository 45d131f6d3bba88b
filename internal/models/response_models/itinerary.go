package response_models

import "strings"

// Action tags used by the generator. Sightseeing activities carry no action
// tag at all, meal stops carry a "meal" tag instead.
const (
	ActionArrival       = "Arrival"
	ActionTransfer      = "Transfer"
	ActionPreCheckIn    = "Pre Check-in Activity"
	ActionHotelCheckIn  = "Hotel Check-in"
	ActionReturnToHotel = "Return to Hotel"
	ActionHotelCheckOut = "Hotel Check-out"
	ActionDeparture     = "Departure"
	ActionNightlife     = "Nightlife"
)

const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
)

type ItineraryDocument struct {
	Persona         string         `json:"persona"`
	Cities          []City         `json:"cities"`
	InterCityTravel []InterCityLeg `json:"inter_city_travel"`
	Summary         *Summary       `json:"summary,omitempty"`

	// Store metadata, kept compatible with the document store's
	// optimistic-concurrency conventions. ID always equals the session id.
	ID          string `json:"id,omitempty"`
	SessionID   string `json:"session_id,omitempty"`
	RID         string `json:"_rid,omitempty"`
	Self        string `json:"_self,omitempty"`
	ETag        string `json:"_etag,omitempty"`
	Attachments string `json:"_attachments,omitempty"`
	TS          int64  `json:"_ts,omitempty"`
}

type City struct {
	CityName        string    `json:"city_name"`
	Hotel           Hotel     `json:"hotel"`
	Recommendations []DayPlan `json:"recommendations"`
}

type Hotel struct {
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	CheckIn        string  `json:"check_in"`
	CheckOut       string  `json:"check_out"`
	WhyRecommended string  `json:"why_recommended"`
}

type DayPlan struct {
	Day         string     `json:"day"`
	ArrivalTime string     `json:"arrival_time,omitempty"`
	Activities  []Activity `json:"activities"`
}

type Activity struct {
	Time                       string            `json:"time"`
	Action                     string            `json:"action,omitempty"`
	Meal                       string            `json:"meal,omitempty"`
	Name                       string            `json:"name"`
	Address                    string            `json:"address"`
	Latitude                   float64           `json:"latitude"`
	Longitude                  float64           `json:"longitude"`
	TravelDistanceFromPrevious string            `json:"travel_distance_from_previous"`
	TravelTimeFromPrevious     string            `json:"travel_time_from_previous"`
	Highlights                 string            `json:"highlights,omitempty"`
	Carry                      string            `json:"carry,omitempty"`
	WhyRecommended             string            `json:"why_recommended,omitempty"`
	Rating                     float64           `json:"rating,omitempty"`
	Reviews                    map[string]string `json:"reviews,omitempty"`
}

type InterCityLeg struct {
	FromCity       string      `json:"from_city"`
	ToCity         string      `json:"to_city"`
	Mode           string      `json:"mode"`
	DepartureTime  string      `json:"departure_time"`
	ArrivalTime    string      `json:"arrival_time"`
	TravelDuration string      `json:"travel_duration"`
	DeparturePoint TravelPoint `json:"departure_point"`
	ArrivalPoint   TravelPoint `json:"arrival_point"`
}

type TravelPoint struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Summary struct {
	Counts SummaryCounts `json:"counts"`
}

type SummaryCounts struct {
	Flights    int `json:"flights"`
	Transfers  int `json:"transfers"`
	Hotels     int `json:"hotels"`
	Activities int `json:"activities"`
	Meals      int `json:"meals"`
}

// countAnchors are structural stops excluded from the "activities" count.
// Transfers are counted separately and are therefore not listed here.
var countAnchors = map[string]bool{
	ActionArrival:       true,
	ActionHotelCheckIn:  true,
	ActionReturnToHotel: true,
	ActionHotelCheckOut: true,
	ActionDeparture:     true,
}

// IsTransfer reports whether the activity is a transfer leg. The name check
// is a defensive fallback for generator output missing the action tag.
func (a Activity) IsTransfer() bool {
	return a.Action == ActionTransfer || strings.Contains(strings.ToLower(a.Name), "transfer")
}

// IsCountAnchor reports whether the activity is excluded from the
// "activities" summary count.
func (a Activity) IsCountAnchor() bool {
	return countAnchors[a.Action]
}

// IsStructural reports whether the activity anchors the day's shape and is
// therefore ineligible as a generic replacement target.
func (a Activity) IsStructural() bool {
	return a.IsCountAnchor() || a.Action == ActionTransfer
}

// CloneReviews returns a copy of the reviews map so a removed activity's
// slot set can be preserved independently of later mutations.
func (a Activity) CloneReviews() map[string]string {
	if a.Reviews == nil {
		return nil
	}
	out := make(map[string]string, len(a.Reviews))
	for slot, text := range a.Reviews {
		out[slot] = text
	}
	return out
}
