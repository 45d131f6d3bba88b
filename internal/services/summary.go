package services

import (
	"easytrip/internal/models/response_models"
)

// Summarize recomputes the document's summary counts from scratch. It is a
// pure function of the cities and inter-city legs, so running it before and
// after a mutation always yields counts that match the current plan.
func Summarize(doc *response_models.ItineraryDocument) *response_models.Summary {
	counts := response_models.SummaryCounts{
		Flights: len(doc.InterCityTravel),
	}

	for _, city := range doc.Cities {
		if city.Hotel.Name != "" {
			counts.Hotels++
		}
		for _, day := range city.Recommendations {
			for _, activity := range day.Activities {
				switch {
				case activity.IsTransfer():
					counts.Transfers++
				case activity.Meal != "":
					counts.Meals++
				case !activity.IsCountAnchor():
					counts.Activities++
				}
			}
		}
	}

	return &response_models.Summary{Counts: counts}
}
