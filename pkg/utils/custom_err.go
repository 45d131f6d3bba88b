package utils

import "errors"

var (
	ErrGenerationParse     = errors.New("assistant returned invalid itinerary JSON")
	ErrExternalUnavailable = errors.New("assistant service unavailable")
	ErrOutOfRangeReference = errors.New("day reference out of range")
	ErrNoActionRecognized  = errors.New("no recognized action in request")
	ErrItineraryNotFound   = errors.New("itinerary not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrDatabaseError       = errors.New("database error")
)
