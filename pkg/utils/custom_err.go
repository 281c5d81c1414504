package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidPage         = errors.New("invalid page parameter")
	ErrInvalidPageSize     = errors.New("invalid page size parameter")
	ErrInvalidBudgetLevel  = errors.New("invalid budget level")
	ErrInvalidDuration     = errors.New("invalid duration")
	ErrInvalidTravelers    = errors.New("invalid travelers count")
	ErrInvalidStartDate    = errors.New("invalid start date")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrItineraryNotFound   = errors.New("itinerary not found")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrDatabaseError       = errors.New("database error")
	ErrAIUnavailable       = errors.New("ai provider unavailable")
)
