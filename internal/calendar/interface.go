package calendar

import (
	"context"

	"synctracker/internal/model"
)

// UseCase defines the business logic interface for the calendar domain.
type UseCase interface {
	// Availability returns busy intervals and free slots for a date range.
	Availability(ctx context.Context, sc model.Scope, input AvailabilityInput) (AvailabilityOutput, error)

	// ExportICal renders the user's scheduled tasks as an iCalendar feed.
	ExportICal(ctx context.Context, sc model.Scope) (ExportOutput, error)
}
