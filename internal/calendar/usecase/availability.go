package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"synctracker/internal/calendar"
	"synctracker/internal/cycle"
	"synctracker/internal/model"
	"synctracker/internal/scheduler"
)

const (
	defaultSlotMinutes = 60
	maxRangeDays       = 31
)

// Availability reports busy intervals and free slots per day in the
// requested range. Days are annotated with the cycle phase when the
// user has cycle data; without it the phase is left empty.
func (uc *implUseCase) Availability(ctx context.Context, sc model.Scope, input calendar.AvailabilityInput) (calendar.AvailabilityOutput, error) {
	if input.To.Before(input.From) {
		return calendar.AvailabilityOutput{}, fmt.Errorf("%w: to precedes from", calendar.ErrInvalidRange)
	}
	if input.To.Sub(input.From) > maxRangeDays*24*time.Hour {
		return calendar.AvailabilityOutput{}, fmt.Errorf("%w: range exceeds %d days", calendar.ErrInvalidRange, maxRangeDays)
	}

	duration := input.DurationMinutes
	if duration <= 0 {
		duration = defaultSlotMinutes
	}

	anchor, err := uc.anchors.GetAnchor(ctx, sc.UserID)
	hasAnchor := err == nil
	if err != nil && !errors.Is(err, cycle.ErrAnchorNotFound) {
		return calendar.AvailabilityOutput{}, err
	}

	hours := uc.workingHours()
	var out calendar.AvailabilityOutput
	for day := input.From; !day.After(input.To); day = day.AddDate(0, 0, 1) {
		from := time.Date(day.Year(), day.Month(), day.Day(), hours.Start, 0, 0, 0, day.Location())
		to := time.Date(day.Year(), day.Month(), day.Day(), hours.End, 0, 0, 0, day.Location())

		busy, err := uc.fetchBusy(ctx, from, to)
		if err != nil {
			return calendar.AvailabilityOutput{}, fmt.Errorf("fetch busy intervals for %s: %w",
				day.Format("2006-01-02"), err)
		}

		entry := calendar.DayAvailability{
			Date: day,
			Busy: busy,
			Free: scheduler.FindSlots(day, busy, duration, hours),
		}
		if hasAnchor {
			profile, _ := uc.resolver.Resolve(anchor, day)
			entry.Phase = string(profile.Phase)
		}
		out.Days = append(out.Days, entry)
	}

	return out, nil
}

func (uc *implUseCase) fetchBusy(ctx context.Context, from, to time.Time) ([]scheduler.BusyInterval, error) {
	if uc.busy == nil {
		return nil, nil
	}
	return uc.busy.BusyIntervals(ctx, from, to)
}
