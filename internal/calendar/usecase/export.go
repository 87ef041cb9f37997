package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"synctracker/internal/calendar"
	"synctracker/internal/cycle"
	"synctracker/internal/model"

	taskRepo "synctracker/internal/task/repository"
)

// ExportICal renders the user's open tasks as a VCALENDAR document.
// Tasks already placed in a slot keep their scheduled time; tasks
// without one are given their best-ranked upcoming date so the export
// is still useful before scheduling.
func (uc *implUseCase) ExportICal(ctx context.Context, sc model.Scope) (calendar.ExportOutput, error) {
	tasks, err := uc.tasks.ListTasks(ctx, sc.UserID, taskRepo.ListTasksOptions{})
	if err != nil {
		return calendar.ExportOutput{}, fmt.Errorf("list tasks: %w", err)
	}

	anchor, err := uc.anchors.GetAnchor(ctx, sc.UserID)
	hasAnchor := err == nil
	if err != nil && !errors.Is(err, cycle.ErrAnchorNotFound) {
		return calendar.ExportOutput{}, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//synctracker//cycle scheduler//EN")

	hours := uc.workingHours()
	now := uc.now()
	count := 0
	for _, t := range tasks {
		start, ok := uc.exportStart(t, anchor, hasAnchor, now, hours.Start)
		if !ok {
			continue
		}
		end := start.Add(time.Duration(t.DurationMinutes) * time.Minute)

		event := cal.AddEvent(fmt.Sprintf("%s@synctracker", t.ID))
		event.SetCreatedTime(t.CreatedAt)
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(t.Title)
		if t.Description != "" {
			event.SetDescription(t.Description)
		}
		count++
	}

	return calendar.ExportOutput{ICal: cal.Serialize(), TaskCount: count}, nil
}

// exportStart picks the event start for a task. Unscheduled tasks need
// cycle data to rank a date; without it they are skipped.
func (uc *implUseCase) exportStart(t model.Task, anchor model.CycleAnchor, hasAnchor bool, now time.Time, startHour int) (time.Time, bool) {
	if t.ScheduledAt != nil {
		return *t.ScheduledAt, true
	}
	if !hasAnchor {
		return time.Time{}, false
	}

	ranked := uc.ranker.Rank(t, anchor, now, uc.horizonDays(), 1)
	if len(ranked) == 0 {
		return time.Time{}, false
	}
	best := ranked[0].Date
	return time.Date(best.Year(), best.Month(), best.Day(), startHour, 0, 0, 0, best.Location()), true
}
