package calendar

import (
	"context"
	"time"

	"synctracker/internal/scheduler"
	"synctracker/pkg/gcalendar"
)

// BusyAdapter exposes a Google Calendar client as a scheduler busy
// source. A nil client reports a fully available calendar, so the
// scheduler keeps working without credentials.
type BusyAdapter struct {
	client *gcalendar.Client
}

// NewBusyAdapter wraps the client; client may be nil.
func NewBusyAdapter(client *gcalendar.Client) *BusyAdapter {
	return &BusyAdapter{client: client}
}

// BusyIntervals implements scheduler.BusySource.
func (a *BusyAdapter) BusyIntervals(ctx context.Context, from, to time.Time) ([]scheduler.BusyInterval, error) {
	if a == nil || a.client == nil {
		return nil, nil
	}

	busy, err := a.client.BusyIntervals(ctx, from, to)
	if err != nil {
		return nil, err
	}

	intervals := make([]scheduler.BusyInterval, 0, len(busy))
	for _, b := range busy {
		intervals = append(intervals, scheduler.BusyInterval{
			Start:   b.Start,
			End:     b.End,
			Summary: b.Summary,
		})
	}
	return intervals, nil
}
