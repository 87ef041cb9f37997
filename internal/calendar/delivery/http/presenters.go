package http

import (
	"time"

	"synctracker/internal/calendar"
)

// --- Response DTOs ---

type busyResp struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Summary string `json:"summary,omitempty"`
}

type slotResp struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type dayResp struct {
	Date  string     `json:"date"`
	Phase string     `json:"phase,omitempty"`
	Busy  []busyResp `json:"busy"`
	Free  []slotResp `json:"free"`
}

type availabilityResp struct {
	Days []dayResp `json:"days"`
}

func (h *handler) newAvailabilityResp(out calendar.AvailabilityOutput) availabilityResp {
	days := make([]dayResp, 0, len(out.Days))
	for _, d := range out.Days {
		busy := make([]busyResp, 0, len(d.Busy))
		for _, b := range d.Busy {
			busy = append(busy, busyResp{
				Start:   b.Start.Format(time.RFC3339),
				End:     b.End.Format(time.RFC3339),
				Summary: b.Summary,
			})
		}
		free := make([]slotResp, 0, len(d.Free))
		for _, s := range d.Free {
			free = append(free, slotResp{
				Start: s.Start.Format(time.RFC3339),
				End:   s.End.Format(time.RFC3339),
			})
		}
		days = append(days, dayResp{
			Date:  d.Date.Format("2006-01-02"),
			Phase: d.Phase,
			Busy:  busy,
			Free:  free,
		})
	}
	return availabilityResp{Days: days}
}
