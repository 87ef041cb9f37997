package http

import (
	"time"

	"synctracker/internal/model"
	"synctracker/internal/task"
)

// --- Request DTOs ---

type taskReq struct {
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description"`
	Category        string     `json:"category" binding:"required"`
	DurationMinutes int        `json:"duration_minutes" binding:"required"`
	Priority        int        `json:"priority"`
	Deadline        *time.Time `json:"deadline"`
}

func (r taskReq) toInput() task.ScheduleInput {
	priority := r.Priority
	if priority == 0 {
		priority = model.MinPriority
	}
	return task.ScheduleInput{
		Title:           r.Title,
		Description:     r.Description,
		Category:        model.TaskCategory(r.Category),
		DurationMinutes: r.DurationMinutes,
		Priority:        priority,
		Deadline:        r.Deadline,
	}
}

type scheduleReq struct {
	UserID string  `json:"user_id" binding:"required"`
	Task   taskReq `json:"task" binding:"required"`
}

type batchScheduleReq struct {
	UserID string    `json:"user_id" binding:"required"`
	Tasks  []taskReq `json:"tasks" binding:"required"`
	TopK   int       `json:"top_k"`
}

func (r batchScheduleReq) toInput() task.BatchScheduleInput {
	inputs := make([]task.ScheduleInput, 0, len(r.Tasks))
	for _, t := range r.Tasks {
		inputs = append(inputs, t.toInput())
	}
	return task.BatchScheduleInput{Tasks: inputs, TopK: r.TopK}
}

// --- Response DTOs ---

type taskResp struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	Category        string `json:"category"`
	DurationMinutes int    `json:"duration_minutes"`
	Priority        int    `json:"priority"`
	Deadline        string `json:"deadline,omitempty"`
	ScheduledAt     string `json:"scheduled_at,omitempty"`
	CalendarEventID string `json:"calendar_event_id,omitempty"`
	Completed       bool   `json:"completed"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Category:        string(t.Category),
		DurationMinutes: t.DurationMinutes,
		Priority:        t.Priority,
		CalendarEventID: t.CalendarEventID,
		Completed:       t.Completed,
	}
	if t.Deadline != nil {
		resp.Deadline = t.Deadline.Format(time.RFC3339)
	}
	if t.ScheduledAt != nil {
		resp.ScheduledAt = t.ScheduledAt.Format(time.RFC3339)
	}
	return resp
}

type scheduleResp struct {
	Task         taskResp `json:"task"`
	SlotStart    string   `json:"slot_start"`
	SlotEnd      string   `json:"slot_end"`
	Score        float64  `json:"score"`
	Phase        string   `json:"phase"`
	DayInCycle   int      `json:"day_in_cycle"`
	Reasoning    string   `json:"reasoning"`
	CalendarLink string   `json:"calendar_link,omitempty"`
}

func (h *handler) newScheduleResp(out task.ScheduleOutput) scheduleResp {
	return scheduleResp{
		Task:         newTaskResp(out.Task),
		SlotStart:    out.Slot.Start.Format(time.RFC3339),
		SlotEnd:      out.Slot.End.Format(time.RFC3339),
		Score:        out.Score,
		Phase:        string(out.Phase),
		DayInCycle:   out.DayInCycle,
		Reasoning:    out.Reasoning,
		CalendarLink: out.CalendarLink,
	}
}

type rankedDateResp struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
	Phase string  `json:"phase"`
}

type suggestionResp struct {
	Title    string           `json:"title"`
	Category string           `json:"category"`
	Dates    []rankedDateResp `json:"suggested_dates"`
}

type batchScheduleResp struct {
	Suggestions []suggestionResp `json:"suggestions"`
}

func (h *handler) newBatchScheduleResp(out task.BatchScheduleOutput) batchScheduleResp {
	suggestions := make([]suggestionResp, 0, len(out.Suggestions))
	for _, s := range out.Suggestions {
		dates := make([]rankedDateResp, 0, len(s.Dates))
		for _, d := range s.Dates {
			dates = append(dates, rankedDateResp{
				Date:  d.Date.Format("2006-01-02"),
				Score: d.Score,
				Phase: string(d.Phase),
			})
		}
		suggestions = append(suggestions, suggestionResp{
			Title:    s.Title,
			Category: string(s.Category),
			Dates:    dates,
		})
	}
	return batchScheduleResp{Suggestions: suggestions}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, 0, len(out.Tasks))
	for _, t := range out.Tasks {
		tasks = append(tasks, newTaskResp(t))
	}
	return listResp{Tasks: tasks, Count: out.Count}
}

type upcomingEventResp struct {
	EventID   string `json:"event_id"`
	Summary   string `json:"summary"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	HTMLLink  string `json:"html_link,omitempty"`
}

type upcomingResp struct {
	Events []upcomingEventResp `json:"events"`
	Count  int                 `json:"count"`
}

func (h *handler) newUpcomingResp(out task.UpcomingOutput) upcomingResp {
	events := make([]upcomingEventResp, 0, len(out.Events))
	for _, ev := range out.Events {
		events = append(events, upcomingEventResp{
			EventID:   ev.EventID,
			Summary:   ev.Summary,
			StartTime: ev.StartTime.Format(time.RFC3339),
			EndTime:   ev.EndTime.Format(time.RFC3339),
			HTMLLink:  ev.HTMLLink,
		})
	}
	return upcomingResp{Events: events, Count: out.Count}
}

type completeResp struct {
	Message string   `json:"message"`
	Task    taskResp `json:"task"`
}

func (h *handler) newCompleteResp(out task.CompleteOutput) completeResp {
	return completeResp{
		Message: "Task marked as completed",
		Task:    newTaskResp(out.Task),
	}
}
