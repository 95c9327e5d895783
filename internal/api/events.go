package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/nerrad567/lexi-control/internal/panel"
	"github.com/nerrad567/lexi-control/internal/schedule"
)

// calendarEvent is one entry of the /events.json feed, shaped for the
// FullCalendar widget on the calendar page.
type calendarEvent struct {
	Title         string        `json:"title"`
	Start         string        `json:"start"`
	End           string        `json:"end"`
	ExtendedProps extendedProps `json:"extendedProps"`
}

type extendedProps struct {
	Description string `json:"description"`
}

// handleEvents serves the booking feed for the calendar widget.
//
// The widget supplies the visible window as start/end query parameters.
// Every failure, including an unparseable window, degrades to an empty
// feed; the calendar renders blank rather than broken.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if !s.gate.Authorized(r) {
		writeLocked(w)
		return
	}

	loc := s.schedule.Location()
	var events []schedule.Event
	windowStart, startErr := schedule.ParseWindowBound(r.URL.Query().Get("start"), loc)
	windowEnd, endErr := schedule.ParseWindowBound(r.URL.Query().Get("end"), loc)
	if startErr != nil || endErr != nil {
		s.logger.Warn("unparseable calendar window",
			"start", r.URL.Query().Get("start"),
			"end", r.URL.Query().Get("end"),
		)
	} else {
		events = s.schedule.FetchEvents(r.Context(), windowStart, windowEnd)
	}

	// Always emit an array, never null, so the widget renders an empty
	// calendar instead of erroring.
	feed := make([]calendarEvent, 0, len(events))
	for _, ev := range events {
		feed = append(feed, calendarEvent{
			Title:         ev.Title,
			Start:         ev.Start.Format(time.RFC3339),
			End:           ev.End.Format(time.RFC3339),
			ExtendedProps: extendedProps{Description: ev.Description},
		})
	}

	writeJSON(w, http.StatusOK, feed)
}

// handleCalendar renders the schedule calendar page.
func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	if !s.gate.Authorized(r) {
		s.renderLock(w, "")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := s.pages.Calendar(w, panel.CalendarData{
		Site:     s.site.Name,
		Timezone: s.site.Timezone,
	})
	if err != nil {
		s.logger.Error("rendering calendar page", "error", err)
	}
}

// handleUpcoming renders the upcoming-jobs table for the configured
// look-ahead window.
func (s *Server) handleUpcoming(w http.ResponseWriter, r *http.Request) {
	if !s.gate.Authorized(r) {
		s.renderLock(w, "")
		return
	}

	loc := s.schedule.Location()
	now := time.Now().In(loc)
	windowEnd := now.AddDate(0, 0, s.vendor.UpcomingWindowDays)

	events := s.schedule.FetchEvents(r.Context(), now, windowEnd)

	rows := make([]panel.UpcomingRow, 0, len(events))
	for _, ev := range events {
		rows = append(rows, panel.UpcomingRow{
			Date:  ev.Start.Format("Mon Jan 2"),
			Time:  fmt.Sprintf("%s – %s", ev.Start.Format("15:04"), ev.End.Format("15:04")),
			Title: ev.Title,
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := s.pages.Upcoming(w, panel.UpcomingData{
		Site: s.site.Name,
		Rows: rows,
	})
	if err != nil {
		s.logger.Error("rendering upcoming page", "error", err)
	}
}
