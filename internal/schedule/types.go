package schedule

import "time"

// Event is a normalised scheduled booking.
//
// Start and End are always resolved, zoned timestamps: records that cannot
// resolve both bounds are dropped before this type is ever constructed.
// start <= end is NOT guaranteed by upstream data and is not validated here.
type Event struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

// rawEvent mirrors one record of the vendor's events response.
//
// StartTime/EndTime are epoch seconds and optional; ICS is the embedded
// text block.
type rawEvent struct {
	ICS       string `json:"ics"`
	StartTime *int64 `json:"start_time"`
	EndTime   *int64 `json:"end_time"`
}

// eventsResponse mirrors GET /events.
type eventsResponse struct {
	Events []rawEvent `json:"events"`
}

// Logger defines the logging interface used by this package.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
