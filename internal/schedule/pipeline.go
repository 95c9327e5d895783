package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nerrad567/lexi-control/internal/infrastructure/config"
)

// apiUsername is the fixed basic-auth username for every EEG API call.
const apiUsername = "api_key"

// defaultTimeout bounds vendor calls when no timeout is configured.
const defaultTimeout = 10 * time.Second

// Service fetches and normalises booking records for a time window.
//
// Service is immutable after construction and safe for concurrent use.
type Service struct {
	scheduleBase string
	apiKey       string
	loc          *time.Location
	httpc        *http.Client
	logger       Logger
}

// NewService creates a schedule service from vendor configuration.
//
// loc is the system's fixed display zone; every timestamp the service emits
// is localised to it.
func NewService(cfg config.VendorConfig, loc *time.Location) *Service {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Service{
		scheduleBase: cfg.ScheduleBase,
		apiKey:       cfg.APIKey,
		loc:          loc,
		httpc:        &http.Client{Timeout: timeout},
		logger:       noopLogger{},
	}
}

// SetLogger sets the logger for the service.
func (s *Service) SetLogger(logger Logger) {
	s.logger = logger
}

// Location returns the service's display zone.
func (s *Service) Location() *time.Location {
	return s.loc
}

// FetchEvents returns the normalised events within [windowStart, windowEnd],
// sorted by resolved start time.
//
// Every failure degrades to an empty slice: missing API key, transport
// error, vendor rejection, undecodable response. Individual records degrade
// independently; a record is dropped only when neither its ICS block nor its
// numeric epoch fields can resolve both bounds.
func (s *Service) FetchEvents(ctx context.Context, windowStart, windowEnd time.Time) []Event {
	if s.apiKey == "" {
		return nil
	}

	params := url.Values{
		"duration_start":        {strconv.FormatInt(windowStart.Unix(), 10)},
		"duration_end":          {strconv.FormatInt(windowEnd.Unix(), 10)},
		"calculate_recurrences": {"true"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.scheduleBase+"?"+params.Encode(), nil)
	if err != nil {
		s.logger.Warn("building events request failed", "error", err)
		return nil
	}
	req.SetBasicAuth(apiUsername, s.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpc.Do(req)
	if err != nil {
		s.logger.Warn("events fetch failed", "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Warn("events fetch rejected", "status", resp.StatusCode)
		return nil
	}

	var parsed eventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		s.logger.Warn("decoding events response failed", "error", err)
		return nil
	}

	events := make([]Event, 0, len(parsed.Events))
	dropped := 0
	for _, raw := range parsed.Events {
		ev, ok := s.normalise(raw)
		if !ok {
			dropped++
			continue
		}
		events = append(events, ev)
	}
	if dropped > 0 {
		s.logger.Debug("dropped records with unresolvable times", "dropped", dropped)
	}

	// The vendor's ordering is not trusted; chronological order is derived
	// here. Stable sort keeps vendor order among equal starts.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})

	return events
}

// normalise extracts one Event from a raw booking record.
//
// The second return is false when start or end stays unresolved after both
// ICS extraction and the numeric epoch fallback; such records must not
// propagate as partial events.
func (s *Service) normalise(raw rawEvent) (Event, bool) {
	block := icsBlock(raw.ICS)

	title := block.field("SUMMARY")
	if title == "" {
		title = DefaultTitle
	}
	description := block.field("DESCRIPTION")

	start, ok := block.zonedTime("DTSTART", s.loc)
	if !ok && raw.StartTime != nil {
		start, ok = time.Unix(*raw.StartTime, 0).In(s.loc), true
	}
	if !ok {
		return Event{}, false
	}

	end, ok := block.zonedTime("DTEND", s.loc)
	if !ok && raw.EndTime != nil {
		end, ok = time.Unix(*raw.EndTime, 0).In(s.loc), true
	}
	if !ok {
		return Event{}, false
	}

	return Event{
		Title:       title,
		Description: description,
		Start:       start,
		End:         end,
	}, true
}

// ParseWindowBound parses a calendar-widget window bound into an absolute
// instant in loc.
//
// Bounds arrive as loose ISO strings ("2025-03-01", "2025-03-01T00:00:00",
// possibly with a trailing Z or an explicit offset). An error means the
// caller should return an empty event list rather than fail.
func ParseWindowBound(value string, loc *time.Location) (time.Time, error) {
	v := strings.TrimSuffix(strings.TrimSpace(value), "Z")
	if v == "" {
		return time.Time{}, fmt.Errorf("schedule: empty window bound")
	}

	if ts, err := time.Parse(time.RFC3339, v); err == nil {
		return ts.In(loc), nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02"} {
		if ts, err := time.ParseInLocation(layout, v, loc); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("schedule: unparsable window bound %q", value)
}
