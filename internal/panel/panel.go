// Package panel renders the operator-facing HTML pages for Lexi Control.
//
// Templates are embedded via go:embed so the binary is self-contained. The
// pages are deliberately plain: a PIN lock screen, the control panel with a
// polling status badge, a FullCalendar schedule view, and an upcoming-jobs
// table. All dynamic values pass through html/template escaping.
package panel

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var content embed.FS

// InstanceOption is one entry of the instance selector on the control panel.
type InstanceOption struct {
	ID   string
	Name string
}

// LockData populates the PIN lock screen.
type LockData struct {
	Site  string
	Error string
}

// HomeData populates the control panel.
type HomeData struct {
	Site       string
	Name       string
	State      string
	BadgeColor string
	Flash      string
	Instances  []InstanceOption
	ActiveID   string
}

// CalendarData populates the schedule calendar page.
type CalendarData struct {
	Site     string
	Timezone string
}

// UpcomingRow is one line of the upcoming-jobs table.
type UpcomingRow struct {
	Date  string
	Time  string
	Title string
}

// UpcomingData populates the upcoming-jobs page.
type UpcomingData struct {
	Site string
	Rows []UpcomingRow
}

// Renderer renders the embedded page templates.
//
// Renderer is immutable after construction and safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(content, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing page templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Lock renders the PIN lock screen.
func (r *Renderer) Lock(w io.Writer, data LockData) error {
	return r.render(w, "lock.html", data)
}

// Home renders the control panel.
func (r *Renderer) Home(w io.Writer, data HomeData) error {
	return r.render(w, "home.html", data)
}

// Calendar renders the schedule calendar page.
func (r *Renderer) Calendar(w io.Writer, data CalendarData) error {
	return r.render(w, "calendar.html", data)
}

// Upcoming renders the upcoming-jobs table page.
func (r *Renderer) Upcoming(w io.Writer, data UpcomingData) error {
	return r.render(w, "upcoming.html", data)
}

func (r *Renderer) render(w io.Writer, name string, data any) error {
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	return nil
}
