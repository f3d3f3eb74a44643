package domain

import (
	"strings"
	"time"

	"github.com/evento/discovery-service/internal/geo"
)

// DateWindow narrows listings by start date relative to "now".
type DateWindow string

const (
	WindowToday    DateWindow = "today"
	WindowTomorrow DateWindow = "tomorrow"
	WindowWeekend  DateWindow = "weekend"
	WindowWeek     DateWindow = "week"
	WindowMonth    DateWindow = "month"
)

// ParseDateWindow returns the window for a query-param value, or "" for
// anything unrecognized (including the empty string).
func ParseDateWindow(s string) DateWindow {
	switch DateWindow(strings.ToLower(strings.TrimSpace(s))) {
	case WindowToday:
		return WindowToday
	case WindowTomorrow:
		return WindowTomorrow
	case WindowWeekend:
		return WindowWeekend
	case WindowWeek:
		return WindowWeek
	case WindowMonth:
		return WindowMonth
	}
	return ""
}

// dayOffset is the number of days ahead of now each window points at.
func (w DateWindow) dayOffset() int {
	switch w {
	case WindowToday:
		return 0
	case WindowTomorrow:
		return 1
	case WindowWeek:
		return 7
	case WindowMonth:
		return 30
	}
	return 0
}

// Origin is a caller-supplied coordinate used for radius narrowing.
type Origin struct {
	Lat float64
	Lng float64
}

// Criteria narrows an already-fetched listing set. Zero-valued fields are
// ignored; populated fields are AND-combined.
type Criteria struct {
	// Query matches case-insensitively as a substring of title, description,
	// address, category or organizer name.
	Query string
	// Categories is a set of category names (any spelling case).
	Categories []string
	// Window narrows by start date.
	Window DateWindow
	// Origin plus RadiusKm keeps only listings within the great-circle radius.
	Origin   *Origin
	RadiusKm float64
}

// FilterEvents applies c over events in memory. The result preserves the
// relative order of the input; nothing is re-sorted.
func FilterEvents(events []*Event, c Criteria, now time.Time) []*Event {
	query := strings.ToLower(strings.TrimSpace(c.Query))

	catSet := map[string]struct{}{}
	for _, raw := range c.Categories {
		if canon := NormalizeCategory(raw); canon != "" {
			catSet[canon] = struct{}{}
		}
	}

	out := make([]*Event, 0, len(events))
	for _, e := range events {
		if query != "" && !matchesQuery(e, query) {
			continue
		}
		if len(catSet) > 0 {
			if _, ok := catSet[e.Category]; !ok {
				continue
			}
		}
		if c.Window != "" && !matchesWindow(e, c.Window, now) {
			continue
		}
		if c.Origin != nil && c.RadiusKm > 0 {
			if geo.Distance(c.Origin.Lat, c.Origin.Lng, e.Latitude, e.Longitude) > c.RadiusKm {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

func matchesQuery(e *Event, query string) bool {
	for _, field := range []string{e.Title, e.Description, e.Address, e.Category, e.OrganizerName} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func matchesWindow(e *Event, w DateWindow, now time.Time) bool {
	start := e.StartDate.In(now.Location())

	if w == WindowWeekend {
		// Within the next 7 days and on a Saturday or Sunday.
		weekFromNow := now.Add(7 * 24 * time.Hour)
		if start.Before(now) || start.After(weekFromNow) {
			return false
		}
		return start.Weekday() == time.Saturday || start.Weekday() == time.Sunday
	}

	// Exact calendar-day match against now + offset. For "week" and "month"
	// this means the single day 7 resp. 30 days out, not a range — kept for
	// parity with the existing client filter, even though the labels suggest
	// a range is the intended behavior.
	target := now.Add(time.Duration(w.dayOffset()) * 24 * time.Hour)
	return sameDay(start, target)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
