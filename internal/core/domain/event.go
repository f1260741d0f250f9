package domain

import (
	"errors"
	"time"
)

// EventStatus is derived from an event's time window against "now".
// It is never persisted.
type EventStatus string

const (
	StatusUpcoming EventStatus = "UPCOMING"
	StatusLive     EventStatus = "LIVE"
	StatusPast     EventStatus = "PAST"
)

var ErrEventNotFound = errors.New("event not found")
var ErrEndBeforeStart = errors.New("end_time must be after start_time")
var ErrNoFields = errors.New("no fields to update")

// ValidEventStatus reports whether s is one of the three derivable statuses.
func ValidEventStatus(s EventStatus) bool {
	return s == StatusUpcoming || s == StatusLive || s == StatusPast
}

// DeriveStatus is the single authoritative status function. Both boundaries
// belong to LIVE: an event is LIVE from the exact start instant through the
// exact end instant, inclusive.
//
// Given the creation invariant end > start, the three cases are exhaustive
// and mutually exclusive for any now.
func DeriveStatus(now, start, end time.Time) EventStatus {
	switch {
	case now.Before(start):
		return StatusUpcoming
	case now.After(end):
		return StatusPast
	default:
		return StatusLive
	}
}

// Rank is the listing order tier: LIVE events sort before UPCOMING, which
// sort before PAST. Within a tier, listings order by start_time ascending.
// The SQL ORDER BY expression in the repository mirrors these values.
func (s EventStatus) Rank() int {
	switch s {
	case StatusLive:
		return 0
	case StatusUpcoming:
		return 1
	default:
		return 2
	}
}

// Event is a time-boxed activity with a start and end instant.
type Event struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	ImageURL    *string   `json:"image_url" db:"image_url"`
	Description *string   `json:"description" db:"description"`
	StartTime   time.Time `json:"start_time" db:"start_time"`
	EndTime     time.Time `json:"end_time" db:"end_time"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	// Status is computed at read time, never stored.
	Status EventStatus `json:"status,omitempty" db:"-"`
}

// EventStats is a point-in-time aggregate; the four counts are computed
// against a single now snapshot, so upcoming+live+past == total.
type EventStats struct {
	Total    int `json:"total" db:"total"`
	Upcoming int `json:"upcoming" db:"upcoming"`
	Live     int `json:"live" db:"live"`
	Past     int `json:"past" db:"past"`
}
