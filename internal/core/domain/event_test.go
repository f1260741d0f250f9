package domain

import (
	"sort"
	"testing"
	"time"
)

var (
	start = time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	end   = start.Add(time.Hour)
)

func TestDeriveStatus_Boundaries(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want EventStatus
	}{
		{"well before start", start.Add(-time.Hour), StatusUpcoming},
		{"one ms before start", start.Add(-time.Millisecond), StatusUpcoming},
		{"exactly at start", start, StatusLive},
		{"mid window", start.Add(30 * time.Minute), StatusLive},
		{"exactly at end", end, StatusLive},
		{"one ms after end", end.Add(time.Millisecond), StatusPast},
		{"well after end", end.Add(time.Hour), StatusPast},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveStatus(tc.now, start, end); got != tc.want {
				t.Fatalf("DeriveStatus(%v) = %s, want %s", tc.now, got, tc.want)
			}
		})
	}
}

func TestDeriveStatus_ExhaustiveAndDisjoint(t *testing.T) {
	// Sweep across the window in small steps; exactly one status must hold
	// at every instant.
	for now := start.Add(-time.Minute); now.Before(end.Add(time.Minute)); now = now.Add(time.Second) {
		got := DeriveStatus(now, start, end)
		if !ValidEventStatus(got) {
			t.Fatalf("DeriveStatus(%v) returned unknown status %q", now, got)
		}

		upcoming := now.Before(start)
		past := now.After(end)
		live := !upcoming && !past
		matches := 0
		if upcoming && got == StatusUpcoming {
			matches++
		}
		if live && got == StatusLive {
			matches++
		}
		if past && got == StatusPast {
			matches++
		}
		if matches != 1 {
			t.Fatalf("at %v status %s does not match exactly one predicate", now, got)
		}
	}
}

func TestEventStatus_Rank(t *testing.T) {
	if !(StatusLive.Rank() < StatusUpcoming.Rank() && StatusUpcoming.Rank() < StatusPast.Rank()) {
		t.Fatalf("rank order broken: live=%d upcoming=%d past=%d",
			StatusLive.Rank(), StatusUpcoming.Rank(), StatusPast.Rank())
	}
}

func TestEventOrdering_TiersThenStartTime(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	mk := func(id int64, startOffset, dur time.Duration) Event {
		s := now.Add(startOffset)
		return Event{ID: id, Title: "e", StartTime: s, EndTime: s.Add(dur)}
	}

	// Creation order deliberately scrambled: past, live, upcoming, second
	// live starting earlier, second upcoming starting earlier.
	events := []Event{
		mk(1, -3*time.Hour, time.Hour),     // past
		mk(2, -10*time.Minute, time.Hour),  // live, started 11:50
		mk(3, 2*time.Hour, time.Hour),      // upcoming at 14:00
		mk(4, -30*time.Minute, time.Hour),  // live, started 11:30
		mk(5, time.Hour, time.Hour),        // upcoming at 13:00
	}

	// The listing contract the SQL ORDER BY implements.
	sort.SliceStable(events, func(i, j int) bool {
		ri := DeriveStatus(now, events[i].StartTime, events[i].EndTime).Rank()
		rj := DeriveStatus(now, events[j].StartTime, events[j].EndTime).Rank()
		if ri != rj {
			return ri < rj
		}
		return events[i].StartTime.Before(events[j].StartTime)
	})

	wantIDs := []int64{4, 2, 5, 3, 1}
	for i, want := range wantIDs {
		if events[i].ID != want {
			t.Fatalf("position %d: got id %d, want %d (order %v)", i, events[i].ID, want, ids(events))
		}
	}
}

func ids(events []Event) []int64 {
	out := make([]int64, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}
