package schedule

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseShortDate(t *testing.T) {
	cases := []struct {
		in    string
		day   int
		month time.Month
		ok    bool
	}{
		{"19-Sep", 19, time.September, true},
		{"19 September", 19, time.September, true},
		{"1-jan", 1, time.January, true},
		{"5/Mar", 5, time.March, true},
		{"3-Sept", 3, time.September, true},
		{"Sep-19", 0, 0, false},
		{"19", 0, 0, false},
		{"32-Jan", 0, 0, false},
		{"19-Smarch", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, c := range cases {
		day, month, ok := ParseShortDate(c.in)
		if ok != c.ok || day != c.day || month != c.month {
			t.Errorf("ParseShortDate(%q) = (%d, %v, %v), want (%d, %v, %v)",
				c.in, day, month, ok, c.day, c.month, c.ok)
		}
	}
}

// Academic year runs July–June: in the first calendar half, September-or-later
// events belong to the previous calendar year; in the second half,
// June-or-earlier events belong to the next.
func TestResolveYear_FirstCalendarHalf(t *testing.T) {
	now := date(2026, time.March, 10) // current month 3 <= 6
	for m := time.September; m <= time.December; m++ {
		if got := ResolveYear(m, now); got != 2025 {
			t.Errorf("ResolveYear(%v) = %d, want 2025", m, got)
		}
	}
	for m := time.January; m <= time.June; m++ {
		if got := ResolveYear(m, now); got != 2026 {
			t.Errorf("ResolveYear(%v) = %d, want 2026", m, got)
		}
	}
}

func TestResolveYear_SecondCalendarHalf(t *testing.T) {
	now := date(2025, time.October, 1) // current month 10 >= 7
	for m := time.January; m <= time.June; m++ {
		if got := ResolveYear(m, now); got != 2026 {
			t.Errorf("ResolveYear(%v) = %d, want 2026", m, got)
		}
	}
	for m := time.July; m <= time.December; m++ {
		if got := ResolveYear(m, now); got != 2025 {
			t.Errorf("ResolveYear(%v) = %d, want 2025", m, got)
		}
	}
}

func TestResolve_SkipsNonExamMarkers(t *testing.T) {
	now := date(2025, time.September, 15)
	grid := [][]string{
		{"Friday", "19-Sep", "Mathematics"},
		{"Monday", "22-Sep", "Regular School"},
		{"Tuesday", "23-Sep", "Prep Break"},
		{"Wednesday", "24-Sep", "Science"},
	}
	events := Resolve(grid, nil, "SA1", now)
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2: %+v", len(events), events)
	}
	if events[0].Subject != "Mathematics" || events[1].Subject != "Science" {
		t.Errorf("unexpected subjects: %+v", events)
	}
}

func TestResolve_DropsPastAndInvalidDates(t *testing.T) {
	now := date(2025, time.September, 15)
	grid := [][]string{
		{"Monday", "1-Sep", "Hindi"},      // past
		{"Friday", "30-Feb", "English"},   // invalid calendar date
		{"Friday", "19-Sep", "Science"},   // upcoming
		{"Monday", "not-a-date", "Maths"}, // unparseable
		{"Day", "Date", "Subject"},        // header row
	}
	events := Resolve(grid, nil, "SA1", now)
	if len(events) != 1 || events[0].Subject != "Science" {
		t.Fatalf("got %+v, want only the Science event", events)
	}
	if events[0].Date != date(2025, time.September, 19) {
		t.Errorf("Date = %v, want 2025-09-19", events[0].Date)
	}
}

func TestResolve_KeepsTodaysExam(t *testing.T) {
	now := time.Date(2025, time.September, 19, 14, 30, 0, 0, time.UTC)
	grid := [][]string{
		{"Friday", "19-Sep", "Science"},
	}
	events := Resolve(grid, nil, "SA1", now)
	if len(events) != 1 {
		t.Fatalf("today's exam dropped: %+v", events)
	}
}

// Querying via any member of a synonym set must yield the same result set.
func TestResolve_SynonymFilterEquivalence(t *testing.T) {
	now := date(2025, time.September, 15)
	grid := [][]string{
		{"Friday", "19-Sep", "Maths"},
		{"Monday", "22-Sep", "Science"},
		{"Tuesday", "23-Sep", "Mathematics"},
	}
	for _, filter := range []string{"maths", "mathematics", "math"} {
		events := Resolve(grid, []string{filter}, "SA1", now)
		if len(events) != 2 {
			t.Errorf("filter %q: got %d events, want 2", filter, len(events))
		}
	}
}

func TestResolve_AcademicYearRollover(t *testing.T) {
	// Current month is October; a March event belongs to next calendar year
	// and is upcoming, not eleven months past.
	now := date(2025, time.October, 1)
	grid := [][]string{
		{"Tuesday", "10-Mar", "Science"},
	}
	events := Resolve(grid, nil, "SA2", now)
	if len(events) != 1 {
		t.Fatalf("rollover event dropped: %+v", events)
	}
	if events[0].Date != date(2026, time.March, 10) {
		t.Errorf("Date = %v, want 2026-03-10", events[0].Date)
	}
}

func TestMerge_SortsAscendingAcrossTabs(t *testing.T) {
	a := []Event{
		{Date: date(2025, time.December, 1), Subject: "Maths", Label: "SA2"},
	}
	b := []Event{
		{Date: date(2025, time.September, 19), Subject: "Science", Label: "SA1"},
		{Date: date(2026, time.March, 2), Subject: "Hindi", Label: "General"},
	}
	merged := Merge(a, b)
	if len(merged) != 3 {
		t.Fatalf("got %d events, want 3", len(merged))
	}
	for i := 1; i < len(merged); i++ {
		if merged[i].Date.Before(merged[i-1].Date) {
			t.Errorf("merged events not ascending: %+v", merged)
		}
	}
	if merged[0].Label != "SA1" {
		t.Errorf("first event = %+v, want the September SA1 event", merged[0])
	}
}
