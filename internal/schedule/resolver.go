// Package schedule resolves exam-schedule rows into dated events. Rows carry
// a day name, a short date like "19-Sep" without a year, and a subject; the
// year is inferred from the July–June academic calendar.
package schedule

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Theathiestmonk/dronacharya-sub001/internal/subjects"
)

// Event is one resolved exam row. Derived transiently; never stored.
type Event struct {
	Date    time.Time
	DayName string
	Subject string
	Label   string // "SA1", "SA2" or "General"
}

// Rows whose subject cell carries one of these markers are not exams.
var nonExamMarkers = []string{"regular school", "prep break"}

var months = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// ParseShortDate splits a short date such as "19-Sep" or "19 September" into
// its day number and month. Returns false when either part is unrecognized.
func ParseShortDate(s string) (day int, month time.Month, ok bool) {
	s = strings.TrimSpace(s)
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == ' ' || r == '/'
	})
	if len(parts) < 2 {
		return 0, 0, false
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || day < 1 || day > 31 {
		return 0, 0, false
	}
	month, found := months[strings.ToLower(strings.TrimSpace(parts[1]))]
	if !found {
		return 0, 0, false
	}
	return day, month, true
}

// ResolveYear assigns a calendar year to a bare month relative to now. The
// academic year runs July through June, so early-calendar-year queries about
// September-or-later events point at the previous calendar year, and
// late-calendar-year queries about June-or-earlier events point at the next.
func ResolveYear(month time.Month, now time.Time) int {
	current := now.Month()
	switch {
	case current <= time.June && month >= time.September:
		return now.Year() - 1
	case current >= time.July && month <= time.June:
		return now.Year() + 1
	default:
		return now.Year()
	}
}

// Resolve turns raw grid rows of the shape (day name, short date, subject)
// into upcoming events, labelled with the given exam label. Rows with
// non-exam markers, unparseable or invalid dates, subjects excluded by the
// filter, and events before today are all dropped. Output is unsorted; use
// Merge to combine and order multiple tabs.
func Resolve(grid [][]string, filterSubjects []string, label string, now time.Time) []Event {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var events []Event
	for _, row := range grid {
		if len(row) < 3 {
			continue
		}
		dayName := strings.TrimSpace(row[0])
		subject := strings.TrimSpace(row[2])
		if subject == "" || isNonExam(subject) {
			continue
		}
		if !subjects.MatchAny(subject, filterSubjects) {
			continue
		}
		day, month, ok := ParseShortDate(row[1])
		if !ok {
			continue
		}
		year := ResolveYear(month, now)
		date := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
		// time.Date normalizes overflow (Feb 30 becomes Mar 2); such rows
		// are invalid calendar dates and must be dropped.
		if date.Day() != day || date.Month() != month {
			continue
		}
		if date.Before(today) {
			continue
		}
		events = append(events, Event{
			Date:    date,
			DayName: dayName,
			Subject: subject,
			Label:   label,
		})
	}
	return events
}

// Merge combines events from several tabs and sorts them ascending by date.
func Merge(groups ...[]Event) []Event {
	var all []Event
	for _, g := range groups {
		all = append(all, g...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.Before(all[j].Date)
	})
	return all
}

func isNonExam(subject string) bool {
	s := strings.ToLower(subject)
	for _, m := range nonExamMarkers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
