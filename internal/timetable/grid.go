// Package timetable reconstructs day-by-day timetables from the TT tab's
// positional grid: a header row of time slots, then per weekday a subject row
// optionally followed by a teacher row.
package timetable

import "strings"

// Entry is one (day, time slot) cell of the reconstructed timetable.
type Entry struct {
	Day      string
	TimeSlot string
	Subject  string
	Teacher  string
}

// DayBlock is a weekday's subject and teacher arrays, aligned by position to
// the header's time slots and zero-padded to equal length.
type DayBlock struct {
	Day      string
	Slots    []string
	Subjects []string
	Teachers []string
}

var schoolDays = map[string]string{
	"monday":    "Monday",
	"tuesday":   "Tuesday",
	"wednesday": "Wednesday",
	"thursday":  "Thursday",
	"friday":    "Friday",
}

// IsDayName reports whether the cell names a school day (Monday–Friday).
func IsDayName(cell string) bool {
	_, ok := schoolDays[strings.ToLower(strings.TrimSpace(cell))]
	return ok
}

func dayName(cell string) string {
	return schoolDays[strings.ToLower(strings.TrimSpace(cell))]
}

// Parse reconstructs day blocks from the raw grid in two passes: first locate
// every day-row index, then classify the row after each one with an explicit
// teacher-row predicate. A row is a teacher row only when its first cell is
// blank and its second cell is not itself a day name; anything else (the next
// day row, an empty spacer) leaves the day with no teachers.
func Parse(grid [][]string) []DayBlock {
	if len(grid) == 0 {
		return nil
	}
	slots := tail(grid[0])

	var dayRows []int
	for i := 1; i < len(grid); i++ {
		if len(grid[i]) > 0 && IsDayName(grid[i][0]) {
			dayRows = append(dayRows, i)
		}
	}

	blocks := make([]DayBlock, 0, len(dayRows))
	for _, i := range dayRows {
		b := DayBlock{
			Day:      dayName(grid[i][0]),
			Slots:    slots,
			Subjects: tail(grid[i]),
		}
		if j := i + 1; j < len(grid) && isTeacherRow(grid[j]) {
			b.Teachers = tail(grid[j])
		}
		pad(&b)
		blocks = append(blocks, b)
	}
	return blocks
}

func isTeacherRow(row []string) bool {
	if len(row) == 0 || strings.TrimSpace(row[0]) != "" {
		return false
	}
	if len(row) > 1 && IsDayName(row[1]) {
		return false
	}
	return true
}

func tail(row []string) []string {
	if len(row) < 2 {
		return nil
	}
	out := make([]string, len(row)-1)
	for i, c := range row[1:] {
		out[i] = strings.TrimSpace(c)
	}
	return out
}

// pad extends Slots, Subjects and Teachers with empty strings to a common
// length so column alignment by position holds.
func pad(b *DayBlock) {
	n := len(b.Slots)
	if len(b.Subjects) > n {
		n = len(b.Subjects)
	}
	if len(b.Teachers) > n {
		n = len(b.Teachers)
	}
	for len(b.Slots) < n {
		b.Slots = append(b.Slots, "")
	}
	for len(b.Subjects) < n {
		b.Subjects = append(b.Subjects, "")
	}
	for len(b.Teachers) < n {
		b.Teachers = append(b.Teachers, "")
	}
}

// Entries flattens blocks into one entry per (day, time slot) pair, skipping
// positions with an empty time slot.
func Entries(blocks []DayBlock) []Entry {
	var out []Entry
	for _, b := range blocks {
		for i, slot := range b.Slots {
			if slot == "" {
				continue
			}
			out = append(out, Entry{
				Day:      b.Day,
				TimeSlot: slot,
				Subject:  b.Subjects[i],
				Teacher:  b.Teachers[i],
			})
		}
	}
	return out
}

// FilterDays keeps only blocks whose day is in the requested list. An empty
// list keeps everything. Day comparison is case-insensitive.
func FilterDays(blocks []DayBlock, days []string) []DayBlock {
	if len(days) == 0 {
		return blocks
	}
	want := make(map[string]bool, len(days))
	for _, d := range days {
		want[strings.ToLower(strings.TrimSpace(d))] = true
	}
	var out []DayBlock
	for _, b := range blocks {
		if want[strings.ToLower(b.Day)] {
			out = append(out, b)
		}
	}
	return out
}
