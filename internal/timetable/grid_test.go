package timetable

import (
	"reflect"
	"testing"
)

// sampleGrid mirrors the TT tab layout: a time-slot header, then per day a
// subject row with a blank first cell on the teacher row beneath it.
var sampleGrid = [][]string{
	{"Day", "8:00-8:45", "8:45-9:30", "9:30-10:15"},
	{"Monday", "Maths", "Science", "English"},
	{"", "Mr. Rajesh", "Mrs. Sumayya", "Ms. Priya"},
	{"Tuesday", "Hindi", "Maths", "Art"},
	{"", "Mrs. Geeta", "Mr. Rajesh", "Mrs. Kavita"},
	{"Wednesday", "Science", "English", "Music"},
}

func TestParse_DayBlocks(t *testing.T) {
	blocks := Parse(sampleGrid)
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}

	mon := blocks[0]
	if mon.Day != "Monday" {
		t.Errorf("Day = %q, want Monday", mon.Day)
	}
	if !reflect.DeepEqual(mon.Subjects, []string{"Maths", "Science", "English"}) {
		t.Errorf("Subjects = %v", mon.Subjects)
	}
	if !reflect.DeepEqual(mon.Teachers, []string{"Mr. Rajesh", "Mrs. Sumayya", "Ms. Priya"}) {
		t.Errorf("Teachers = %v", mon.Teachers)
	}

	// Wednesday has no teacher row; Teachers is padded to the slot count.
	wed := blocks[2]
	if wed.Day != "Wednesday" {
		t.Fatalf("Day = %q, want Wednesday", wed.Day)
	}
	if !reflect.DeepEqual(wed.Teachers, []string{"", "", ""}) {
		t.Errorf("Teachers = %v, want three empty cells", wed.Teachers)
	}
}

func TestParse_ConsecutiveDayRows(t *testing.T) {
	// A day row directly after another day row must not be mistaken for a
	// teacher row.
	grid := [][]string{
		{"Day", "8:00-8:45"},
		{"Monday", "Maths"},
		{"Tuesday", "Science"},
		{"", "Mrs. Geeta"},
	}
	blocks := Parse(grid)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0].Teachers[0] != "" {
		t.Errorf("Monday teachers = %v, want none", blocks[0].Teachers)
	}
	if blocks[1].Teachers[0] != "Mrs. Geeta" {
		t.Errorf("Tuesday teachers = %v", blocks[1].Teachers)
	}
}

func TestParse_BlankFirstCellDayRow(t *testing.T) {
	// A row starting blank whose second cell names a day is a malformed day
	// row, not a teacher row.
	grid := [][]string{
		{"Day", "8:00-8:45"},
		{"Monday", "Maths"},
		{"", "Tuesday"},
	}
	blocks := Parse(grid)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Teachers[0] != "" {
		t.Errorf("Monday teachers = %v, want none", blocks[0].Teachers)
	}
}

func TestParse_EmptyGrid(t *testing.T) {
	if got := Parse(nil); got != nil {
		t.Errorf("Parse(nil) = %v, want nil", got)
	}
	if got := Parse([][]string{{"Day", "8:00"}}); len(got) != 0 {
		t.Errorf("header-only grid produced blocks: %v", got)
	}
}

func TestEntries_SkipsEmptySlots(t *testing.T) {
	grid := [][]string{
		{"Day", "8:00-8:45", "", "9:30-10:15"},
		{"Monday", "Maths", "Break", "English"},
		{"", "Mr. Rajesh", "", "Ms. Priya"},
	}
	entries := Entries(Parse(grid))
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(entries), entries)
	}
	if entries[0].Subject != "Maths" || entries[1].Subject != "English" {
		t.Errorf("entries = %+v", entries)
	}
	if entries[1].Teacher != "Ms. Priya" {
		t.Errorf("teacher alignment broken: %+v", entries[1])
	}
}

func TestFilterDays(t *testing.T) {
	blocks := Parse(sampleGrid)

	got := FilterDays(blocks, []string{"monday"})
	if len(got) != 1 || got[0].Day != "Monday" {
		t.Fatalf("FilterDays(monday) = %v", got)
	}

	got = FilterDays(blocks, []string{"MONDAY", "Wednesday"})
	if len(got) != 2 {
		t.Fatalf("FilterDays = %d blocks, want 2", len(got))
	}

	if got := FilterDays(blocks, nil); len(got) != 3 {
		t.Errorf("empty day list should keep all blocks, got %d", len(got))
	}

	if got := FilterDays(blocks, []string{"Saturday"}); len(got) != 0 {
		t.Errorf("Saturday should match nothing, got %v", got)
	}
}

func TestIsDayName(t *testing.T) {
	for _, d := range []string{"Monday", "friday", " TUESDAY "} {
		if !IsDayName(d) {
			t.Errorf("IsDayName(%q) = false", d)
		}
	}
	for _, d := range []string{"Saturday", "Sunday", "Maths", ""} {
		if IsDayName(d) {
			t.Errorf("IsDayName(%q) = true", d)
		}
	}
}
