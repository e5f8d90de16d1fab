// Package router maps a structured query onto the spreadsheet tab that holds
// the answer. Tab names are exact, case-sensitive strings agreed with the
// sheet authors.
package router

import "github.com/Theathiestmonk/dronacharya-sub001/internal/query"

// Tab names by convention with the spreadsheet authors.
const (
	TabSA1DateSheet = "SA1 Date sheet and Syllabus"
	TabSA2DateSheet = "SA 2 Date Sheet"
	TabTimetable    = "TT"
	TabExamSchedule = "Examination Schedule"
)

type key struct {
	qt query.Type
	et query.ExamType
}

// tabTable is the full decision table. Missing combinations fall through to
// the default branch in TabFor.
var tabTable = map[key]string{
	{query.Schedule, query.ExamSA1}: TabSA1DateSheet,
	{query.Schedule, query.ExamSA2}: TabSA2DateSheet,
	{query.Syllabus, query.ExamSA1}: TabSA1DateSheet,
	{query.Syllabus, query.ExamSA2}: TabSA2DateSheet,

	{query.Timetable, query.ExamNone}:      TabTimetable,
	{query.Timetable, query.ExamSA1}:       TabTimetable,
	{query.Timetable, query.ExamSA2}:       TabTimetable,
	{query.Teacher, query.ExamNone}:        TabTimetable,
	{query.Teacher, query.ExamSA1}:         TabTimetable,
	{query.Teacher, query.ExamSA2}:         TabTimetable,
	{query.TeacherSubject, query.ExamNone}: TabTimetable,
	{query.TeacherSubject, query.ExamSA1}:  TabTimetable,
	{query.TeacherSubject, query.ExamSA2}:  TabTimetable,
}

// TabFor returns the target tab for a (query type, exam type) pair.
// Deterministic; the default branch covers schedule/syllabus queries without
// an exam type and all general queries.
func TabFor(qt query.Type, et query.ExamType) string {
	if tab, ok := tabTable[key{qt, et}]; ok {
		return tab
	}
	return TabExamSchedule
}

// ExamTabs lists every exam-schedule tab together with its display label,
// used when a query names no exam type and results are merged across tabs.
func ExamTabs() []struct{ Tab, Label string } {
	return []struct{ Tab, Label string }{
		{TabSA1DateSheet, "SA1"},
		{TabSA2DateSheet, "SA2"},
		{TabExamSchedule, "General"},
	}
}
