// Package query turns free-text school questions into structured descriptors
// using rule-based keyword matching. It never fails: fields it cannot extract
// stay empty and the query type falls back to General.
package query

// Type classifies what the user is asking for.
type Type string

const (
	Schedule       Type = "schedule"
	Syllabus       Type = "syllabus"
	Timetable      Type = "timetable"
	Teacher        Type = "teacher"
	TeacherSubject Type = "teacher_subject"
	General        Type = "general"
)

// ExamType identifies a summative assessment cycle.
type ExamType string

const (
	ExamSA1  ExamType = "SA1"
	ExamSA2  ExamType = "SA2"
	ExamNone ExamType = ""
)

// Descriptor is the structured form of a user query. Built once per query and
// not mutated afterwards. Subject/Day mirror the first element of
// Subjects/Days for callers that handle a single value.
type Descriptor struct {
	Grade       string
	Exam        ExamType
	Type        Type
	Subject     string
	Subjects    []string
	Day         string
	Days        []string
	TeacherName string
}
