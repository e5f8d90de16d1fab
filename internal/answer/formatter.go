// Package answer renders resolved schedule and timetable data as the final
// plain-text/markdown reply. Every failure path in the pipeline also ends
// here as a human-readable message.
package answer

import (
	"fmt"
	"strings"

	"github.com/Theathiestmonk/dronacharya-sub001/internal/schedule"
	"github.com/Theathiestmonk/dronacharya-sub001/internal/timetable"
)

// ExamTable renders upcoming exams as a markdown table sorted as given. When
// withLabel is set (results merged across exam tabs) an Exam column is added.
func ExamTable(events []schedule.Event, withLabel bool) string {
	if len(events) == 0 {
		return "I couldn't find any upcoming exams on the schedule."
	}

	var sb strings.Builder
	if withLabel {
		sb.WriteString("| Date | Day | Subject | Exam |\n")
		sb.WriteString("| --- | --- | --- | --- |\n")
	} else {
		sb.WriteString("| Date | Day | Subject |\n")
		sb.WriteString("| --- | --- | --- |\n")
	}
	for _, e := range events {
		date := e.Date.Format("02 Jan 2006")
		if withLabel {
			fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", date, e.DayName, e.Subject, e.Label)
		} else {
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", date, e.DayName, e.Subject)
		}
	}
	fmt.Fprintf(&sb, "\nShowing %d upcoming exam(s).", len(events))
	return sb.String()
}

// TimetableTable renders day blocks as a markdown table with one row per
// time slot. The day name appears once per block; the block's remaining slot
// rows leave the day column blank.
func TimetableTable(blocks []timetable.DayBlock) string {
	if len(blocks) == 0 {
		return "I couldn't find any timetable entries for the requested day(s)."
	}

	var sb strings.Builder
	sb.WriteString("| Day | Time | Subject | Teacher |\n")
	sb.WriteString("| --- | --- | --- | --- |\n")
	rows := 0
	for _, b := range blocks {
		first := true
		for i, slot := range b.Slots {
			if slot == "" {
				continue
			}
			day := ""
			if first {
				day = b.Day
				first = false
			}
			teacher := b.Teachers[i]
			if teacher != "" {
				teacher = timetable.Salutation(teacher)
			}
			fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", day, slot, b.Subjects[i], teacher)
			rows++
		}
	}
	if rows == 0 {
		return "I couldn't find any timetable entries for the requested day(s)."
	}
	return sb.String()
}

// TeachersOfSubject renders a subject-to-teacher answer in prose.
func TeachersOfSubject(subject string, teachers []string) string {
	if len(teachers) == 0 {
		return fmt.Sprintf("I couldn't find a teacher for %s on the timetable.", subject)
	}
	names := make([]string, len(teachers))
	for i, t := range teachers {
		names[i] = timetable.Salutation(t)
	}
	if len(names) == 1 {
		return fmt.Sprintf("%s is taught by %s.", subject, names[0])
	}
	return fmt.Sprintf("%s is taught by %s.", subject, joinAnd(names))
}

// SubjectsOfTeacher renders a teacher-to-subjects answer in prose.
func SubjectsOfTeacher(teacher string, subjects []string) string {
	if len(subjects) == 0 {
		return fmt.Sprintf("I couldn't find %s on the timetable.", strings.TrimSpace(teacher))
	}
	return fmt.Sprintf("%s teaches %s.", timetable.Salutation(teacher), joinAnd(subjects))
}

// Canned messages for the pipeline's failure taxonomy.

func MissingGrade() string {
	return "Please tell me your grade (for example, \"grade 7\") so I can look up the right sheet."
}

func CredentialUnavailable() string {
	return "The school data connection is not available right now. Please try again in a little while."
}

func SheetNotFound(grade string) string {
	return fmt.Sprintf("I couldn't find an information sheet for grade %s.", grade)
}

func TabNotFound(tab, grade string) string {
	return fmt.Sprintf("I couldn't find the %q sheet for grade %s.", tab, grade)
}

func GeneralHelp() string {
	return "I can help with exam schedules, the syllabus, the class timetable, and teachers. " +
		"Try asking something like \"When is the SA1 maths exam for grade 7?\" or \"Show me Monday's timetable\"."
}

func joinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
