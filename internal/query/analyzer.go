package query

import (
	"regexp"
	"strings"
	"time"

	"github.com/Theathiestmonk/dronacharya-sub001/internal/subjects"
)

// Analyzer extracts Descriptors from raw text. Now is injectable so "today"
// and "tomorrow" resolve deterministically in tests.
type Analyzer struct {
	Now func() time.Time
}

// NewAnalyzer returns an Analyzer using the wall clock.
func NewAnalyzer() *Analyzer {
	return &Analyzer{Now: time.Now}
}

var (
	gradeRe        = regexp.MustCompile(`(?i)\b(?:grade|class|g)[\s-]*(\d{1,2})\b`)
	profileGradeRe = regexp.MustCompile(`\d{1,2}`)
	sa1Re          = regexp.MustCompile(`(?i)\bsa[\s-]*1\b`)
	sa2Re          = regexp.MustCompile(`(?i)\bsa[\s-]*2\b`)
	teachesRe      = regexp.MustCompile(`(?i)\bwho(?:\s+is\s+the)?\s+teach(?:es|er)?\b`)
	taughtByRe     = regexp.MustCompile(`(?i)\b(?:what|which)\s+(?:subjects?\s+)?(?:does|do)\s+([a-zA-Z. ]+?)\s+teach\b`)
)

var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Analyze builds a Descriptor from text, back-filling the grade from the
// caller-supplied profile when the text carries none. It never returns an
// error: anything it cannot extract is left empty.
func (a *Analyzer) Analyze(text string, profile map[string]string) Descriptor {
	lower := strings.ToLower(text)

	d := Descriptor{Type: General}

	if m := gradeRe.FindStringSubmatch(text); m != nil {
		d.Grade = m[1]
	} else if g, ok := profile["grade"]; ok {
		if m := profileGradeRe.FindString(g); m != "" {
			d.Grade = m
		}
	}

	switch {
	case sa1Re.MatchString(text):
		d.Exam = ExamSA1
	case sa2Re.MatchString(text):
		d.Exam = ExamSA2
	}

	d.Subjects = subjects.FindAll(text)
	if len(d.Subjects) > 0 {
		d.Subject = d.Subjects[0]
	}

	d.Days = a.findDays(lower)
	if len(d.Days) > 0 {
		d.Day = d.Days[0]
	}

	d.Type, d.TeacherName = classify(text, lower, d)
	return d
}

// classify picks the query type from verb/noun cues. Teacher-direction
// queries are checked first because they also contain schedule-ish words.
func classify(text, lower string, d Descriptor) (Type, string) {
	if m := taughtByRe.FindStringSubmatch(text); m != nil {
		return TeacherSubject, strings.TrimSpace(m[1])
	}
	if teachesRe.MatchString(text) || strings.Contains(lower, "teacher of") ||
		(strings.Contains(lower, "who is") && strings.Contains(lower, "teacher")) {
		return Teacher, ""
	}
	if strings.Contains(lower, "syllabus") {
		return Syllabus, ""
	}
	if strings.Contains(lower, "timetable") || strings.Contains(lower, "time table") ||
		strings.Contains(lower, "period") ||
		((strings.Contains(lower, "schedule") || strings.Contains(lower, "classes")) && len(d.Days) > 0) {
		return Timetable, ""
	}
	if strings.Contains(lower, "exam") || strings.Contains(lower, "date sheet") ||
		strings.Contains(lower, "datesheet") || strings.Contains(lower, "when is") ||
		d.Exam != ExamNone {
		return Schedule, ""
	}
	return General, ""
}

// findDays collects weekday mentions in order of appearance. "today" and
// "tomorrow" resolve against the injected clock. Matching is on whole word
// tokens with the same tokenization subject extraction uses, so "monday's"
// and "friday?" count.
func (a *Analyzer) findDays(lower string) []string {
	tokens := " " + subjects.Tokenize(lower) + " "

	type hit struct {
		pos  int
		name string
	}
	var hits []hit
	add := func(pos int, name string) {
		for _, h := range hits {
			if h.name == name {
				return
			}
		}
		hits = append(hits, hit{pos, name})
	}
	for _, wd := range weekdays {
		if idx := strings.Index(tokens, " "+wd+" "); idx >= 0 {
			add(idx, titleDay(wd))
		}
	}
	if idx := strings.Index(tokens, " today "); idx >= 0 {
		add(idx, a.Now().Weekday().String())
	}
	if idx := strings.Index(tokens, " tomorrow "); idx >= 0 {
		add(idx, a.Now().AddDate(0, 0, 1).Weekday().String())
	}
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].pos < hits[j-1].pos; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}
	return out
}

func titleDay(wd string) string {
	return strings.ToUpper(wd[:1]) + wd[1:]
}
