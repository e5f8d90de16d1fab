// Package pipeline orchestrates a query end to end: analyze the text, ensure
// a valid credential, locate the grade's spreadsheet, route to a tab, extract
// the grid, resolve dates and subjects, and format the reply. Every failure
// degrades to a human-readable message; nothing propagates past Answer.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Theathiestmonk/dronacharya-sub001/internal/answer"
	"github.com/Theathiestmonk/dronacharya-sub001/internal/query"
	"github.com/Theathiestmonk/dronacharya-sub001/internal/router"
	"github.com/Theathiestmonk/dronacharya-sub001/internal/schedule"
	"github.com/Theathiestmonk/dronacharya-sub001/internal/sheets"
	"github.com/Theathiestmonk/dronacharya-sub001/internal/storage"
	"github.com/Theathiestmonk/dronacharya-sub001/internal/subjects"
	"github.com/Theathiestmonk/dronacharya-sub001/internal/timetable"
)

// SheetReader abstracts the spreadsheet host for testing.
type SheetReader interface {
	ListSpreadsheets(ctx context.Context, accessToken string) ([]sheets.File, error)
	ReadTab(ctx context.Context, accessToken, spreadsheetID, tab string) (sheets.Grid, error)
}

// CredentialEnsurer abstracts the credential manager for testing.
type CredentialEnsurer interface {
	EnsureValid(ctx context.Context) *storage.Credential
}

// Engine answers school questions against per-grade spreadsheets.
type Engine struct {
	analyzer *query.Analyzer
	creds    CredentialEnsurer
	sheets   SheetReader
	Now      func() time.Time
}

// NewEngine wires the full answering pipeline.
func NewEngine(analyzer *query.Analyzer, creds CredentialEnsurer, reader SheetReader) *Engine {
	return &Engine{
		analyzer: analyzer,
		creds:    creds,
		sheets:   reader,
		Now:      time.Now,
	}
}

// Answer resolves one free-text question into a plain-text/markdown reply.
// The optional profile supplies a fallback grade. The descriptor the query
// resolved to is returned alongside the reply so callers can log the query
// type and grade next to their own request metadata.
func (e *Engine) Answer(ctx context.Context, text string, profile map[string]string) (string, query.Descriptor) {
	d := e.analyzer.Analyze(text, profile)

	if d.Type == query.General {
		return answer.GeneralHelp(), d
	}
	if d.Grade == "" {
		return answer.MissingGrade(), d
	}

	cred := e.creds.EnsureValid(ctx)
	if cred == nil {
		return answer.CredentialUnavailable(), d
	}

	file, err := sheets.LocateGradeSheet(ctx, e.sheets, cred.AccessToken, d.Grade)
	if err != nil {
		slog.Warn("grade sheet lookup failed", "grade", d.Grade, "error", err)
		return answer.SheetNotFound(d.Grade), d
	}

	switch d.Type {
	case query.Schedule, query.Syllabus:
		return e.answerSchedule(ctx, cred.AccessToken, file, d), d
	case query.Timetable:
		return e.answerTimetable(ctx, cred.AccessToken, file, d), d
	case query.Teacher:
		return e.answerTeacher(ctx, cred.AccessToken, file, d), d
	case query.TeacherSubject:
		return e.answerTeacherSubjects(ctx, cred.AccessToken, file, d), d
	default:
		return answer.GeneralHelp(), d
	}
}

// answerSchedule renders upcoming exams. With an explicit exam type a single
// tab is read; without one all exam tabs are fetched in parallel and merged,
// so "when is my next exam" works without naming SA1 or SA2.
func (e *Engine) answerSchedule(ctx context.Context, token string, file sheets.File, d query.Descriptor) string {
	now := e.Now()

	if d.Exam != query.ExamNone {
		tab := router.TabFor(d.Type, d.Exam)
		grid, err := e.sheets.ReadTab(ctx, token, file.ID, tab)
		if err != nil || len(grid) == 0 {
			slog.Warn("exam tab read failed", "tab", tab, "grade", d.Grade, "error", err)
			return answer.TabNotFound(tab, d.Grade)
		}
		events := schedule.Merge(schedule.Resolve(grid, d.Subjects, string(d.Exam), now))
		return answer.ExamTable(events, false)
	}

	// Tab reads are independent and read-only, so fan out.
	tabs := router.ExamTabs()
	groups := make([][]schedule.Event, len(tabs))
	g, gctx := errgroup.WithContext(ctx)
	for i, t := range tabs {
		g.Go(func() error {
			grid, err := e.sheets.ReadTab(gctx, token, file.ID, t.Tab)
			if err != nil {
				// A grade's sheet may lack some exam tabs; skip, don't fail.
				slog.Debug("skipping exam tab", "tab", t.Tab, "error", err)
				return nil
			}
			groups[i] = schedule.Resolve(grid, d.Subjects, t.Label, now)
			return nil
		})
	}
	g.Wait()

	merged := schedule.Merge(groups...)
	if len(merged) == 0 {
		return answer.ExamTable(nil, true)
	}
	return answer.ExamTable(merged, true)
}

func (e *Engine) readTimetable(ctx context.Context, token string, file sheets.File, grade string) ([]timetable.DayBlock, string) {
	grid, err := e.sheets.ReadTab(ctx, token, file.ID, router.TabTimetable)
	if err != nil || len(grid) == 0 {
		slog.Warn("timetable tab read failed", "grade", grade, "error", err)
		return nil, answer.TabNotFound(router.TabTimetable, grade)
	}
	return timetable.Parse(grid), ""
}

func (e *Engine) answerTimetable(ctx context.Context, token string, file sheets.File, d query.Descriptor) string {
	blocks, failMsg := e.readTimetable(ctx, token, file, d.Grade)
	if failMsg != "" {
		return failMsg
	}
	return answer.TimetableTable(timetable.FilterDays(blocks, d.Days))
}

func (e *Engine) answerTeacher(ctx context.Context, token string, file sheets.File, d query.Descriptor) string {
	if d.Subject == "" {
		return "Which subject's teacher are you looking for? Try \"who teaches science\"."
	}
	blocks, failMsg := e.readTimetable(ctx, token, file, d.Grade)
	if failMsg != "" {
		return failMsg
	}
	teachers := timetable.TeachersOf(timetable.Entries(blocks), d.Subject, subjects.Match)
	return answer.TeachersOfSubject(d.Subject, teachers)
}

func (e *Engine) answerTeacherSubjects(ctx context.Context, token string, file sheets.File, d query.Descriptor) string {
	if d.TeacherName == "" {
		return "Whose subjects are you asking about? Try \"what does Mrs. Sumayya teach\"."
	}
	blocks, failMsg := e.readTimetable(ctx, token, file, d.Grade)
	if failMsg != "" {
		return failMsg
	}
	taught := timetable.SubjectsOf(timetable.Entries(blocks), d.TeacherName)
	return answer.SubjectsOfTeacher(d.TeacherName, taught)
}
