package sheets

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrSheetNotFound is returned when no spreadsheet matches a grade's marker.
var ErrSheetNotFound = errors.New("no spreadsheet for grade")

// gradeMarker is the naming convention the sheet authors use for per-grade
// information sheets, e.g. "G7- InfoSheet".
func gradeMarker(grade string) string {
	return fmt.Sprintf("G%s- InfoSheet", grade)
}

// Lister abstracts spreadsheet discovery for testing.
type Lister interface {
	ListSpreadsheets(ctx context.Context, accessToken string) ([]File, error)
}

// LocateGradeSheet re-lists all visible spreadsheets and returns the first
// whose name contains the grade marker.
func LocateGradeSheet(ctx context.Context, lister Lister, accessToken, grade string) (File, error) {
	files, err := lister.ListSpreadsheets(ctx, accessToken)
	if err != nil {
		return File{}, err
	}
	marker := gradeMarker(grade)
	for _, f := range files {
		if strings.Contains(f.Name, marker) {
			return f, nil
		}
	}
	return File{}, fmt.Errorf("%w %s", ErrSheetNotFound, grade)
}
