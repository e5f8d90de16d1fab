package subjects

import (
	"reflect"
	"testing"
)

func TestCanonical(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"maths", "Mathematics"},
		{"MATH", "Mathematics"},
		{"Mathematics", "Mathematics"},
		{"sst", "Social Science"},
		{"social studies", "Social Science"},
		{"pt", "Physical Education"},
		{"gk", "General Knowledge"},
		{"  sci  ", "Science"},
		{"history", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := Canonical(c.in); got != c.want {
			t.Errorf("Canonical(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMatch_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"maths", "Mathematics"},
		{"sst", "Social Studies"},
		{"PE", "sports"},
		{"Hindi", "hin"},
	}
	for _, p := range pairs {
		if !Match(p[0], p[1]) || !Match(p[1], p[0]) {
			t.Errorf("Match(%q, %q) should hold in both directions", p[0], p[1])
		}
	}
}

func TestMatch_AcrossSets(t *testing.T) {
	if Match("maths", "science") {
		t.Error("maths should not match science")
	}
	if Match("", "maths") {
		t.Error("empty name should never match")
	}
}

func TestMatch_UnknownNamesFallBackToExact(t *testing.T) {
	if !Match("History", "history") {
		t.Error("unknown subjects should match case-insensitively on exact name")
	}
	if Match("History", "Geography") {
		t.Error("distinct unknown subjects should not match")
	}
}

func TestMatchAny(t *testing.T) {
	if !MatchAny("Mathematics", nil) {
		t.Error("empty filter list should match everything")
	}
	if !MatchAny("Maths", []string{"science", "math"}) {
		t.Error("Maths should match the math filter")
	}
	if MatchAny("Hindi", []string{"science", "math"}) {
		t.Error("Hindi should not match science/math filters")
	}
}

func TestFindAll_OrderOfAppearance(t *testing.T) {
	got := FindAll("when are the science and maths exams")
	want := []string{"Science", "Mathematics"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindAll = %v, want %v", got, want)
	}
}

func TestFindAll_Deduplicates(t *testing.T) {
	got := FindAll("maths maths mathematics")
	want := []string{"Mathematics"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindAll = %v, want %v", got, want)
	}
}

func TestFindAll_SubjectBeforePunctuation(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{"who teaches science?", []string{"Science"}},
		{"when is the SA2 exam for maths?", []string{"Mathematics"}},
		{"exams for maths, science and english.", []string{"Mathematics", "Science", "English"}},
		{"(hindi) syllabus", []string{"Hindi"}},
	}
	for _, c := range cases {
		if got := FindAll(c.text); !reflect.DeepEqual(got, c.want) {
			t.Errorf("FindAll(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}

func TestCanonical_IgnoresPunctuation(t *testing.T) {
	if got := Canonical("Maths."); got != "Mathematics" {
		t.Errorf("Canonical(%q) = %q, want Mathematics", "Maths.", got)
	}
}

func TestFindAll_RequiresWordBoundaries(t *testing.T) {
	if got := FindAll("the math-ematical society"); len(got) != 0 {
		t.Errorf("FindAll matched inside a word: %v", got)
	}
}

func TestFindAll_NoSubjects(t *testing.T) {
	if got := FindAll("show me the timetable"); len(got) != 0 {
		t.Errorf("FindAll = %v, want none", got)
	}
}
