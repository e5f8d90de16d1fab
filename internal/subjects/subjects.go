// Package subjects defines the subject synonym sets shared by the query
// analyzer and the schedule/timetable resolvers. Names within a set are
// interchangeable for filtering.
package subjects

import (
	"strings"
	"unicode"
)

// synonymSets groups interchangeable subject names. The first entry of each
// set is the canonical display name used in answers.
var synonymSets = [][]string{
	{"Mathematics", "math", "maths", "mathematic"},
	{"Science", "sci", "general science"},
	{"English", "eng"},
	{"Hindi", "hin"},
	{"Social Science", "sst", "social studies", "social"},
	{"Computer Science", "computer", "computers", "cs", "ict"},
	{"EVS", "environmental studies", "environment"},
	{"General Knowledge", "gk"},
	{"Sanskrit", "sans"},
	{"Art", "arts", "drawing", "art and craft"},
	{"Physical Education", "pt", "pe", "sports", "games"},
	{"Music", "mus"},
}

// Canonical returns the display name of the synonym set containing name,
// or "" if name belongs to no set.
func Canonical(name string) string {
	n := Tokenize(name)
	for _, set := range synonymSets {
		for _, s := range set {
			if Tokenize(s) == n {
				return set[0]
			}
		}
	}
	return ""
}

// Match reports whether two subject names refer to the same subject. Names in
// the same synonym set match; names outside any set fall back to exact
// comparison after normalization.
func Match(a, b string) bool {
	na, nb := Tokenize(a), Tokenize(b)
	if na == "" || nb == "" {
		return false
	}
	ca, cb := Canonical(na), Canonical(nb)
	if ca != "" && cb != "" {
		return ca == cb
	}
	return na == nb
}

// MatchAny reports whether name matches at least one of the given filters.
// An empty filter list matches everything.
func MatchAny(name string, filters []string) bool {
	if len(filters) == 0 {
		return true
	}
	for _, f := range filters {
		if Match(name, f) {
			return true
		}
	}
	return false
}

// FindAll scans free text for subject mentions and returns the canonical name
// of each distinct subject in order of first appearance. Matching is on whole
// word tokens, so "maths?" and "science." count but "math-ematical" does not.
func FindAll(text string) []string {
	t := " " + Tokenize(text) + " "
	type hit struct {
		pos  int
		name string
	}
	var hits []hit
	seen := make(map[string]bool)
	for _, set := range synonymSets {
		best := -1
		for _, s := range set {
			idx := strings.Index(t, " "+Tokenize(s)+" ")
			if idx >= 0 && (best < 0 || idx < best) {
				best = idx
			}
		}
		if best >= 0 && !seen[set[0]] {
			seen[set[0]] = true
			hits = append(hits, hit{pos: best, name: set[0]})
		}
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

// Tokenize lowercases text and rejoins its word tokens with single spaces,
// treating punctuation as a token boundary. Hyphens stay inside tokens so a
// hyphenated word never yields a spurious prefix match. Both subject and
// weekday extraction share this tokenization.
func Tokenize(text string) string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})
	return strings.Join(fields, " ")
}
