package timetable

import "strings"

var honorifics = []string{"mr.", "mrs.", "ms.", "dr.", "mr ", "mrs ", "ms ", "dr "}

// NormalizeName lowercases a teacher name and strips a leading honorific,
// with or without a trailing space after the dot.
func NormalizeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, h := range honorifics {
		if strings.HasPrefix(n, h) {
			n = strings.TrimSpace(n[len(h):])
			break
		}
	}
	return n
}

// NamesMatch reports whether two teacher names refer to the same person.
// Matching is case-insensitive, honorific-insensitive, and accepts substring
// containment in either direction ("sumayya" matches "Mrs. Sumayya Khan").
func NamesMatch(a, b string) bool {
	na, nb := NormalizeName(a), NormalizeName(b)
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}

// TeachersOf returns the distinct teachers of a subject, in timetable order.
func TeachersOf(entries []Entry, subject string, match func(a, b string) bool) []string {
	var out []string
	seen := make(map[string]bool)
	for _, e := range entries {
		if e.Teacher == "" || !match(e.Subject, subject) {
			continue
		}
		key := NormalizeName(e.Teacher)
		if !seen[key] {
			seen[key] = true
			out = append(out, e.Teacher)
		}
	}
	return out
}

// SubjectsOf returns the distinct subjects taught by the named teacher.
func SubjectsOf(entries []Entry, teacher string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, e := range entries {
		if e.Subject == "" || !NamesMatch(e.Teacher, teacher) {
			continue
		}
		key := strings.ToLower(e.Subject)
		if !seen[key] {
			seen[key] = true
			out = append(out, e.Subject)
		}
	}
	return out
}

// Curated given-name tokens used to pick an honorific for unlabeled teacher
// names. Best-effort only: uncommon names may be mislabeled, and a name on
// both lists takes the male list's honorific because that list is checked
// first.
var (
	maleNameTokens = []string{
		"amit", "rahul", "rajesh", "suresh", "ramesh", "vikram", "arun",
		"sanjay", "anil", "deepak", "manoj", "ravi", "ashok", "vinod",
		"prakash", "dinesh", "mahesh", "ajay", "rohit", "kumar", "singh",
	}
	femaleNameTokens = []string{
		"sumayya", "priya", "anita", "sunita", "kavita", "meena", "geeta",
		"seema", "neha", "pooja", "rekha", "shweta", "ritu", "anju",
		"lakshmi", "radha", "sita", "devi", "kumari", "sharma",
	}
)

// InferHonorific guesses "Mr." or "Mrs." for a bare teacher name. It checks
// the curated token lists first (male before female), then falls back to a
// vowel-ending heuristic, and returns "" when neither applies. Names that
// already carry an honorific are returned unchanged by Salutation.
func InferHonorific(name string) string {
	n := NormalizeName(name)
	if n == "" {
		return ""
	}
	for _, tok := range strings.Fields(n) {
		for _, m := range maleNameTokens {
			if tok == m {
				return "Mr."
			}
		}
		for _, f := range femaleNameTokens {
			if tok == f {
				return "Mrs."
			}
		}
	}
	first := strings.Fields(n)[0]
	switch first[len(first)-1] {
	case 'a', 'i':
		return "Mrs."
	case 'o', 'u':
		return "Mr."
	}
	return ""
}

// Salutation renders a teacher name for display, prepending an inferred
// honorific when the source cell carries none.
func Salutation(name string) string {
	trimmed := strings.TrimSpace(name)
	lower := strings.ToLower(trimmed)
	for _, h := range honorifics {
		if strings.HasPrefix(lower, h) {
			return trimmed
		}
	}
	if h := InferHonorific(trimmed); h != "" {
		return h + " " + trimmed
	}
	return trimmed
}
