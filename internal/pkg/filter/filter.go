package filter

import "strings"

// Predicate reports whether a record passes one filter clause.
type Predicate[T any] func(T) bool

// Apply returns the records matching every predicate, preserving the
// input's relative order. Predicates are evaluated in the order given, so
// callers should put cheap exact-match clauses before substring search.
// With no predicates the result is a value-equal copy of the input.
func Apply[T any](records []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if matchesAll(rec, preds) {
			out = append(out, rec)
		}
	}
	return out
}

func matchesAll[T any](rec T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if p != nil && !p(rec) {
			return false
		}
	}
	return true
}

// MatchText reports whether any field contains the query as a
// case-insensitive substring. An empty query matches everything; absent
// fields come in as empty strings and simply never match.
func MatchText(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
