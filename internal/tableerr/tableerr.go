// Package tableerr declares the sentinel errors surfaced by table loading
// and search, and the panic helpers for the two fatal conditions the
// engine never tries to recover from.
package tableerr

import "fmt"

// ErrLoad means a table file is missing, the wrong size, or unreadable.
// Callers treat it as a signal to generate the table and retry, not as a
// fatal condition.
var ErrLoad = fmt.Errorf("table load failed")

// ErrNoSolution means a search exhausted its depth bound without finding
// a solution. It is not a fatal assertion: an empty result, not a bug. No
// function in this repository returns it; searches report an exhausted
// bound as an empty solution list.
var ErrNoSolution = fmt.Errorf("no solution within depth bound")

// LoadError wraps ErrLoad with the file path and underlying cause.
func LoadError(path string, cause error) error {
	return fmt.Errorf("%s: %w: %v", path, ErrLoad, cause)
}

// InvariantViolation panics: a coordinate-to-state conversion produced an
// inconsistent cube, or a generated pruning table left unreachable entries
// after its BFS. This mirrors the original engine's assert() calls, which
// are fatal, not recovered.
func InvariantViolation(format string, args ...any) {
	panic("invariant violation: " + fmt.Sprintf(format, args...))
}

// OutOfBounds panics: a computed table index fell outside the table's
// allocated size.
func OutOfBounds(format string, args ...any) {
	panic("index out of bounds: " + fmt.Sprintf(format, args...))
}
