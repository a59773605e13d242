package reader

import "fmt"

// AssertionError represents a programming/fatal failure (spec.md §7): sort
// mismatches, out-of-range indices, truncated partitions, or a visit
// reaching a vendor/reserved/Count sort. Reader.fail builds one and it is
// returned to the caller as an ordinary error value; the reader does not
// panic on these failures. It carries file/line/expression diagnostics,
// mirroring the original's assertion.
type AssertionError struct {
	File       string
	Line       int
	Expression string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("%s:%d: assertion failed: %s", e.File, e.Line, e.Expression)
}
