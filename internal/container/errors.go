package container

import "fmt"

// The structural/recoverable error kinds surfaced at the boundary (spec.md
// §6.3). Grounded on the teacher's libravdb/errors.go error-code taxonomy,
// pared down to the closed set the container actually raises — no retry or
// circuit-breaker machinery, since validate never retries (spec.md §7).

// MissingIfcHeaderError is raised when the file's leading signature does not
// match the fixed IFC pattern.
type MissingIfcHeaderError struct{ Path string }

func (e *MissingIfcHeaderError) Error() string {
	return fmt.Sprintf("container: %s: missing or invalid IFC signature", e.Path)
}

// UnsupportedFormatVersionError is raised when the header's format version
// falls outside [MinimumFormatVersion..CurrentFormatVersion] and is not the
// EDGFormatVersion escape hatch.
type UnsupportedFormatVersionError struct {
	Path    string
	Version FormatVersionPair
}

func (e *UnsupportedFormatVersionError) Error() string {
	return fmt.Sprintf("container: %s: unsupported format version %d.%d", e.Path, e.Version.Major, e.Version.Minor)
}

// IntegrityCheckFailedError is raised when the stored SHA-256 digest does
// not match the digest computed over the remainder of the file.
type IntegrityCheckFailedError struct {
	Path     string
	Expected [32]byte
	Actual   [32]byte
}

func (e *IntegrityCheckFailedError) Error() string {
	return fmt.Sprintf("container: %s: integrity check failed: expected %x, got %x", e.Path, e.Expected, e.Actual)
}

// IfcArchMismatchError is raised when the requested target architecture is
// incompatible with the header's recorded architecture.
type IfcArchMismatchError struct {
	Name string
	Path string
}

func (e *IfcArchMismatchError) Error() string {
	return fmt.Sprintf("container: %s: architecture mismatch (%s)", e.Path, e.Name)
}

// IfcReadFailureError wraps any short/truncated read against the byte span.
type IfcReadFailureError struct {
	Path string
	Err  error
}

func (e *IfcReadFailureError) Error() string {
	return fmt.Sprintf("container: %s: read failure: %v", e.Path, e.Err)
}

func (e *IfcReadFailureError) Unwrap() error { return e.Err }

// InvalidPartitionNameError is raised when the table of contents names a
// partition the catalog does not recognize and which is not covered by the
// vendor fallback prefix.
type InvalidPartitionNameError struct{ Name string }

func (e *InvalidPartitionNameError) Error() string {
	return fmt.Sprintf("container: invalid partition name %q", e.Name)
}

// FormatVersionPair is the plain (major, minor) pair embedded in error
// values; it mirrors prim.FormatVersion without importing prim into the
// public error surface.
type FormatVersionPair struct {
	Major uint8
	Minor uint8
}
