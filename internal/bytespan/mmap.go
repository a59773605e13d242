// Package bytespan provides the zero-copy byte-span abstraction the reader
// is built on: a read-only view over the bytes of an .ifc file, backed
// either by an mmap of the file (the production path) or a plain in-memory
// slice (for tests and for callers that already have the bytes).
//
// Grounded on the teacher's internal/memory/mmap.go: same syscall.Mmap /
// syscall.Munmap lifecycle, trimmed to the read-only, non-resizable shape an
// already-written IFC file needs (no Resize, no write-mode, no manager
// registry — one span per container).
package bytespan

import (
	"fmt"
	"os"
)

// Span is a read-only view over a contiguous byte range. Readers never copy
// out of a Span except into fixed-size scalar buffers; everything else
// (strings, partition slices) is returned as a subslice of Bytes().
type Span interface {
	// Bytes returns the full underlying byte range. Callers must not
	// mutate the returned slice.
	Bytes() []byte
	// Size is len(Bytes()), kept as a named accessor to mirror the
	// C++ input_file::size() the span adapts.
	Size() int
	// Close releases any OS resources (the mmap, the open file
	// descriptor). It is always safe to call exactly once.
	Close() error
}

// memSpan is a Span over bytes already resident in the Go heap: used by
// tests and by ReadAll-style callers that don't want an mmap.
type memSpan struct{ data []byte }

// FromBytes wraps an in-memory byte slice as a Span. The slice is not
// copied; the caller must not mutate it afterward.
func FromBytes(data []byte) Span { return &memSpan{data: data} }

func (m *memSpan) Bytes() []byte { return m.data }
func (m *memSpan) Size() int     { return len(m.data) }
func (m *memSpan) Close() error  { return nil }

// mmapSpan is a Span backed by a read-only mmap of an on-disk file.
type mmapSpan struct {
	file *os.File
	data []byte
}

// Open memory-maps path read-only and returns a Span over its contents. The
// returned Span owns the file descriptor and the mapping; Close releases
// both.
func Open(path string) (Span, error) {
	file, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("bytespan: open %s: %w", path, err)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("bytespan: stat %s: %w", path, err)
	}
	size := stat.Size()
	if size == 0 {
		file.Close()
		return nil, fmt.Errorf("bytespan: %s is empty", path)
	}

	data, err := mmapReadOnly(file, size)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("bytespan: mmap %s: %w", path, err)
	}

	return &mmapSpan{file: file, data: data}, nil
}

// ReadFile reads path fully into the Go heap and wraps it as a Span. Use
// this instead of Open when the caller does not want an mmap held open for
// the Unit's lifetime (e.g. short-lived batch tooling over many files).
func ReadFile(path string) (Span, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bytespan: read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("bytespan: %s is empty", path)
	}
	return FromBytes(data), nil
}

func (s *mmapSpan) Bytes() []byte { return s.data }
func (s *mmapSpan) Size() int     { return len(s.data) }

func (s *mmapSpan) Close() error {
	var err error
	if s.data != nil {
		if unmapErr := munmap(s.data); unmapErr != nil {
			err = fmt.Errorf("bytespan: munmap: %w", unmapErr)
		}
		s.data = nil
	}
	if s.file != nil {
		if closeErr := s.file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("bytespan: close: %w", closeErr)
		}
		s.file = nil
	}
	return err
}
