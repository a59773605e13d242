package bytespan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromBytes(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	s := FromBytes(data)
	if s.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", s.Size())
	}
	if got := s.Bytes(); len(got) != 4 || got[0] != 1 {
		t.Fatalf("Bytes() = %v", got)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() on a mem span: %v", err)
	}
}

func TestOpenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.ifc")
	want := []byte("TQE\x1afake-ifc-bytes-for-span-test")
	if err := os.WriteFile(path, want, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if s.Size() != len(want) {
		t.Fatalf("Size() = %d, want %d", s.Size(), len(want))
	}
	got := s.Bytes()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Bytes()[%d] = %x, want %x", i, got[i], want[i])
		}
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "does-not-exist.ifc")); err == nil {
		t.Fatal("expected an error opening a nonexistent file")
	}
}

func TestOpenEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.ifc")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("expected an error opening an empty file")
	}
}
