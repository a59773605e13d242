//go:build !unix

package bytespan

import "os"

// Non-unix platforms (notably Windows) fall back to a plain read: the
// reader only ever needs a stable read-only []byte, and mmap is purely an
// optimization on the platforms that have it cheaply via syscall.
func mmapReadOnly(file *os.File, size int64) ([]byte, error) {
	data := make([]byte, size)
	if _, err := file.ReadAt(data, 0); err != nil {
		return nil, err
	}
	return data, nil
}

func munmap(data []byte) error { return nil }
