//go:build unix

package source

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/shadowCow/lexkit/lexerr"
)

// mappedSource holds a read-only mmap of an open file. f is kept open only
// long enough to establish the mapping; the mapping itself stays valid
// after f is closed.
type mappedSource struct {
	data []byte
}

func openMapped(path string, f *os.File, size int64) (Source, error) {
	if size == 0 {
		return &bufferedSource{data: nil}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, &lexerr.IOError{Path: path, Op: "mmap", Err: err}
	}
	return &mappedSource{data: data}, nil
}

func (m *mappedSource) Bytes() []byte { return m.data }

func (m *mappedSource) Close() error {
	if m.data == nil {
		return nil
	}
	return unix.Munmap(m.data)
}
