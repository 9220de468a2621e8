// Package source reads tokenizer input files, choosing between a plain
// os.ReadFile and an mmap-backed read depending on file size.
package source

import (
	"os"

	"github.com/shadowCow/lexkit/lexerr"
)

// MmapThreshold is the file size, in bytes, above which Open prefers a
// memory-mapped read over a buffered os.ReadFile. Below it the syscall
// overhead of mmap/munmap isn't worth paying.
const MmapThreshold = 1 << 20 // 1 MiB

// Source exposes the bytes of an opened input file. Callers must Close it
// once done; Bytes is only valid until Close returns.
type Source interface {
	Bytes() []byte
	Close() error
}

// Open reads path, mapping it into memory when its size exceeds
// MmapThreshold and the platform supports it, and falling back to a
// buffered read otherwise.
func Open(path string) (Source, error) {
	return OpenWithThreshold(path, MmapThreshold)
}

// OpenWithThreshold is Open with a caller-supplied mmap threshold, so
// front-ends can expose it as a tunable flag.
func OpenWithThreshold(path string, threshold int64) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &lexerr.IOError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &lexerr.IOError{Path: path, Op: "stat", Err: err}
	}

	if info.Size() > threshold {
		if s, err := openMapped(path, f, info.Size()); err == nil {
			return s, nil
		}
		// Fall through to a buffered read if mapping failed for any reason
		// (e.g. an unsupported filesystem); mmap is an optimization, not a
		// requirement.
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &lexerr.IOError{Path: path, Op: "read", Err: err}
	}
	return &bufferedSource{data: data}, nil
}

type bufferedSource struct {
	data []byte
}

func (b *bufferedSource) Bytes() []byte { return b.data }
func (b *bufferedSource) Close() error  { return nil }
