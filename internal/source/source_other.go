//go:build !unix

package source

import (
	"errors"
	"os"
)

func openMapped(path string, f *os.File, size int64) (Source, error) {
	return nil, errors.New("mmap not supported on this platform")
}
