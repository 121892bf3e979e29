package source

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmercer/m4atag/internal/types"
)

// File is a Source backed by a local file. Ranges are materialized
// with positioned reads, so only the spans the loader asks for are
// ever pulled off disk.
type File struct {
	Chunked
	f *os.File
}

// Open opens a file-backed source.
//
// Always call Close when done.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat file: %w", err)
	}

	src := &File{f: f}
	src.Chunked = Chunked{
		size:  stat.Size(),
		fetch: readerAtFetch(f),
	}
	return src, nil
}

// Close releases the underlying file handle.
func (s *File) Close() error {
	return s.f.Close()
}

// NewReaderAt returns a Source over an io.ReaderAt of known size.
func NewReaderAt(r io.ReaderAt, size int64) *Chunked {
	return &Chunked{size: size, fetch: readerAtFetch(r)}
}

func readerAtFetch(r io.ReaderAt) fetchFunc {
	return func(_ context.Context, rng types.Range) ([]byte, error) {
		buf := make([]byte, rng.Length())
		n, err := r.ReadAt(buf, rng.Start)
		if err != nil && err != io.EOF {
			return nil, err
		}
		if int64(n) < rng.Length() {
			return nil, fmt.Errorf("short read: got %d bytes at offset %d, expected %d",
				n, rng.Start, rng.Length())
		}
		return buf, nil
	}
}
