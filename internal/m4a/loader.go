package m4a

import (
	"context"

	"github.com/dmercer/m4atag/internal/types"
)

// Loader walks the atom chain using only headers and materializes
// every byte range the decode pass will need.
//
// Loading is a strictly sequential chain: the offset and name needed
// to compute the next range are only known after the previous header
// has been read, so each step's range request also primes the next
// step's header. No two range loads are ever in flight at once.
type Loader struct {
	src types.Source
}

// NewLoader returns a Loader over the given source.
func NewLoader(src types.Source) *Loader {
	return &Loader{src: src}
}

// Load primes the signature span and walks the chain from offset 0.
// It returns nil once every range the decoder needs has been loaded,
// or the first range-load failure. A failed load aborts the chain;
// there is no retry.
func (l *Loader) Load(ctx context.Context) error {
	if err := l.src.LoadRange(ctx, SignatureRange); err != nil {
		return err
	}
	return l.loadAtom(ctx, 0, "")
}

func (l *Loader) loadAtom(ctx context.Context, off int64, parentPath string) error {
	if off >= l.src.Size() {
		return nil
	}
	size, name, err := readHeader(l.src, off)
	if err != nil || size == 0 {
		// End of usable data, not corruption. Stop without error.
		return nil
	}

	if isContainer(name) {
		child := childOffset(name, off)
		// Children start right after the header. Load the first
		// child's header plus one more header's worth to prime the
		// step after it.
		if err := l.src.LoadRange(ctx, types.RangeAt(child, 2*headerSize)); err != nil {
			return err
		}
		return l.loadAtom(ctx, child, extendPath(parentPath, name))
	}

	next := off + int64(size)
	r := types.RangeAt(next, headerSize)
	if parentPath == metadataPath {
		// Tag-bearing payloads must be resident for the decode pass.
		// Everything else is skipped: only its header address matters.
		r = types.Range{Start: off, End: next + headerSize - 1}
	}
	if err := l.src.LoadRange(ctx, r); err != nil {
		return err
	}
	return l.loadAtom(ctx, next, parentPath)
}
