// Package types holds the shared contracts between the public API and
// the internal atom-traversal and source packages.
package types

import "context"

// Range is an inclusive span of byte offsets within a source.
type Range struct {
	Start int64
	End   int64
}

// RangeAt returns the inclusive range covering n bytes starting at off.
func RangeAt(off, n int64) Range {
	return Range{Start: off, End: off + n - 1}
}

// Length returns the number of bytes the range covers.
func (r Range) Length() int64 {
	return r.End - r.Start + 1
}

// Clamp limits the range to [0, size).
func (r Range) Clamp(size int64) Range {
	if r.Start < 0 {
		r.Start = 0
	}
	if r.End > size-1 {
		r.End = size - 1
	}
	return r
}

// Source is a byte-addressable data source whose contents may be
// materialized incrementally (a local file, an in-memory buffer, a
// remote resource fetched with range requests).
//
// Accessor methods are only valid for offsets covered by a prior
// successful LoadRange call. Fully in-memory sources satisfy every
// LoadRange with a bounds check.
type Source interface {
	// Size returns the total size of the underlying data in bytes.
	Size() int64

	// LoadRange guarantees the given inclusive byte range is readable
	// by the accessor methods. Ranges extending past the end of the
	// data are clamped. A failed load is not retried.
	LoadRange(ctx context.Context, r Range) error

	// ByteAt returns the byte at off.
	ByteAt(off int64) (byte, error)

	// Uint16At returns the 16-bit integer at off.
	Uint16At(off int64, bigEndian bool) (uint16, error)

	// Uint24At returns the 24-bit integer at off.
	Uint24At(off int64, bigEndian bool) (uint32, error)

	// Uint32At returns the 32-bit integer at off.
	Uint32At(off int64, bigEndian bool) (uint32, error)

	// StringAt returns n raw bytes at off as a string. No charset
	// conversion is applied; FourCC bytes like 0xA9 come back verbatim.
	StringAt(off, n int64) (string, error)

	// BytesAt returns a copy of n bytes at off.
	BytesAt(off, n int64) ([]byte, error)

	// TextAt decodes n bytes at off using the named charset
	// ("utf-8", "utf-16", "iso-8859-1").
	TextAt(off, n int64, charset string) (string, error)
}
