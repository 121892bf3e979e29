package source

import (
	"context"
	"encoding/binary"

	"github.com/dmercer/m4atag/internal/types"
)

// fetchFunc materializes the bytes of an inclusive range from the
// backing store (file read, HTTP range request).
type fetchFunc func(ctx context.Context, r types.Range) ([]byte, error)

// Chunked implements types.Source over a lazily materialized byte
// store. Each LoadRange call fetches at most once; accessors serve
// the loaded chunks and fail with NotLoadedError for anything else.
type Chunked struct {
	size   int64
	chunks chunkList
	fetch  fetchFunc
}

// Size returns the total size of the underlying data.
func (c *Chunked) Size() int64 {
	return c.size
}

// LoadRange guarantees the given inclusive range is readable. Ranges
// past the end of the data are clamped; already-loaded ranges are not
// fetched again.
func (c *Chunked) LoadRange(ctx context.Context, r types.Range) error {
	r = r.Clamp(c.size)
	if r.Start > r.End {
		return nil
	}
	if c.chunks.covered(r.Start, r.Length()) {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return &types.RangeRequestError{Range: r, Err: err}
	}
	data, err := c.fetch(ctx, r)
	if err != nil {
		return &types.RangeRequestError{Range: r, Err: err}
	}
	c.chunks.insert(r.Start, data)
	return nil
}

// view returns n loaded bytes at off, without copying.
func (c *Chunked) view(off, n int64, what string) ([]byte, error) {
	if off < 0 || off >= c.size || off+n > c.size {
		return nil, &types.OutOfBoundsError{What: what, Offset: off, Length: n, Size: c.size}
	}
	b, ok := c.chunks.slice(off, n)
	if !ok {
		return nil, &types.NotLoadedError{Offset: off, Length: n}
	}
	return b, nil
}

// ByteAt returns the byte at off.
func (c *Chunked) ByteAt(off int64) (byte, error) {
	b, err := c.view(off, 1, "byte")
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Uint16At returns the 16-bit integer at off.
func (c *Chunked) Uint16At(off int64, bigEndian bool) (uint16, error) {
	b, err := c.view(off, 2, "uint16")
	if err != nil {
		return 0, err
	}
	if bigEndian {
		return binary.BigEndian.Uint16(b), nil
	}
	return binary.LittleEndian.Uint16(b), nil
}

// Uint24At returns the 24-bit integer at off.
func (c *Chunked) Uint24At(off int64, bigEndian bool) (uint32, error) {
	b, err := c.view(off, 3, "uint24")
	if err != nil {
		return 0, err
	}
	if bigEndian {
		return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
	}
	return uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0]), nil
}

// Uint32At returns the 32-bit integer at off.
func (c *Chunked) Uint32At(off int64, bigEndian bool) (uint32, error) {
	b, err := c.view(off, 4, "uint32")
	if err != nil {
		return 0, err
	}
	if bigEndian {
		return binary.BigEndian.Uint32(b), nil
	}
	return binary.LittleEndian.Uint32(b), nil
}

// StringAt returns n raw bytes at off as a string.
func (c *Chunked) StringAt(off, n int64) (string, error) {
	b, err := c.view(off, n, "string")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// BytesAt returns a copy of n bytes at off.
func (c *Chunked) BytesAt(off, n int64) ([]byte, error) {
	b, err := c.view(off, n, "bytes")
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// TextAt decodes n bytes at off using the named charset.
func (c *Chunked) TextAt(off, n int64, charset string) (string, error) {
	b, err := c.view(off, n, "text")
	if err != nil {
		return "", err
	}
	return decodeText(b, charset)
}
