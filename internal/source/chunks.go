// Package source provides byte-addressable data sources that can be
// materialized incrementally, one requested range at a time.
package source

import "sort"

// chunk is a contiguous span of loaded bytes.
type chunk struct {
	off  int64
	data []byte
}

// chunkList tracks loaded spans, kept sorted and non-overlapping.
type chunkList struct {
	chunks []chunk
}

// slice returns the n bytes at off if a single loaded chunk covers them.
func (l *chunkList) slice(off, n int64) ([]byte, bool) {
	for _, c := range l.chunks {
		if off >= c.off && off+n <= c.off+int64(len(c.data)) {
			return c.data[off-c.off : off-c.off+n], true
		}
	}
	return nil, false
}

// covered reports whether the n bytes at off are fully loaded.
func (l *chunkList) covered(off, n int64) bool {
	_, ok := l.slice(off, n)
	return ok
}

// insert adds a loaded span, folding overlapping and adjacent chunks
// into one so that later reads spanning two requests still resolve.
func (l *chunkList) insert(off int64, data []byte) {
	merged := chunk{off: off, data: data}
	var rest []chunk

	for _, c := range l.chunks {
		cEnd := c.off + int64(len(c.data))
		mEnd := merged.off + int64(len(merged.data))
		if cEnd < merged.off || c.off > mEnd {
			rest = append(rest, c)
			continue
		}
		if c.off < merged.off {
			head := c.data[:merged.off-c.off]
			buf := make([]byte, 0, len(head)+len(merged.data))
			buf = append(buf, head...)
			buf = append(buf, merged.data...)
			merged = chunk{off: c.off, data: buf}
			mEnd = merged.off + int64(len(merged.data))
		}
		if cEnd > mEnd {
			merged.data = append(merged.data, c.data[int64(len(c.data))-(cEnd-mEnd):]...)
		}
	}

	rest = append(rest, merged)
	sort.Slice(rest, func(i, j int) bool { return rest[i].off < rest[j].off })
	l.chunks = rest
}
