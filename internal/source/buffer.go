package source

// NewBuffer returns a Source over an in-memory byte slice. The whole
// buffer counts as loaded, so every LoadRange call is a bounds check.
func NewBuffer(data []byte) *Chunked {
	c := &Chunked{size: int64(len(data))}
	if len(data) > 0 {
		c.chunks.insert(0, data)
	}
	return c
}
