package m4atag

import (
	"context"
	"io"
	"net/http"

	"github.com/dmercer/m4atag/internal/source"
	"github.com/dmercer/m4atag/internal/types"
)

// Source is an alias to types.Source.
// Re-exported from internal/types so that internal packages and the
// public API share one contract.
type Source = types.Source

// Range is an alias to types.Range. Ranges are inclusive byte spans.
type Range = types.Range

// Value is an alias to types.Value, the closed set of decoded tag
// payloads.
type Value = types.Value

// Aliases for the Value implementations.
type (
	// Text is a UTF-8 string payload.
	Text = types.Text
	// Uint is an unsigned integer payload.
	Uint = types.Uint
	// Track is the track-number payload of a trkn atom.
	Track = types.Track
	// Picture is an embedded image payload.
	Picture = types.Picture
	// Comment wraps the comment string of a ©cmt atom.
	Comment = types.Comment
)

// FileSource is a Source backed by a local file.
type FileSource = source.File

// HTTPSource is a Source backed by a remote resource fetched with HTTP
// range requests.
type HTTPSource = source.HTTP

// NewBufferSource returns a fully loaded Source over a byte slice.
func NewBufferSource(data []byte) Source {
	return source.NewBuffer(data)
}

// NewReaderAtSource returns a Source over an io.ReaderAt of known size.
// Ranges are materialized with positioned reads as the loader asks for
// them.
func NewReaderAtSource(r io.ReaderAt, size int64) Source {
	return source.NewReaderAt(r, size)
}

// OpenFileSource opens a file-backed Source. Always call Close when
// done.
func OpenFileSource(path string) (*FileSource, error) {
	return source.Open(path)
}

// OpenURLSource probes the resource size and returns an HTTP-backed
// Source. A nil client uses http.DefaultClient.
func OpenURLSource(ctx context.Context, url string, client *http.Client) (*HTTPSource, error) {
	return source.OpenURL(ctx, url, client)
}
