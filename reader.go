package m4atag

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/dmercer/m4atag/internal/m4a"
)

// File holds the result of a tag extraction.
type File struct {
	// Path or URL the source was opened from (empty for buffers)
	Path string

	// Total size of the source in bytes
	Size int64

	// Semantic metadata
	Tags Tags

	// Embedded cover art, nil when the file has none
	Artwork *Artwork

	// Decoded values keyed by raw FourCC
	Raw map[string]Value

	// Non-fatal issues encountered while mapping values
	Warnings []Warning
}

// Reader drives the two-phase extraction lifecycle over a Source:
// a lazy load pass that materializes only the byte ranges tag decoding
// needs, then a synchronous decode pass over the loaded bytes.
//
// The phases are exposed separately so callers can interleave their
// own work, but most code should use Read (or the ReadFile/ReadURL
// helpers) which runs both.
type Reader struct {
	src  Source
	opts *options
}

// NewReader returns a Reader over the given source.
func NewReader(src Source, opts ...Option) *Reader {
	return &Reader{src: src, opts: applyOptions(opts)}
}

// Load runs the lazy load pass: it primes the leading signature bytes,
// verifies the format, then walks the atom chain issuing one dependent
// range request per step. After a nil return the source holds every
// byte Decode will touch.
func (r *Reader) Load(ctx context.Context) error {
	if err := r.src.LoadRange(ctx, m4a.SignatureRange); err != nil {
		return err
	}
	if !m4a.MatchesSignature(r.src) {
		return &UnsupportedFormatError{Reason: `missing "ftypM4A" signature`}
	}
	return m4a.NewLoader(r.src).Load(ctx)
}

// Decode runs the synchronous decode pass and returns the tag mapping
// keyed by raw FourCC. fields, when given, restrict decoding to those
// semantic field names. Call after a successful Load.
func (r *Reader) Decode(fields ...string) map[string]Value {
	return m4a.NewDecoder(r.src).Decode(fields)
}

// Read runs both passes and maps the raw values to semantic tags.
func (r *Reader) Read(ctx context.Context) (*File, error) {
	if err := r.Load(ctx); err != nil {
		return nil, err
	}
	raw := r.Decode(r.opts.fields...)

	file := &File{Size: r.src.Size(), Raw: raw}
	file.Tags, file.Artwork, file.Warnings = tagsFromRaw(raw)
	if r.opts.ignoreWarnings {
		file.Warnings = nil
	}
	return file, nil
}

// MatchesFormat reports whether the leading bytes of the source carry
// the M4A tag signature (FourCC "ftypM4A" at byte offset 4). The
// first 11 bytes of the source must already be loaded.
func MatchesFormat(src Source) bool {
	return m4a.MatchesSignature(src)
}

// ReadFile extracts tags from a local file.
//
// Only the byte ranges tag decoding needs are read off disk: atom
// headers, plus the payloads under moov.udta.meta.ilst.
//
// Example:
//
//	file, err := m4atag.ReadFile("song.m4a")
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%s - %s\n", file.Tags.Artist, file.Tags.Title)
func ReadFile(path string, opts ...Option) (*File, error) {
	return ReadFileContext(context.Background(), path, opts...)
}

// ReadFileContext is ReadFile with context support for cancellation.
func ReadFileContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	src, err := OpenFileSource(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	file, err := NewReader(src, opts...).Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	file.Path = path
	return file, nil
}

// ReadURL extracts tags from a remote resource using HTTP range
// requests. Only atom headers and the tag payload are transferred,
// never the audio data.
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	file, err := m4atag.ReadURL(ctx, "https://example.com/song.m4a")
func ReadURL(ctx context.Context, url string, opts ...Option) (*File, error) {
	o := applyOptions(opts)
	src, err := OpenURLSource(ctx, url, o.httpClient)
	if err != nil {
		return nil, err
	}

	file, err := NewReader(src, opts...).Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	file.Path = url
	return file, nil
}

// ReadFrom extracts tags from an arbitrary Source.
func ReadFrom(ctx context.Context, src Source, opts ...Option) (*File, error) {
	return NewReader(src, opts...).Read(ctx)
}

// ReadMany extracts tags from multiple files concurrently.
//
// Files are processed in parallel using up to runtime.NumCPU()
// goroutines. Results are returned in the same order as the input
// paths. The first failure cancels the remaining work.
func ReadMany(ctx context.Context, paths ...string) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			file, err := ReadFileContext(ctx, path)
			if err != nil {
				return err
			}
			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
