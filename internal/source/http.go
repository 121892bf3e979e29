package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmercer/m4atag/internal/types"
)

// HTTP is a Source backed by a remote resource fetched with HTTP range
// requests. This is what the lazy load pass exists for: reading tags
// from a remote M4A transfers only the atom headers plus the ilst
// payload, never the audio data.
type HTTP struct {
	Chunked
	url    string
	client *http.Client
}

// OpenURL probes the resource size and returns an HTTP-backed source.
// A nil client uses http.DefaultClient.
func OpenURL(ctx context.Context, url string, client *http.Client) (*HTTP, error) {
	if client == nil {
		client = http.DefaultClient
	}
	src := &HTTP{url: url, client: client}

	size, err := src.discoverSize(ctx)
	if err != nil {
		return nil, fmt.Errorf("discover size of %s: %w", url, err)
	}
	src.Chunked = Chunked{size: size, fetch: src.fetchRange}
	return src, nil
}

// discoverSize tries a HEAD request first and falls back to a one-byte
// range GET, parsing the Content-Range total.
func (s *HTTP) discoverSize(ctx context.Context) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, s.url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := s.client.Do(req)
	if err == nil {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		if resp.StatusCode == http.StatusOK && resp.ContentLength >= 0 {
			return resp.ContentLength, nil
		}
	}

	req, err = http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Range", "bytes=0-0")
	resp, err = s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode == http.StatusPartialContent {
		return parseContentRangeTotal(resp.Header.Get("Content-Range"))
	}
	if resp.StatusCode == http.StatusOK && resp.ContentLength >= 0 {
		return resp.ContentLength, nil
	}
	return 0, fmt.Errorf("server did not report a size (status %d)", resp.StatusCode)
}

// fetchRange issues one GET with a Range header for the inclusive span.
func (s *HTTP) fetchRange(ctx context.Context, r types.Range) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Range", fmt.Sprintf("bytes=%d-%d", r.Start, r.End))

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusPartialContent:
		buf := make([]byte, r.Length())
		if _, err := io.ReadFull(resp.Body, buf); err != nil {
			return nil, fmt.Errorf("read range body: %w", err)
		}
		return buf, nil
	case http.StatusOK:
		// Server ignored the Range header and sent the whole resource.
		body, err := io.ReadAll(io.LimitReader(resp.Body, r.End+1))
		if err != nil {
			return nil, fmt.Errorf("read full body: %w", err)
		}
		if int64(len(body)) < r.End+1 {
			return nil, fmt.Errorf("body too short: got %d bytes, need %d", len(body), r.End+1)
		}
		return body[r.Start : r.End+1], nil
	default:
		return nil, fmt.Errorf("unexpected status %d for range %d-%d", resp.StatusCode, r.Start, r.End)
	}
}

// parseContentRangeTotal extracts the total size from a Content-Range
// header such as "bytes 0-0/4523".
func parseContentRangeTotal(header string) (int64, error) {
	idx := strings.LastIndex(header, "/")
	if idx < 0 {
		return 0, fmt.Errorf("malformed Content-Range %q", header)
	}
	total, err := strconv.ParseInt(header[idx+1:], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed Content-Range %q: %w", header, err)
	}
	return total, nil
}
