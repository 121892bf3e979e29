package m4atag

import "net/http"

// Option configures tag extraction.
//
// Options use the functional options pattern:
//
//	file, err := m4atag.ReadFile("song.m4a",
//	    m4atag.WithFields("title", "artist"),
//	)
type Option func(*options)

// options holds configuration for reading tags.
type options struct {
	fields         []string     // Semantic fields to decode (nil = all)
	httpClient     *http.Client // Client for URL sources
	ignoreWarnings bool         // Suppress mapping warnings
}

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithFields restricts decoding to the given semantic field names
// ("title", "artist", "album", "picture", ...).
//
// Atoms carrying other fields are still walked (their headers drive
// the traversal) but their values are not decoded or stored.
func WithFields(fields ...string) Option {
	return func(o *options) {
		o.fields = fields
	}
}

// WithHTTPClient sets the client used by ReadURL.
//
// Use this to configure timeouts, proxies or authentication for
// remote sources:
//
//	client := &http.Client{Timeout: 10 * time.Second}
//	file, err := m4atag.ReadURL(ctx, url, m4atag.WithHTTPClient(client))
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithIgnoreWarnings suppresses all mapping warnings.
//
// By default, non-fatal issues (a non-numeric year, artwork whose
// sniffed format disagrees with its declared one) are collected in
// File.Warnings. This option discards them.
func WithIgnoreWarnings() Option {
	return func(o *options) {
		o.ignoreWarnings = true
	}
}
