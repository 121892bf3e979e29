package m4atag

import (
	"fmt"

	"github.com/h2non/filetype"
)

// Artwork is an embedded image extracted from a covr atom.
type Artwork struct {
	// MIME type of the image data ("image/jpeg", "image/png")
	MIMEType string

	// Raw image bytes
	Data []byte
}

// Extension returns a file extension for the image data ("jpg",
// "png"), sniffed from the bytes with a fallback on the MIME type.
func (a *Artwork) Extension() string {
	if kind, err := filetype.Match(a.Data); err == nil && kind != filetype.Unknown {
		return kind.Extension
	}
	switch a.MIMEType {
	case "image/jpeg":
		return "jpg"
	case "image/png":
		return "png"
	default:
		return "bin"
	}
}

// String returns a human-readable description, e.g. "image/jpeg (24KB)".
func (a *Artwork) String() string {
	return fmt.Sprintf("%s (%s)", a.MIMEType, formatSize(len(a.Data)))
}

// newArtwork builds an Artwork from a decoded picture value. The MIME
// type declared by the atom's type class is cross-checked against the
// image bytes; some encoders label JPEG data as PNG and vice versa.
func newArtwork(p Picture) (*Artwork, []Warning) {
	art := &Artwork{MIMEType: p.MIME, Data: p.Data}

	kind, err := filetype.Match(p.Data)
	if err != nil || kind == filetype.Unknown || kind.MIME.Value == "" {
		return art, nil
	}
	if kind.MIME.Value != p.MIME {
		art.MIMEType = kind.MIME.Value
		return art, []Warning{{
			Stage:   "artwork",
			Message: fmt.Sprintf("declared type %s but data looks like %s", p.MIME, kind.MIME.Value),
		}}
	}
	return art, nil
}

// formatSize formats byte size in human-readable form.
func formatSize(bytes int) string {
	const (
		kb = 1024
		mb = 1024 * kb
	)
	switch {
	case bytes >= mb:
		return fmt.Sprintf("%.1fMB", float64(bytes)/float64(mb))
	case bytes >= kb:
		return fmt.Sprintf("%dKB", bytes/kb)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}
