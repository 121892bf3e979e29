package m4atag

import (
	"fmt"
	"strconv"

	"github.com/dmercer/m4atag/internal/m4a"
)

// Tags is the semantic view of a decoded tag mapping.
//
// The decode pass keys values by raw FourCC ("©nam", "trkn", ...);
// this layer does the renaming to named fields. The raw mapping stays
// available on File.Raw for anything not covered here.
type Tags struct {
	Title     string
	Artist    string
	Album     string
	Genre     string
	Composer  string
	Encoder   string
	Copyright string
	Grouping  string
	Keyword   string
	Lyrics    string
	Comment   string

	// Year parsed from the ©day atom. 0 when the atom is missing or
	// not numeric (the raw value is still in File.Raw).
	Year int

	TrackNumber int
	TrackTotal  int
	Disc        int
	Tempo       int
	Compilation bool
}

// tagsFromRaw maps raw FourCC entries to semantic fields and extracts
// the artwork, collecting non-fatal oddities as warnings.
func tagsFromRaw(raw map[string]Value) (Tags, *Artwork, []Warning) {
	var (
		t        Tags
		art      *Artwork
		warnings []Warning
	)

	for fourcc, v := range raw {
		switch m4a.Fields[fourcc] {
		case "title":
			t.Title = textOf(v)
		case "artist":
			t.Artist = textOf(v)
		case "album":
			t.Album = textOf(v)
		case "genre":
			t.Genre = textOf(v)
		case "composer":
			t.Composer = textOf(v)
		case "encoder":
			t.Encoder = textOf(v)
		case "copyright":
			t.Copyright = textOf(v)
		case "grouping":
			t.Grouping = textOf(v)
		case "keyword":
			t.Keyword = textOf(v)
		case "lyrics":
			t.Lyrics = textOf(v)
		case "comment":
			if c, ok := v.(Comment); ok {
				t.Comment = c.Text
			}
		case "year":
			year, err := strconv.Atoi(textOf(v))
			if err != nil {
				warnings = append(warnings, Warning{
					Stage:   "mapping",
					Message: fmt.Sprintf("non-numeric year %q", textOf(v)),
				})
				continue
			}
			t.Year = year
		case "track":
			if tr, ok := v.(Track); ok {
				t.TrackNumber = tr.Number
				t.TrackTotal = tr.Count
			}
		case "disc":
			t.Disc = uintOf(v)
		case "tempo":
			t.Tempo = uintOf(v)
		case "compilation":
			t.Compilation = uintOf(v) != 0
		case "picture":
			if p, ok := v.(Picture); ok {
				var w []Warning
				art, w = newArtwork(p)
				warnings = append(warnings, w...)
			}
		}
	}

	return t, art, warnings
}

func textOf(v Value) string {
	s, _ := v.(Text)
	return string(s)
}

func uintOf(v Value) int {
	n, _ := v.(Uint)
	return int(n)
}
