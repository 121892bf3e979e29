package m4atag_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/dmercer/m4atag"
)

// The builders below duplicate a little of internal/m4a's test setup,
// but keep the public API tests independent of internal packages.

func buildAtom(name string, payload []byte) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, uint32(8+len(payload)))
	buf.WriteString(name)
	buf.Write(payload)
	return buf.Bytes()
}

func buildContainer(name string, children ...[]byte) []byte {
	var body []byte
	if name == "meta" {
		body = append(body, 0, 0, 0, 0)
	}
	for _, c := range children {
		body = append(body, c...)
	}
	return buildAtom(name, body)
}

func buildValueAtom(name string, class uint32, payload []byte) []byte {
	data := &bytes.Buffer{}
	binary.Write(data, binary.BigEndian, uint32(16+len(payload)))
	data.WriteString("data")
	binary.Write(data, binary.BigEndian, class)
	binary.Write(data, binary.BigEndian, uint32(0))
	data.Write(payload)
	return buildAtom(name, data.Bytes())
}

func textAtom(name, value string) []byte {
	return buildValueAtom(name, 1, []byte(value))
}

// buildMedia assembles an M4A buffer: ftyp atom plus the given tag
// atoms wrapped in the moov.udta.meta.ilst chain.
func buildMedia(tagAtoms ...[]byte) []byte {
	out := buildAtom("ftyp", []byte("M4A \x00\x00\x00\x00M4A mp42isom"))
	out = append(out,
		buildContainer("moov",
			buildContainer("udta",
				buildContainer("meta",
					buildContainer("ilst", tagAtoms...))))...)
	return out
}

func TestReadFrom(t *testing.T) {
	media := buildMedia(
		textAtom("\xA9nam", "Song"),
		textAtom("\xA9ART", "Artist"),
		textAtom("\xA9alb", "Album"),
		textAtom("\xA9day", "2004"),
		buildValueAtom("trkn", 0, []byte{0, 0, 0, 5, 0, 12, 0, 0}),
		textAtom("\xA9cmt", "hello"),
	)

	file, err := m4atag.ReadFrom(context.Background(), m4atag.NewBufferSource(media))
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}

	if file.Tags.Title != "Song" {
		t.Errorf("Title = %q", file.Tags.Title)
	}
	if file.Tags.Artist != "Artist" {
		t.Errorf("Artist = %q", file.Tags.Artist)
	}
	if file.Tags.Album != "Album" {
		t.Errorf("Album = %q", file.Tags.Album)
	}
	if file.Tags.Year != 2004 {
		t.Errorf("Year = %d", file.Tags.Year)
	}
	if file.Tags.TrackNumber != 5 || file.Tags.TrackTotal != 12 {
		t.Errorf("Track = %d/%d, want 5/12", file.Tags.TrackNumber, file.Tags.TrackTotal)
	}
	if file.Tags.Comment != "hello" {
		t.Errorf("Comment = %q", file.Tags.Comment)
	}
	if file.Size != int64(len(media)) {
		t.Errorf("Size = %d, want %d", file.Size, len(media))
	}

	// Raw values stay keyed by FourCC.
	if v, ok := file.Raw["\xA9nam"]; !ok || v != m4atag.Text("Song") {
		t.Errorf(`Raw["©nam"] = %v, %v`, v, ok)
	}
	if c, ok := file.Raw["\xA9cmt"].(m4atag.Comment); !ok || c.Text != "hello" {
		t.Errorf(`Raw["©cmt"] = %v`, file.Raw["\xA9cmt"])
	}
}

func TestReadFrom_NotM4A(t *testing.T) {
	media := buildAtom("ftyp", []byte("mp42\x00\x00\x00\x00mp42isom"))

	_, err := m4atag.ReadFrom(context.Background(), m4atag.NewBufferSource(media))
	var ufe *m4atag.UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}
}

func TestMatchesFormat(t *testing.T) {
	if !m4atag.MatchesFormat(m4atag.NewBufferSource(buildMedia())) {
		t.Error("expected match for M4A media")
	}

	other := buildAtom("ftyp", []byte("M4B \x00\x00\x00\x00M4B isom"))
	if m4atag.MatchesFormat(m4atag.NewBufferSource(other)) {
		t.Error("expected no match for M4B brand")
	}
}

func TestReader_TwoPhase(t *testing.T) {
	media := buildMedia(textAtom("\xA9nam", "Song"))

	r := m4atag.NewReader(m4atag.NewBufferSource(media))
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	raw := r.Decode()
	if len(raw) != 1 {
		t.Fatalf("expected 1 raw entry, got %v", raw)
	}
	if raw["\xA9nam"] != m4atag.Text("Song") {
		t.Errorf("raw title = %v", raw["\xA9nam"])
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.m4a")
	media := buildMedia(textAtom("\xA9nam", "Song"), textAtom("\xA9ART", "Artist"))
	if err := os.WriteFile(path, media, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	file, err := m4atag.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if file.Path != path {
		t.Errorf("Path = %q", file.Path)
	}
	if file.Tags.Title != "Song" || file.Tags.Artist != "Artist" {
		t.Errorf("Tags = %+v", file.Tags)
	}
}

func TestReadFile_WithFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.m4a")
	media := buildMedia(textAtom("\xA9nam", "Song"), textAtom("\xA9ART", "Artist"))
	if err := os.WriteFile(path, media, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	file, err := m4atag.ReadFile(path, m4atag.WithFields("artist"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if file.Tags.Artist != "Artist" {
		t.Errorf("Artist = %q", file.Tags.Artist)
	}
	if file.Tags.Title != "" {
		t.Errorf("Title decoded despite field filter: %q", file.Tags.Title)
	}
	if len(file.Raw) != 1 {
		t.Errorf("Raw = %v", file.Raw)
	}
}

func TestReadFile_Warnings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.m4a")
	media := buildMedia(textAtom("\xA9day", "c. 2004"))
	if err := os.WriteFile(path, media, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	file, err := m4atag.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(file.Warnings) != 1 {
		t.Fatalf("expected a warning for the non-numeric year, got %v", file.Warnings)
	}
	if file.Tags.Year != 0 {
		t.Errorf("Year = %d, want 0", file.Tags.Year)
	}

	file, err = m4atag.ReadFile(path, m4atag.WithIgnoreWarnings())
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(file.Warnings) != 0 {
		t.Errorf("WithIgnoreWarnings left warnings: %v", file.Warnings)
	}
}

func TestReadURL(t *testing.T) {
	media := buildMedia(textAtom("\xA9nam", "Song"))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.Header().Set("Content-Length", strconv.Itoa(len(media)))
			return
		}
		w.Write(media)
	}))
	defer srv.Close()

	file, err := m4atag.ReadURL(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("ReadURL failed: %v", err)
	}
	if file.Tags.Title != "Song" {
		t.Errorf("Title = %q", file.Tags.Title)
	}
	if file.Path != srv.URL {
		t.Errorf("Path = %q", file.Path)
	}
}

func TestReadMany(t *testing.T) {
	dir := t.TempDir()
	titles := []string{"First", "Second", "Third"}
	var paths []string
	for i, title := range titles {
		path := filepath.Join(dir, "song"+strconv.Itoa(i)+".m4a")
		if err := os.WriteFile(path, buildMedia(textAtom("\xA9nam", title)), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
		paths = append(paths, path)
	}

	files, err := m4atag.ReadMany(context.Background(), paths...)
	if err != nil {
		t.Fatalf("ReadMany failed: %v", err)
	}
	if len(files) != len(titles) {
		t.Fatalf("expected %d files, got %d", len(titles), len(files))
	}
	for i, f := range files {
		if f.Tags.Title != titles[i] {
			t.Errorf("file %d: Title = %q, want %q", i, f.Tags.Title, titles[i])
		}
	}
}

func TestReadMany_Failure(t *testing.T) {
	if _, err := m4atag.ReadMany(context.Background(), filepath.Join(t.TempDir(), "missing.m4a")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
