package source

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/dmercer/m4atag/internal/types"
)

// rangeServer serves data honoring single-span Range headers.
func rangeServer(t *testing.T, data []byte, allowHead bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			if !allowHead {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			w.Header().Set("Content-Length", strconv.Itoa(len(data)))
			return
		}

		spec := r.Header.Get("Range")
		if spec == "" {
			w.Write(data)
			return
		}

		var start, end int
		if _, err := fmt.Sscanf(spec, "bytes=%d-%d", &start, &end); err != nil {
			t.Errorf("malformed Range header %q", spec)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if end > len(data)-1 {
			end = len(data) - 1
		}
		w.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", start, end, len(data)))
		w.WriteHeader(http.StatusPartialContent)
		w.Write(data[start : end+1])
	}))
}

func TestOpenURL_HeadDiscovery(t *testing.T) {
	data := []byte("0123456789abcdef")
	srv := rangeServer(t, data, true)
	defer srv.Close()

	src, err := OpenURL(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("OpenURL failed: %v", err)
	}
	if src.Size() != int64(len(data)) {
		t.Errorf("Size() = %d, want %d", src.Size(), len(data))
	}
}

func TestOpenURL_RangeFallbackDiscovery(t *testing.T) {
	data := []byte("0123456789abcdef")
	srv := rangeServer(t, data, false)
	defer srv.Close()

	src, err := OpenURL(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("OpenURL failed: %v", err)
	}
	if src.Size() != int64(len(data)) {
		t.Errorf("Size() = %d, want %d", src.Size(), len(data))
	}
}

func TestHTTP_FetchRange(t *testing.T) {
	data := []byte("0123456789abcdef")
	srv := rangeServer(t, data, true)
	defer srv.Close()

	src, err := OpenURL(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("OpenURL failed: %v", err)
	}

	if err := src.LoadRange(context.Background(), types.Range{Start: 4, End: 9}); err != nil {
		t.Fatalf("LoadRange failed: %v", err)
	}
	if s, err := src.StringAt(4, 6); err != nil || s != "456789" {
		t.Errorf("StringAt(4, 6) = %q, %v", s, err)
	}

	// Bytes outside the requested range were never transferred.
	if _, err := src.ByteAt(12); err == nil {
		t.Error("expected error reading unfetched offset")
	}
}

func TestHTTP_ServerIgnoresRange(t *testing.T) {
	data := []byte("0123456789abcdef")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Always send the whole resource with 200.
		w.Write(data)
	}))
	defer srv.Close()

	src, err := OpenURL(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("OpenURL failed: %v", err)
	}
	if err := src.LoadRange(context.Background(), types.Range{Start: 4, End: 9}); err != nil {
		t.Fatalf("LoadRange failed: %v", err)
	}
	if s, err := src.StringAt(4, 6); err != nil || s != "456789" {
		t.Errorf("StringAt(4, 6) = %q, %v", s, err)
	}
}

func TestHTTP_ErrorStatus(t *testing.T) {
	srv := rangeServer(t, []byte("0123456789"), true)
	url := srv.URL
	srv.Close()

	if _, err := OpenURL(context.Background(), url, nil); err == nil {
		t.Fatal("expected error for unreachable server")
	}
}

func TestParseContentRangeTotal(t *testing.T) {
	tests := []struct {
		header  string
		want    int64
		wantErr bool
	}{
		{"bytes 0-0/4523", 4523, false},
		{"bytes 10-20/100", 100, false},
		{"bytes 0-0", 0, true},
		{"bytes 0-0/*", 0, true},
	}

	for _, tt := range tests {
		got, err := parseContentRangeTotal(tt.header)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseContentRangeTotal(%q): expected error", tt.header)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("parseContentRangeTotal(%q) = %d, %v; want %d", tt.header, got, err, tt.want)
		}
	}
}
