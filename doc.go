// Package m4atag extracts metadata tags (title, artist, album, artwork,
// track number, ...) from MP4/M4A containers by walking their nested
// atom tree.
//
// # Quick Start
//
// Reading tags from a local file:
//
//	file, err := m4atag.ReadFile("song.m4a")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("%s - %s\n", file.Tags.Artist, file.Tags.Title)
//
// # Lazy loading
//
// The container format has no fixed metadata offset: atoms are chained
// sequentially, nest arbitrarily, and the tag-bearing atoms live only
// under moov.udta.meta.ilst. Each atom's boundaries are unknown until
// its 8-byte header has been read, so discovering what to fetch is an
// inherently sequential process.
//
// m4atag splits extraction into two passes. The load pass walks the
// chain using only headers, issuing one byte-range request per step
// and materializing payloads only for the tag-bearing atoms. The
// decode pass then re-walks the loaded bytes synchronously and builds
// the tag mapping. Over an HTTP source this means reading tags from a
// remote file transfers a few hundred bytes of headers plus the tag
// payload, never the audio data:
//
//	file, err := m4atag.ReadURL(ctx, "https://example.com/song.m4a")
//
// # Sources
//
// Extraction runs over the Source interface: a byte-addressable store
// whose contents are materialized range by range. Built-in sources
// cover local files (ReadFile), remote resources fetched with HTTP
// range requests (ReadURL), in-memory buffers (NewBufferSource) and
// any io.ReaderAt (NewReaderAtSource).
//
// # Raw values
//
// Semantic fields are a renaming layer on top of the raw tag mapping,
// which stays available keyed by FourCC:
//
//	if v, ok := file.Raw["©too"]; ok {
//		fmt.Println("encoder:", v)
//	}
package m4atag
