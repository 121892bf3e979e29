// Package m4a implements the two-pass MP4/M4A atom-tree traversal used
// for tag extraction: a lazy load pass that discovers which byte ranges
// of the container must be materialized, and a synchronous decode pass
// that re-walks the loaded bytes and extracts typed tag values.
//
// Both passes consume the traversal policy in this file (the container
// set, the meta padding, the metadata path). Keep the two walks
// structurally identical except for the load-vs-decode action at each
// step; any divergence between them is a bug.
package m4a

import (
	"github.com/dmercer/m4atag/internal/types"
)

const (
	// headerSize is the fixed atom header: 4-byte size + 4-byte FourCC.
	// The declared size includes the header itself.
	headerSize = 8

	// metaPadding is the next_item_id field a meta atom carries before
	// its children begin. No other container has it.
	metaPadding = 4

	// metadataPath is the ancestor chain a value atom must sit under
	// to be tag-bearing. Atoms anywhere else are skipped unread.
	metadataPath = "moov.udta.meta.ilst"
)

// containerNames is the closed set of atoms that hold child atoms
// instead of payload.
var containerNames = map[string]bool{
	"moov": true,
	"udta": true,
	"meta": true,
	"ilst": true,
}

func isContainer(name string) bool {
	return containerNames[name]
}

// childOffset returns the offset where a container atom's children
// begin.
func childOffset(name string, off int64) int64 {
	off += headerSize
	if name == "meta" {
		off += metaPadding
	}
	return off
}

// extendPath appends an atom name to a dot-joined ancestor chain.
func extendPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

// readHeader reads the 8-byte atom header at off. The size field is
// stored big-endian per the format.
func readHeader(src types.Source, off int64) (uint32, string, error) {
	size, err := src.Uint32At(off, true)
	if err != nil {
		return 0, "", err
	}
	name, err := src.StringAt(off+4, 4)
	if err != nil {
		return 0, "", err
	}
	return size, name, nil
}

// SignatureRange is the leading span the format check operates on: the
// ftyp brand sits at byte offset 4, so priming bytes [0, 10] covers
// the signature plus the first header's worth of bytes.
var SignatureRange = types.Range{Start: 0, End: 10}

// MatchesSignature reports whether the primed leading bytes carry the
// M4A tag signature, FourCC "ftypM4A" at byte offset 4.
func MatchesSignature(src types.Source) bool {
	s, err := src.StringAt(4, 7)
	return err == nil && s == "ftypM4A"
}
