package m4a

import (
	"github.com/dmercer/m4atag/internal/types"
)

// Value atom layout: after the 8-byte header and the nested data
// sub-atom's own header (16 bytes total from the atom start), a 1-byte
// version precedes the 3-byte well-known type class; the payload
// follows the 4-byte version/flags and 4-byte locale fields.
const (
	classOffset   = 17
	payloadOffset = 24
)

// Decoder re-walks the loaded atom chain and builds the tag mapping.
// It performs no I/O: every byte it touches was materialized by the
// load pass.
type Decoder struct {
	src types.Source
}

// NewDecoder returns a Decoder over a loaded source.
func NewDecoder(src types.Source) *Decoder {
	return &Decoder{src: src}
}

// Decode synchronously walks the source from offset 0 and returns the
// tag mapping keyed by raw FourCC. fields, when non-empty, restricts
// extraction to those semantic field names ("title", "artist", ...).
func (d *Decoder) Decode(fields []string) map[string]types.Value {
	var want map[string]bool
	if len(fields) > 0 {
		want = make(map[string]bool, len(fields))
		for _, f := range fields {
			want[f] = true
		}
	}
	tags := make(map[string]types.Value)
	d.readAtoms(0, d.src.Size(), "", want, tags)
	return tags
}

// readAtoms mirrors the load pass step for step, with payload access.
func (d *Decoder) readAtoms(off, length int64, parentPath string, want map[string]bool, tags map[string]types.Value) {
	seek := off
	for seek < off+length {
		size, name, err := readHeader(d.src, seek)
		if err != nil || size == 0 {
			// End of this level's children, not an error.
			return
		}

		if isContainer(name) {
			if name == "meta" {
				seek += metaPadding
			}
			// Only the first container found at a level is entered;
			// atoms after it are not visited. The load pass walks on
			// past containers, and that asymmetry is deliberate.
			d.readAtoms(seek+headerSize, int64(size)-headerSize,
				extendPath(parentPath, name), want, tags)
			return
		}

		if parentPath == metadataPath && name != unsupportedName {
			if field, known := Fields[name]; known && (want == nil || want[field]) {
				if v := d.readValueAtom(seek, size, name); v != nil {
					tags[name] = v
				}
			}
		}
		seek += int64(size)
	}
}

// readValueAtom decodes one tag-bearing atom into a typed value.
// Atoms whose payload cannot be read yield nil and are not stored.
func (d *Decoder) readValueAtom(off int64, size uint32, name string) types.Value {
	if name == "trkn" {
		// Track number and count live at fixed payload bytes, outside
		// the type-class dispatch.
		track, err := d.src.ByteAt(off + 16 + 11)
		if err != nil {
			return nil
		}
		count, err := d.src.ByteAt(off + 16 + 13)
		if err != nil {
			return nil
		}
		return types.Track{Number: int(track), Count: int(count)}
	}

	class, err := d.src.Uint24At(off+classOffset, true)
	if err != nil {
		return nil
	}
	payload := off + payloadOffset
	n := int64(size) - payloadOffset
	if n < 0 {
		return nil
	}

	switch kindOf(class) {
	case kindText:
		s, err := d.src.TextAt(payload, n, "utf-8")
		if err != nil {
			return nil
		}
		if name == "\xA9cmt" {
			return types.Comment{Text: s}
		}
		return types.Text(s)
	case kindUint8:
		v, err := d.src.Uint16At(payload, true)
		if err != nil {
			return nil
		}
		return types.Uint(v)
	case kindJPEG:
		return d.readPicture(payload, n, "image/jpeg")
	case kindPNG:
		return d.readPicture(payload, n, "image/png")
	default:
		return nil
	}
}

func (d *Decoder) readPicture(off, n int64, mime string) types.Value {
	data, err := d.src.BytesAt(off, n)
	if err != nil {
		return nil
	}
	return types.Picture{MIME: mime, Data: data}
}
