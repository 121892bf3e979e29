package m4a

// Fields maps tag-bearing FourCCs to semantic field names.
//
// The copyright sign in atom names is the single byte 0xA9, not the
// two-byte UTF-8 encoding of ©, so the keys use the \xA9 escape.
var Fields = map[string]string{
	"\xA9alb": "album",
	"\xA9ART": "artist",
	"\xA9day": "year",
	"\xA9nam": "title",
	"\xA9gen": "genre",
	"trkn":    "track",
	"\xA9wrt": "composer",
	"\xA9too": "encoder",
	"cprt":    "copyright",
	"covr":    "picture",
	"\xA9grp": "grouping",
	"keyw":    "keyword",
	"\xA9lyr": "lyrics",
	"\xA9cmt": "comment",
	"tmpo":    "tempo",
	"cpil":    "compilation",
	"disk":    "disc",
}

// unsupportedName is the freeform marker atom: recognized under the
// metadata path but never read.
const unsupportedName = "----"

// kind is the decode strategy selected by a data sub-atom's well-known
// type class.
type kind int

const (
	kindUnknown kind = iota
	kindUint8
	kindText
	kindJPEG
	kindPNG
)

// kindOf maps well-known type class codes to decode strategies.
func kindOf(class uint32) kind {
	switch class {
	case 0, 21:
		return kindUint8
	case 1:
		return kindText
	case 13:
		return kindJPEG
	case 14:
		return kindPNG
	default:
		return kindUnknown
	}
}
