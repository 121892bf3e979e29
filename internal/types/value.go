package types

// Value is a decoded tag payload, keyed by raw FourCC in the tag map.
//
// The set of implementations is closed: Text, Uint, Track, Picture and
// Comment. Consumers can switch over them exhaustively.
type Value interface {
	value()
}

// Text is a UTF-8 string payload.
type Text string

// Uint is an unsigned integer payload (tempo, compilation flag, disc).
type Uint uint16

// Track is the track-number payload of a trkn atom.
type Track struct {
	Number int
	Count  int
}

// Picture is an embedded image payload.
type Picture struct {
	// MIME type derived from the data atom's type class
	// ("image/jpeg" or "image/png")
	MIME string

	// Raw image bytes
	Data []byte
}

// Comment wraps the comment string of a ©cmt atom.
type Comment struct {
	Text string
}

func (Text) value()    {}
func (Uint) value()    {}
func (Track) value()   {}
func (Picture) value() {}
func (Comment) value() {}
