// Package codec converts between stored bytes and caller values.
//
// Readers only need Decode: multiread hands back raw bytes per key and
// multiread.Decode turns them into V. Encode is for whoever populates the
// store, so both sides agree on the format.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// Decoder is the read half of a Codec.
type Decoder[V any] interface {
	Decode([]byte) (V, error)
}
