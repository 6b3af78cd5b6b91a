package pipeline

import "prle/internal/rle"

// Codec is the minimal capability the executor needs.
// Fakes in tests can satisfy it to control timing and failures.
type Codec interface {
	Encode(src []byte) []byte
	Decode(src []byte) ([]byte, error)
}

// RLE is the production codec.
type RLE struct{}

func (RLE) Encode(src []byte) []byte          { return rle.Encode(src) }
func (RLE) Decode(src []byte) ([]byte, error) { return rle.Decode(src) }

func apply(c Codec, mode Mode, src []byte) ([]byte, error) {
	if mode == Compress {
		return c.Encode(src), nil
	}
	return c.Decode(src)
}
