package transcoder

import (
	"image"
	"io"
)

// WebPEncoder abstracts the codec pair so tests can run without the
// cgo-backed WebP encoder.
type WebPEncoder interface {
	Encode(w io.Writer, img image.Image, quality float32) error
	Decode(r io.Reader) (image.Image, string, error)
}
