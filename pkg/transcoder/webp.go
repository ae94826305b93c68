package transcoder

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	_ "golang.org/x/image/webp"
)

// chaiEncoder binds the codec seam to chai2010/webp for encoding and
// the stdlib image registry (JPEG, PNG, WebP) for decoding.
type chaiEncoder struct{}

func (chaiEncoder) Encode(w io.Writer, img image.Image, quality float32) error {
	return webp.Encode(w, img, &webp.Options{Quality: quality})
}

func (chaiEncoder) Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}
