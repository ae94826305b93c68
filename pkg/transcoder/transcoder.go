package transcoder

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"log"

	xdraw "golang.org/x/image/draw"
)

// Quality is the fixed lossy WebP profile used for web delivery.
const Quality = 80

// Transcoder normalises any accepted raster image to lossy WebP,
// downscaled to fit a bounding box. It is a pure function over its
// input: no network, no storage.
type Transcoder struct {
	enc WebPEncoder
}

// New constructs a Transcoder backed by the real WebP codec.
func New() *Transcoder {
	log.Println("initialising transcoder...")
	return &Transcoder{enc: chaiEncoder{}}
}

// NewWithEncoder injects a codec, for tests.
func NewWithEncoder(enc WebPEncoder) *Transcoder {
	return &Transcoder{enc: enc}
}

// Transcode decodes r, scales the image so neither dimension exceeds
// maxDimension (never enlarging) and re-encodes it as lossy WebP.
func (t *Transcoder) Transcode(r io.Reader, maxDimension int) ([]byte, error) {
	img, _, err := t.enc.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("transcoder: failed to decode image: %w", err)
	}

	img = fitInside(img, maxDimension)

	buf := &bytes.Buffer{}
	if err := t.enc.Encode(buf, img, Quality); err != nil {
		return nil, fmt.Errorf("transcoder: failed to encode WebP: %w", err)
	}
	return buf.Bytes(), nil
}

// fitInside scales img so neither dimension exceeds bound, preserving
// aspect ratio. Images already inside the bound pass through untouched.
func fitInside(img image.Image, bound int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if bound <= 0 || (w <= bound && h <= bound) {
		return img
	}

	scale := float64(bound) / float64(w)
	if h > w {
		scale = float64(bound) / float64(h)
	}
	dw := int(float64(w)*scale + 0.5)
	dh := int(float64(h)*scale + 0.5)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
