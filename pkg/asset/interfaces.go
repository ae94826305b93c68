package asset

import (
	"context"
	"io"
)

// SaveOptions carries the headers set on a stored object.
type SaveOptions struct {
	ContentType  string
	CacheControl string
}

// Storage defines the object store capabilities this package needs.
// Every call is a remote one; implementations must bound each with a
// finite timeout and must not cache results across calls.
type Storage interface {
	SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts SaveOptions) error
	// RemoveFile deletes fileKey. Removing a key that does not exist
	// is success, not an error.
	RemoveFile(ctx context.Context, fileKey string) error
	StatFile(ctx context.Context, fileKey string) (FileInfo, error)
}

// Transcoder converts an input raster image into the normalised output
// format, downscaled so neither dimension exceeds maxDimension. It
// never enlarges a smaller image.
type Transcoder interface {
	Transcode(r io.Reader, maxDimension int) ([]byte, error)
}
