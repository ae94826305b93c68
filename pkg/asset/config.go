package asset

// MaxFileSize is the largest accepted upload.
const MaxFileSize = 5 * 1024 * 1024 // 5 MiB

// MaxImageDimension is the bounding box applied to single-image uploads.
const MaxImageDimension = 2000

// CacheControl is set on every stored object; assets are immutable per
// key so they can be cached for a year.
const CacheControl = "public, max-age=31536000"

// Everything is stored as WebP.
const (
	OutputExt      = ".webp"
	OutputMimeType = "image/webp"
)

var AllowedMimeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
}

func IsMimeTypeAllowed(mimeType string) bool {
	return AllowedMimeTypes[mimeType]
}
