package asset

import "time"

// UploadedFile is the upstream input contract: the raw bytes plus the
// metadata multipart parsing already gives us.
type UploadedFile struct {
	MimeType  string `json:"mime_type" validate:"required,oneof=image/jpeg image/png image/webp"`
	SizeBytes int64  `json:"size_bytes" validate:"required,gt=0,lte=5242880"`
	Buffer    []byte `json:"-"`
}

// FileInfo represents metadata about a stored file.
type FileInfo struct {
	SizeBytes    int64     `json:"size_bytes"`
	LastModified time.Time `json:"last_modified"`
	ContentType  string    `json:"content_type"`
}

// VariantSpec names one rendition and its bounding-box width.
type VariantSpec struct {
	Name  string
	Width int
}

// DefaultVariantSpecs is the fixed rendition table for responsive
// uploads.
var DefaultVariantSpecs = []VariantSpec{
	{Name: "thumb", Width: 400},
	{Name: "medium", Width: 800},
	{Name: "large", Width: 1200},
	{Name: "original", Width: 2000},
}

// VariantURLs is the result of a responsive upload. Fixed shape on
// purpose: a missing rendition is a visible empty field, not a silently
// absent map entry.
type VariantURLs struct {
	Thumb    string `json:"thumb"`
	Medium   string `json:"medium"`
	Large    string `json:"large"`
	Original string `json:"original"`
}

// DeleteStatus classifies the outcome of a best-effort delete.
type DeleteStatus int

const (
	Deleted DeleteStatus = iota
	NotFound
	Failed
)

func (s DeleteStatus) String() string {
	switch s {
	case Deleted:
		return "deleted"
	case NotFound:
		return "not_found"
	default:
		return "failed"
	}
}

// DeleteOutcome reports what happened to one URL. Deletions never
// return an error to the caller; failures land here instead.
type DeleteOutcome struct {
	Status DeleteStatus
	Err    error
}

// Ok reports whether the caller may treat the cleanup as done. A
// missing object counts: the goal was for it to be gone.
func (o DeleteOutcome) Ok() bool {
	return o.Status != Failed
}
