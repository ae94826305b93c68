package asset

// Manager bundles the whole asset lifecycle behind one value, the way
// the CRUD layer consumes it. Each operation is also available as its
// own interface for callers that only need part of the surface.
type Manager struct {
	Uploader
	ResponsiveUploader
	BatchUploader
	Deleter
	InfoGetter
}

// NewManager wires every operation against one storage binding and one
// domain configuration, built once at process start and injected. A
// nil genID falls back to random UUIDs.
func NewManager(strg Storage, tc Transcoder, resolver *URLResolver, genID GenID) *Manager {
	keys := NewKeyAddresser(genID)
	uploader := NewImageUploader(strg, tc, keys, resolver)

	return &Manager{
		Uploader:           uploader,
		ResponsiveUploader: NewResponsiveUploader(strg, NewVariantGenerator(tc), keys, resolver),
		BatchUploader:      NewBatchUploader(uploader),
		Deleter:            NewImageDeleter(strg, resolver),
		InfoGetter:         NewFileInfoGetter(strg),
	}
}
