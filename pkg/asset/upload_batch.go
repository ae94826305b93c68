package asset

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BatchUploader fans UploadImage out over several files.
type BatchUploader interface {
	UploadImages(ctx context.Context, files []UploadedFile, folder string) ([]string, error)
}

type batchUploaderSrv struct {
	uploader Uploader
}

// compile-time check: *batchUploaderSrv must satisfy BatchUploader
var _ BatchUploader = (*batchUploaderSrv)(nil)

// NewBatchUploader constructs a BatchUploader implementation.
func NewBatchUploader(uploader Uploader) BatchUploader {
	return &batchUploaderSrv{uploader: uploader}
}

// UploadImages uploads every file concurrently, all-or-nothing: one
// failed file fails the batch. Objects already stored by the time a
// sibling fails are not cleaned up here; reconciling them is the
// caller's responsibility.
func (s *batchUploaderSrv) UploadImages(ctx context.Context, files []UploadedFile, folder string) ([]string, error) {
	urls := make([]string, len(files))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, f := range files {
		eg.Go(func() error {
			u, err := s.uploader.UploadImage(egCtx, f, folder)
			if err != nil {
				return err
			}
			urls[i] = u
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
