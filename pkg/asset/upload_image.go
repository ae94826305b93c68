package asset

import (
	"bytes"
	"context"

	"github.com/tourwise/assets-go/pkg/assetctx"
	"github.com/tourwise/assets-go/pkg/logger"
)

// Uploader stores a single image and returns its public URL.
type Uploader interface {
	UploadImage(ctx context.Context, file UploadedFile, folder string) (string, error)
}

type imageUploaderSrv struct {
	strg     Storage
	tc       Transcoder
	keys     *KeyAddresser
	resolver *URLResolver
}

// compile-time check: *imageUploaderSrv must satisfy Uploader
var _ Uploader = (*imageUploaderSrv)(nil)

// NewImageUploader constructs an Uploader implementation.
func NewImageUploader(strg Storage, tc Transcoder, keys *KeyAddresser, resolver *URLResolver) Uploader {
	return &imageUploaderSrv{strg: strg, tc: tc, keys: keys, resolver: resolver}
}

// UploadImage runs validate → transcode → store → resolve-URL. A
// validation failure surfaces as-is; everything after it is wrapped
// into an UploadError. The operation never retries.
func (s *imageUploaderSrv) UploadImage(ctx context.Context, file UploadedFile, folder string) (string, error) {
	ctx = assetctx.WithFolder(ctx, folder)

	if err := ValidateUpload(file); err != nil {
		return "", err
	}

	out, err := s.tc.Transcode(bytes.NewReader(file.Buffer), MaxImageDimension)
	if err != nil {
		return "", &UploadError{Err: &TranscodeError{Err: err}}
	}

	key := s.keys.NewKey(folder, "")
	opts := SaveOptions{ContentType: OutputMimeType, CacheControl: CacheControl}
	if err := s.strg.SaveFile(ctx, key, bytes.NewReader(out), int64(len(out)), opts); err != nil {
		return "", &UploadError{Err: err}
	}

	u, err := s.resolver.BuildURL(key)
	if err != nil {
		return "", &UploadError{Err: err}
	}

	logger.Infof(ctx, "uploaded image %q (%d bytes)", key, len(out))
	return u, nil
}
