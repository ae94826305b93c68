package asset

import (
	"bytes"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"

	"github.com/tourwise/assets-go/pkg/assetctx"
	"github.com/tourwise/assets-go/pkg/logger"
)

// ResponsiveUploader stores the fixed rendition set of one image.
type ResponsiveUploader interface {
	UploadResponsiveImage(ctx context.Context, file UploadedFile, folder string) (VariantURLs, error)
}

type responsiveUploaderSrv struct {
	strg     Storage
	variants *VariantGenerator
	keys     *KeyAddresser
	resolver *URLResolver
}

// compile-time check: *responsiveUploaderSrv must satisfy ResponsiveUploader
var _ ResponsiveUploader = (*responsiveUploaderSrv)(nil)

// NewResponsiveUploader constructs a ResponsiveUploader implementation.
func NewResponsiveUploader(strg Storage, variants *VariantGenerator, keys *KeyAddresser, resolver *URLResolver) ResponsiveUploader {
	return &responsiveUploaderSrv{strg: strg, variants: variants, keys: keys, resolver: resolver}
}

// UploadResponsiveImage validates once, generates the four renditions
// concurrently, then stores each under a suffixed key sharing one base
// identifier. The whole call fails when any rendition cannot be
// produced, stored or resolved to a URL: a partially filled variant
// map is never returned.
func (s *responsiveUploaderSrv) UploadResponsiveImage(ctx context.Context, file UploadedFile, folder string) (VariantURLs, error) {
	ctx = assetctx.WithFolder(ctx, folder)

	if err := ValidateUpload(file); err != nil {
		return VariantURLs{}, err
	}

	variants, err := s.variants.GenerateVariants(ctx, file.Buffer, DefaultVariantSpecs)
	if err != nil {
		return VariantURLs{}, &UploadError{Err: err}
	}

	// Renditions of one logical image share their base identifier.
	id := s.keys.NewID()

	urls := make([]string, len(variants))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, v := range variants {
		eg.Go(func() error {
			key := s.keys.Key(id, folder, v.Name)
			opts := SaveOptions{ContentType: OutputMimeType, CacheControl: CacheControl}
			if err := s.strg.SaveFile(egCtx, key, bytes.NewReader(v.Data), int64(len(v.Data)), opts); err != nil {
				return err
			}
			u, err := s.resolver.BuildURL(key)
			if err != nil {
				return err
			}
			urls[i] = u
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return VariantURLs{}, &UploadError{Err: err}
	}

	var out VariantURLs
	for i, v := range variants {
		switch v.Name {
		case "thumb":
			out.Thumb = urls[i]
		case "medium":
			out.Medium = urls[i]
		case "large":
			out.Large = urls[i]
		case "original":
			out.Original = urls[i]
		}
	}

	logger.Infof(ctx, "uploaded %d renditions of image %s", len(variants), id)
	return out, nil
}
