package asset

import (
	"context"
	"errors"

	"github.com/tourwise/assets-go/pkg/logger"
)

// Deleter removes stored images addressed by their public URL.
type Deleter interface {
	DeleteImage(ctx context.Context, rawURL string) DeleteOutcome
	DeleteImages(ctx context.Context, rawURLs []string) []DeleteOutcome
}

type imageDeleterSrv struct {
	strg     Storage
	resolver *URLResolver
}

// compile-time check: *imageDeleterSrv must satisfy Deleter
var _ Deleter = (*imageDeleterSrv)(nil)

// NewImageDeleter constructs a Deleter implementation.
func NewImageDeleter(strg Storage, resolver *URLResolver) Deleter {
	return &imageDeleterSrv{strg: strg, resolver: resolver}
}

// DeleteImage never returns an error: a failed cleanup must not block
// the business operation that triggered it. Failures are logged and
// reported through the outcome. An empty URL is a no-op success.
func (s *imageDeleterSrv) DeleteImage(ctx context.Context, rawURL string) DeleteOutcome {
	if rawURL == "" {
		return DeleteOutcome{Status: NotFound}
	}

	key, err := s.resolver.ParseKey(rawURL)
	if err != nil {
		logger.Warnf(ctx, "cannot resolve a storage key from %q: %v", rawURL, err)
		return DeleteOutcome{Status: Failed, Err: err}
	}

	if err := s.strg.RemoveFile(ctx, key); err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return DeleteOutcome{Status: NotFound}
		}
		logger.Warnf(ctx, "failed to remove %q: %v", key, err)
		return DeleteOutcome{Status: Failed, Err: err}
	}
	return DeleteOutcome{Status: Deleted}
}

// DeleteImages walks a gallery sequentially so each failure stays
// isolated and the log order matches the source order. A failed entry
// never stops the entries after it.
func (s *imageDeleterSrv) DeleteImages(ctx context.Context, rawURLs []string) []DeleteOutcome {
	outcomes := make([]DeleteOutcome, len(rawURLs))
	for i, u := range rawURLs {
		outcomes[i] = s.DeleteImage(ctx, u)
	}
	return outcomes
}
