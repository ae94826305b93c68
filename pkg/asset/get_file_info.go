package asset

import (
	"context"

	"github.com/tourwise/assets-go/pkg/logger"
)

// InfoGetter reads stored object metadata.
type InfoGetter interface {
	GetFileInfo(ctx context.Context, fileKey string) *FileInfo
}

type fileInfoSrv struct {
	strg Storage
}

// compile-time check: *fileInfoSrv must satisfy InfoGetter
var _ InfoGetter = (*fileInfoSrv)(nil)

// NewFileInfoGetter constructs an InfoGetter implementation.
func NewFileInfoGetter(strg Storage) InfoGetter {
	return &fileInfoSrv{strg: strg}
}

// GetFileInfo returns nil on any error; not-found and transport
// failures are not distinguished at this layer.
func (s *fileInfoSrv) GetFileInfo(ctx context.Context, fileKey string) *FileInfo {
	info, err := s.strg.StatFile(ctx, fileKey)
	if err != nil {
		logger.Debugf(ctx, "stat %q: %v", fileKey, err)
		return nil
	}
	return &info
}
