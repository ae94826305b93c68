package storage

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/tourwise/assets-go/pkg/asset"
)

// DefaultOpTimeout bounds every remote call so a stuck backend cannot
// hold worker capacity indefinitely.
const DefaultOpTimeout = 30 * time.Second

// MinioStorage binds asset.Storage to an S3-compatible bucket. It is
// immutable after construction and safe for concurrent use; build it
// once at process start and inject it.
type MinioStorage struct {
	client     minioClient
	bucketName string
	opTimeout  time.Duration
}

// compile-time check: *MinioStorage must satisfy asset.Storage
var _ asset.Storage = (*MinioStorage)(nil)

// Options configures the storage binding.
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	OpTimeout time.Duration
}

// NewMinioStorage builds the storage binding. An unconfigured backend
// is a construction error ("storage unavailable"), never a nil client
// failing deep inside an upload path.
func NewMinioStorage(opts Options) (*MinioStorage, error) {
	if opts.Endpoint == "" || opts.AccessKey == "" || opts.SecretKey == "" || opts.Bucket == "" {
		return nil, &asset.ConfigurationError{Reason: "object store endpoint, credentials and bucket are all required"}
	}

	log.Println("initialising minio client...")
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, mapMinioErr(err)
	}

	timeout := opts.OpTimeout
	if timeout <= 0 {
		timeout = DefaultOpTimeout
	}
	return &MinioStorage{client: client, bucketName: opts.Bucket, opTimeout: timeout}, nil
}

func (s *MinioStorage) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.opTimeout)
}

func (s *MinioStorage) SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts asset.SaveOptions) error {
	log.Printf("saving file %q into bucket %q...", fileKey, s.bucketName)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	putOpts := minio.PutObjectOptions{
		ContentType:  opts.ContentType,
		CacheControl: opts.CacheControl,
	}
	if _, err := s.client.PutObject(ctx, s.bucketName, fileKey, reader, fileSize, putOpts); err != nil {
		return &asset.StoreError{Op: "put", Key: fileKey, Err: mapMinioErr(err)}
	}
	return nil
}

func (s *MinioStorage) RemoveFile(ctx context.Context, fileKey string) error {
	log.Printf("removing file %q from bucket %q...", fileKey, s.bucketName)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := s.client.RemoveObject(ctx, s.bucketName, fileKey, minio.RemoveObjectOptions{})
	if err == nil {
		return nil
	}
	mapped := mapMinioErr(err)
	// Removing a key that is already gone counts as success.
	if errors.Is(mapped, asset.ErrObjectNotFound) {
		return nil
	}
	return &asset.StoreError{Op: "delete", Key: fileKey, Err: mapped}
}

func (s *MinioStorage) StatFile(ctx context.Context, fileKey string) (asset.FileInfo, error) {
	log.Printf("getting stats on file %q in bucket %q...", fileKey, s.bucketName)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	info, err := s.client.StatObject(ctx, s.bucketName, fileKey, minio.StatObjectOptions{})
	if err != nil {
		mapped := mapMinioErr(err)
		if errors.Is(mapped, asset.ErrObjectNotFound) {
			return asset.FileInfo{}, mapped
		}
		return asset.FileInfo{}, &asset.StoreError{Op: "head", Key: fileKey, Err: mapped}
	}
	return asset.FileInfo{
		SizeBytes:    info.Size,
		LastModified: info.LastModified,
		ContentType:  info.ContentType,
	}, nil
}
