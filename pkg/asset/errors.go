package asset

import (
	"errors"
	"fmt"
)

var (
	ErrObjectNotFound = errors.New("storage: object not found")
	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrUnauthorized   = errors.New("storage: unauthorized")
	ErrInternal       = errors.New("storage: internal error")
)

// ValidationError reports a file rejected before any work was done.
// Always user-visible; maps to a 4xx at the HTTP boundary.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "validation: " + e.Reason }

// TranscodeError reports corrupt or unsupported image data.
type TranscodeError struct {
	Err error
}

func (e *TranscodeError) Error() string { return "transcode: " + e.Err.Error() }
func (e *TranscodeError) Unwrap() error { return e.Err }

// StoreError reports a failed remote call to the object store.
type StoreError struct {
	Op  string
	Key string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s %q: %v", e.Op, e.Key, e.Err)
}
func (e *StoreError) Unwrap() error { return e.Err }

// ConfigurationError reports a deployment defect: missing storage
// settings, or a malformed URL built from them. Fails loud.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string { return "configuration: " + e.Reason }

// UploadError wraps whatever made an upload fail after validation
// passed. The operation is not retried.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string { return "upload failed: " + e.Err.Error() }
func (e *UploadError) Unwrap() error { return e.Err }
