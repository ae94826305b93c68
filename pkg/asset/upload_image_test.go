package asset

import (
	"context"
	"errors"
	"regexp"
	"testing"
)

func newTestResolver(t *testing.T) *URLResolver {
	t.Helper()
	r, err := NewURLResolver(ResolverConfig{PublicDomain: "cdn.example.com"})
	if err != nil {
		t.Fatalf("unexpected config error: %v", err)
	}
	return r
}

func validFile() UploadedFile {
	return UploadedFile{MimeType: "image/jpeg", SizeBytes: 2048, Buffer: []byte("jpeg-bytes")}
}

func TestUploadImage_Success(t *testing.T) {
	strg := &mockStorage{}
	tc := &mockTranscoder{}
	svc := NewImageUploader(strg, tc, NewKeyAddresser(nil), newTestResolver(t))

	u, err := svc.UploadImage(context.Background(), validFile(), "tours")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pattern := regexp.MustCompile(`^https://cdn\.example\.com/tours/[0-9a-f-]{36}\.webp$`)
	if !pattern.MatchString(u) {
		t.Errorf("URL %q does not match %s", u, pattern)
	}

	if len(tc.widths) != 1 || tc.widths[0] != MaxImageDimension {
		t.Errorf("expected one transcode at %d, got %v", MaxImageDimension, tc.widths)
	}
	if strg.saveCalls != 1 {
		t.Fatalf("expected one save, got %d", strg.saveCalls)
	}
	opts := strg.savedOpts[0]
	if opts.ContentType != OutputMimeType {
		t.Errorf("content type %q, want %q", opts.ContentType, OutputMimeType)
	}
	if opts.CacheControl != CacheControl {
		t.Errorf("cache control %q, want %q", opts.CacheControl, CacheControl)
	}
}

func TestUploadImage_OversizedFileNeverHitsStore(t *testing.T) {
	strg := &mockStorage{}
	tc := &mockTranscoder{}
	svc := NewImageUploader(strg, tc, NewKeyAddresser(nil), newTestResolver(t))

	f := UploadedFile{MimeType: "image/png", SizeBytes: 6 * 1024 * 1024, Buffer: []byte("png")}
	_, err := svc.UploadImage(context.Background(), f, "tours")

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if strg.saveCalls != 0 {
		t.Errorf("store received %d calls, want 0", strg.saveCalls)
	}
	if tc.calls != 0 {
		t.Errorf("transcoder received %d calls, want 0", tc.calls)
	}
}

func TestUploadImage_TranscodeFailure(t *testing.T) {
	strg := &mockStorage{}
	tc := &mockTranscoder{err: errors.New("corrupt input")}
	svc := NewImageUploader(strg, tc, NewKeyAddresser(nil), newTestResolver(t))

	_, err := svc.UploadImage(context.Background(), validFile(), "tours")

	var upErr *UploadError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *UploadError, got %v", err)
	}
	var tErr *TranscodeError
	if !errors.As(err, &tErr) {
		t.Fatalf("expected a wrapped *TranscodeError, got %v", err)
	}
	if strg.saveCalls != 0 {
		t.Errorf("nothing should be stored after a transcode failure, got %d saves", strg.saveCalls)
	}
}

func TestUploadImage_StoreFailure(t *testing.T) {
	storeErr := &StoreError{Op: "put", Key: "k", Err: ErrInternal}
	strg := &mockStorage{saveErr: storeErr}
	svc := NewImageUploader(strg, &mockTranscoder{}, NewKeyAddresser(nil), newTestResolver(t))

	_, err := svc.UploadImage(context.Background(), validFile(), "tours")

	var upErr *UploadError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *UploadError, got %v", err)
	}
	var sErr *StoreError
	if !errors.As(err, &sErr) {
		t.Fatalf("expected a wrapped *StoreError, got %v", err)
	}
}
