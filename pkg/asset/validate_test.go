package asset

import (
	"strings"
	"testing"
)

func TestValidateUpload_AllowedTypes(t *testing.T) {
	for _, mime := range []string{"image/jpeg", "image/png", "image/webp"} {
		t.Run(mime, func(t *testing.T) {
			f := UploadedFile{MimeType: mime, SizeBytes: 1024}
			if err := ValidateUpload(f); err != nil {
				t.Fatalf("expected %s to be accepted, got %v", mime, err)
			}
		})
	}
}

func TestValidateUpload_UnsupportedType(t *testing.T) {
	f := UploadedFile{MimeType: "application/pdf", SizeBytes: 1024}
	err := ValidateUpload(f)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	vErr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if !strings.Contains(vErr.Reason, "unsupported file type") {
		t.Errorf("reason should mention the unsupported type, got %q", vErr.Reason)
	}
}

func TestValidateUpload_SizeBoundary(t *testing.T) {
	tests := []struct {
		name    string
		size    int64
		wantErr bool
	}{
		{"exactly 5 MiB", MaxFileSize, false},
		{"5 MiB + 1", MaxFileSize + 1, true},
		{"1 byte", 1, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := UploadedFile{MimeType: "image/png", SizeBytes: tc.size}
			err := ValidateUpload(f)
			if tc.wantErr && err == nil {
				t.Fatal("expected a validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr {
				vErr, ok := err.(*ValidationError)
				if !ok {
					t.Fatalf("expected *ValidationError, got %T", err)
				}
				if !strings.Contains(vErr.Reason, "too large") {
					t.Errorf("reason should mention the size, got %q", vErr.Reason)
				}
			}
		})
	}
}

func TestValidateUpload_EmptyFile(t *testing.T) {
	f := UploadedFile{MimeType: "image/png", SizeBytes: 0}
	err := ValidateUpload(f)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
}

func TestIsMimeTypeAllowed(t *testing.T) {
	if !IsMimeTypeAllowed("image/webp") {
		t.Error("image/webp should be allowed")
	}
	if IsMimeTypeAllowed("text/markdown") {
		t.Error("text/markdown should not be allowed")
	}
}
