package asset

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateUpload rejects anything outside the MIME allow-list or over
// MaxFileSize. It runs before any transcoding or network I/O and has
// no side effects.
func ValidateUpload(f UploadedFile) error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		return &ValidationError{Reason: reasonFor(errs[0], f)}
	}
	return &ValidationError{Reason: err.Error()}
}

func reasonFor(fe validator.FieldError, f UploadedFile) string {
	switch fe.StructField() {
	case "MimeType":
		return fmt.Sprintf("unsupported file type %q; allowed types are JPEG, PNG and WebP", f.MimeType)
	case "SizeBytes":
		if fe.Tag() == "lte" {
			return fmt.Sprintf("file is too large (%d bytes); the limit is %d bytes", f.SizeBytes, MaxFileSize)
		}
		return "file is empty"
	default:
		return fmt.Sprintf("invalid file: %s failed on %q", fe.StructField(), fe.Tag())
	}
}
