package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
)

var (
	AllowImage = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrInvalidObjectKey   = errors.New("invalid object key")
)

type FileStorage interface {
	UploadFile(ctx context.Context, objectKey string, file *multipart.FileHeader, contentType string) error
	DeleteFile(ctx context.Context, objectKey string) error
	GetPublicLinkKey(objectKey string) string
}

// DetectFile sniffs the content of file and checks it against the allowed
// MIME types. An empty allow list accepts anything.
func DetectFile(file *multipart.FileHeader, allowed ...string) (*mimetype.MIME, error) {
	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, fmt.Errorf("detect content type: %w", err)
	}

	if len(allowed) == 0 {
		return mtype, nil
	}
	for _, a := range allowed {
		if mtype.Is(a) {
			return mtype, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrFileTypeNotAllowed, mtype.String())
}

var (
	_ FileStorage = (*LocalStorage)(nil)
	_ FileStorage = (*AwsS3)(nil)
)
