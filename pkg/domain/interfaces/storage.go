package interfaces

//go:generate moq -out mocks/storage_mock.go -pkg mocks . BlobStorage

import (
	"context"
	"io"
)

// BlobStorage stores binary objects (exported reports, uploaded documents)
type BlobStorage interface {
	Upload(ctx context.Context, path string, r io.Reader, contentType string) error
	PublicURL(path string) string
}
