package storage

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/interfaces"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
	"google.golang.org/api/option"
	gcs "google.golang.org/api/storage/v1"
)

const gcsPublicBase = "https://storage.googleapis.com"

// GCS stores objects in a Google Cloud Storage bucket
type GCS struct {
	svc    *gcs.Service
	bucket string
	prefix string
}

var _ interfaces.BlobStorage = (*GCS)(nil)

// NewGCS creates a bucket client. prefix is prepended to every object path.
func NewGCS(ctx context.Context, bucket, prefix string, opts ...option.ClientOption) (*GCS, error) {
	if bucket == "" {
		return nil, goerr.New("bucket name is required")
	}

	svc, err := gcs.NewService(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client", goerr.V("bucket", bucket))
	}

	return &GCS{
		svc:    svc,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}, nil
}

func (s *GCS) objectName(path string) string {
	path = strings.TrimLeft(path, "/")
	if s.prefix == "" {
		return path
	}
	return s.prefix + "/" + path
}

// Upload writes r to the object at path
func (s *GCS) Upload(ctx context.Context, path string, r io.Reader, contentType string) error {
	obj := &gcs.Object{
		Name:        s.objectName(path),
		ContentType: contentType,
	}

	if _, err := s.svc.Objects.Insert(s.bucket, obj).Media(r).Context(ctx).Do(); err != nil {
		return goerr.Wrap(err, "failed to upload object",
			goerr.V("bucket", s.bucket),
			goerr.V("object", obj.Name),
			goerr.T(model.ErrTagSave))
	}
	return nil
}

// PublicURL returns the public HTTPS URL of the object at path
func (s *GCS) PublicURL(path string) string {
	return gcsPublicBase + "/" + s.bucket + "/" + escapePath(s.objectName(path))
}

func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i := range parts {
		parts[i] = url.PathEscape(parts[i])
	}
	return strings.Join(parts, "/")
}
