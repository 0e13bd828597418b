// Package storage provides blob storage for exported reports and uploaded documents.
package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/interfaces"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
)

// Local stores objects under a directory of the local filesystem
type Local struct {
	root    string
	baseURL string
}

var _ interfaces.BlobStorage = (*Local)(nil)

// NewLocal creates a filesystem store. baseURL is the URL prefix the files are served under.
func NewLocal(root, baseURL string) (*Local, error) {
	if root == "" {
		return nil, goerr.New("storage directory is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve storage directory", goerr.V("root", root))
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create storage directory", goerr.V("root", abs))
	}

	return &Local{root: abs, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Root returns the absolute storage directory
func (s *Local) Root() string {
	return s.root
}

func (s *Local) resolve(path string) (string, error) {
	clean := filepath.Clean("/" + filepath.FromSlash(path))
	full := filepath.Join(s.root, clean)
	if full == s.root {
		return "", goerr.New("object path is empty", goerr.V("path", path), goerr.T(model.ErrTagValidation))
	}
	return full, nil
}

// Upload writes r to path, replacing any existing object
func (s *Local) Upload(ctx context.Context, path string, r io.Reader, contentType string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return goerr.Wrap(err, "failed to create object directory", goerr.V("path", path), goerr.T(model.ErrTagSave))
	}

	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp file", goerr.V("path", path), goerr.T(model.ErrTagSave))
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return goerr.Wrap(err, "failed to write object", goerr.V("path", path), goerr.T(model.ErrTagSave))
	}
	if err := tmp.Close(); err != nil {
		return goerr.Wrap(err, "failed to close object", goerr.V("path", path), goerr.T(model.ErrTagSave))
	}
	if err := os.Rename(tmp.Name(), full); err != nil {
		return goerr.Wrap(err, "failed to store object", goerr.V("path", path), goerr.T(model.ErrTagSave))
	}
	return nil
}

// PublicURL returns baseURL joined with path
func (s *Local) PublicURL(path string) string {
	return s.baseURL + "/" + escapePath(strings.TrimLeft(path, "/"))
}
