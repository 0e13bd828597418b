package interfaces

//go:generate moq -out mocks/rasterizer_mock.go -pkg mocks . Rasterizer

import (
	"context"
	"image"
)

// Rasterizer captures a rendered page region as an image.
// The returned image has no transparency; the background is flattened to white.
type Rasterizer interface {
	Rasterize(ctx context.Context, regionID string) (image.Image, error)
}
