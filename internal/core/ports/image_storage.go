package ports

import (
	"context"
	"io"
)

// ImageStorage stores an uploaded image and returns its public URL.
type ImageStorage interface {
	Store(ctx context.Context, filename string, content io.Reader) (string, error)
}
