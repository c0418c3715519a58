package storage

import (
	"context"
	"io"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

type ObjectStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string, size int64) error
	GetURL(key string) string
}

type ImageProcessor interface {
	Process(reader io.Reader) (*ProcessedImage, error)
}

// ProcessedImage is the re-encoded output. Unchanged is set when the input was
// already a JPEG within bounds and Reader yields the input bytes untouched.
type ProcessedImage struct {
	Reader    io.Reader
	Size      int64
	Width     int
	Height    int
	Unchanged bool
}
