package imagemeta

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/marcos-nsantos/photo-portfolio/internal/domain"
)

// HeaderReader reads pixel dimensions from the image header without decoding pixels.
type HeaderReader struct{}

func NewHeaderReader() *HeaderReader {
	return &HeaderReader{}
}

func (p *HeaderReader) Dimensions(ctx context.Context, path string) (int, int, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", domain.ErrUnsupportedImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, domain.ErrUnsupportedImage
	}

	return cfg.Width, cfg.Height, nil
}
