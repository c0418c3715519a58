package storage

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"

	adapter "github.com/marcos-nsantos/photo-portfolio/internal/adapter/storage"
	"github.com/marcos-nsantos/photo-portfolio/internal/domain"
)

const (
	MaxImageWidth  = 1920
	MaxImageHeight = 1080
	JPEGQuality    = 78
)

type ImageProcessorImpl struct {
	maxWidth  int
	maxHeight int
	quality   int
}

// NewImageProcessor returns a processor fitting images inside maxWidth x
// maxHeight. Zero values fall back to the package defaults.
func NewImageProcessor(maxWidth, maxHeight, quality int) *ImageProcessorImpl {
	if maxWidth <= 0 {
		maxWidth = MaxImageWidth
	}
	if maxHeight <= 0 {
		maxHeight = MaxImageHeight
	}
	if quality <= 0 || quality > 100 {
		quality = JPEGQuality
	}
	return &ImageProcessorImpl{
		maxWidth:  maxWidth,
		maxHeight: maxHeight,
		quality:   quality,
	}
}

// Process applies the EXIF orientation, shrinks the image to fit the bounds
// and encodes it as JPEG. A JPEG already within bounds is returned as is.
func (p *ImageProcessorImpl) Process(reader io.Reader) (*adapter.ProcessedImage, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnsupportedImage, err)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	needsResize := width > p.maxWidth || height > p.maxHeight

	if !needsResize && format == "jpeg" {
		return &adapter.ProcessedImage{
			Reader:    bytes.NewReader(data),
			Size:      int64(len(data)),
			Width:     width,
			Height:    height,
			Unchanged: true,
		}, nil
	}

	if needsResize {
		img = imaging.Fit(img, p.maxWidth, p.maxHeight, imaging.Lanczos)
		bounds = img.Bounds()
		width, height = bounds.Dx(), bounds.Dy()
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(p.quality)); err != nil {
		return nil, fmt.Errorf("encoding jpeg: %w", err)
	}

	return &adapter.ProcessedImage{
		Reader: bytes.NewReader(buf.Bytes()),
		Size:   int64(buf.Len()),
		Width:  width,
		Height: height,
	}, nil
}
