package imagemeta

import (
	"context"

	"github.com/marcos-nsantos/photo-portfolio/internal/domain"
	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
)

// NopDimensions and NopReader stand in when a capability is switched off.
type NopDimensions struct{}

func (NopDimensions) Dimensions(context.Context, string) (int, int, error) {
	return 0, 0, domain.ErrUnsupportedImage
}

type NopReader struct{}

func (NopReader) ReadMetadata(context.Context, string) (*entity.ImageMetadata, error) {
	return nil, domain.ErrNoMetadata
}
