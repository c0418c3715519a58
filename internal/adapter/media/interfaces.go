package media

import (
	"context"

	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/media_mocks.go -package=mocks

type DimensionReader interface {
	Dimensions(ctx context.Context, path string) (width, height int, err error)
}

type MetadataReader interface {
	ReadMetadata(ctx context.Context, path string) (*entity.ImageMetadata, error)
}

type RemoteLibrary interface {
	ListResources(ctx context.Context) ([]entity.RemoteResource, error)
}
