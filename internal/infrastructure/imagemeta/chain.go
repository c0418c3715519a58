package imagemeta

import (
	"context"
	"errors"

	"github.com/marcos-nsantos/photo-portfolio/internal/adapter/media"
	"github.com/marcos-nsantos/photo-portfolio/internal/domain"
	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
)

// Chain asks each reader in turn and returns the first non-empty result.
type Chain struct {
	readers []media.MetadataReader
}

func NewChain(readers ...media.MetadataReader) *Chain {
	return &Chain{readers: readers}
}

func (c *Chain) ReadMetadata(ctx context.Context, path string) (*entity.ImageMetadata, error) {
	var errs []error
	for _, r := range c.readers {
		meta, err := r.ReadMetadata(ctx, path)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			errs = append(errs, err)
			continue
		}
		if !meta.IsEmpty() {
			return meta, nil
		}
	}
	if len(errs) == 0 {
		return nil, domain.ErrNoMetadata
	}
	return nil, errors.Join(append([]error{domain.ErrNoMetadata}, errs...)...)
}
