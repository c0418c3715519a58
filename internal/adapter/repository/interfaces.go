package repository

import (
	"context"

	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

// PhotoRepository holds the persisted record set: the output of the last
// generation plus any curation applied since.
type PhotoRepository interface {
	Load(ctx context.Context) ([]entity.Photo, error)
	Save(ctx context.Context, photos []entity.Photo) error
	UpdateTags(ctx context.Context, id string, tags []string) (*entity.Photo, error)
}
