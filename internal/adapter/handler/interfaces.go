package handler

import (
	"context"

	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
	"github.com/marcos-nsantos/photo-portfolio/internal/usecase/gallery"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type GalleryService interface {
	List(ctx context.Context) []entity.Photo
	Get(ctx context.Context, id string) (*entity.Photo, error)
	Tags(ctx context.Context) []string
	Search(ctx context.Context, f gallery.Filter) []entity.Photo
}

type CurationService interface {
	UpdateTags(ctx context.Context, id string, tags []string) (*entity.Photo, error)
}
