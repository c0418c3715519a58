package cache

import (
	"context"

	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/cache_mocks.go -package=mocks

// PhotoCache holds the last resolved gallery. Get reports false on a miss or expiry.
type PhotoCache interface {
	Get(ctx context.Context) ([]entity.Photo, bool, error)
	Set(ctx context.Context, photos []entity.Photo) error
	Invalidate(ctx context.Context) error
}
