package curation

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-portfolio/internal/adapter/cache"
	"github.com/marcos-nsantos/photo-portfolio/internal/adapter/repository"
	"github.com/marcos-nsantos/photo-portfolio/internal/domain"
	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
)

type Service struct {
	store  repository.PhotoRepository
	cache  cache.PhotoCache
	logger *zap.Logger
}

// NewService accepts a nil cache. A nil store makes every update fail with
// domain.ErrStoreNotConfigured.
func NewService(store repository.PhotoRepository, photoCache cache.PhotoCache, logger *zap.Logger) *Service {
	return &Service{store: store, cache: photoCache, logger: logger}
}

// UpdateTags replaces the tags of one persisted record. Tags are trimmed,
// empty ones dropped and repeats removed.
func (s *Service) UpdateTags(ctx context.Context, id string, tags []string) (*entity.Photo, error) {
	if s.store == nil {
		return nil, domain.ErrStoreNotConfigured
	}

	photo, err := s.store.UpdateTags(ctx, id, entity.NormalizeTags(tags))
	if err != nil {
		if errors.Is(err, domain.ErrPhotoNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("updating tags: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("invalidating photo cache", zap.Error(err))
		}
	}

	s.logger.Info("tags updated", zap.String("photo_id", id), zap.Strings("tags", photo.Tags))
	return photo, nil
}
