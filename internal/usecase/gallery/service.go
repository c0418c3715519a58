package gallery

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-portfolio/internal/adapter/cache"
	"github.com/marcos-nsantos/photo-portfolio/internal/domain"
	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
)

//go:generate mockgen -source=service.go -destination=../../mocks/gallery_mocks.go -package=mocks

type PhotoResolver interface {
	Resolve(ctx context.Context) []entity.Photo
}

// Filter narrows a listing. A photo matches when it carries any of Tags (or
// Tags is empty) and Query is a case-insensitive substring of its alt text,
// one of its tags, its lens or its camera.
type Filter struct {
	Tags  []string
	Query string
}

type Service struct {
	resolver PhotoResolver
	cache    cache.PhotoCache
	logger   *zap.Logger
}

// NewService accepts a nil cache, which disables caching.
func NewService(resolver PhotoResolver, photoCache cache.PhotoCache, logger *zap.Logger) *Service {
	return &Service{resolver: resolver, cache: photoCache, logger: logger}
}

func (s *Service) List(ctx context.Context) []entity.Photo {
	if s.cache != nil {
		photos, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("reading photo cache", zap.Error(err))
		} else if ok {
			return photos
		}
	}

	photos := s.resolver.Resolve(ctx)
	if photos == nil {
		photos = []entity.Photo{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, photos); err != nil {
			s.logger.Warn("writing photo cache", zap.Error(err))
		}
	}
	return photos
}

func (s *Service) Get(ctx context.Context, id string) (*entity.Photo, error) {
	for _, p := range s.List(ctx) {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrPhotoNotFound
}

// Tags returns every tag in use, sorted.
func (s *Service) Tags(ctx context.Context) []string {
	set := make(map[string]struct{})
	for _, p := range s.List(ctx) {
		for _, t := range p.Tags {
			set[t] = struct{}{}
		}
	}
	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

func (s *Service) Search(ctx context.Context, f Filter) []entity.Photo {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := []entity.Photo{}
	for _, p := range s.List(ctx) {
		if matchesTags(p, f.Tags) && matchesQuery(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Service) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("invalidating photo cache", zap.Error(err))
	}
}

func matchesTags(p entity.Photo, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, t := range tags {
		if p.HasTag(t) {
			return true
		}
	}
	return false
}

func matchesQuery(p entity.Photo, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Alt), q) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	if p.Exif != nil {
		return strings.Contains(strings.ToLower(p.Exif.Lens), q) ||
			strings.Contains(strings.ToLower(p.Exif.Camera), q)
	}
	return false
}
