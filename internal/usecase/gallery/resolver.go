package gallery

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-portfolio/internal/adapter/media"
	"github.com/marcos-nsantos/photo-portfolio/internal/adapter/repository"
	"github.com/marcos-nsantos/photo-portfolio/internal/domain"
	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
)

// Resolver walks its sources in order and turns the first usable one into a
// sorted record list.
type Resolver struct {
	sources   []Source
	extractor *Extractor
	store     repository.PhotoRepository
	logger    *zap.Logger
}

func NewResolver(sources []Source, extractor *Extractor, store repository.PhotoRepository, logger *zap.Logger) *Resolver {
	return &Resolver{sources: sources, extractor: extractor, store: store, logger: logger}
}

type DefaultSources struct {
	Library         media.RemoteLibrary
	OptimizedDir    string
	OptimizedPrefix string
	OriginalDir     string
	OriginalPrefix  string
}

// NewDefaultResolver wires the serving chain: remote library, persisted
// manifest, optimized directory, original directory, seed list.
func NewDefaultResolver(src DefaultSources, extractor *Extractor, store repository.PhotoRepository, logger *zap.Logger) *Resolver {
	return NewResolver([]Source{
		NewRemoteSource(src.Library, logger),
		NewManifestSource(store, logger),
		NewDirectorySource(src.OptimizedDir, src.OptimizedPrefix),
		NewDirectorySource(src.OriginalDir, src.OriginalPrefix),
		NewStaticSource(),
	}, extractor, store, logger)
}

// NewDirectoryResolver wires the generation chain: optimized directory, then
// original directory, nothing else.
func NewDirectoryResolver(src DefaultSources, extractor *Extractor, store repository.PhotoRepository, logger *zap.Logger) *Resolver {
	return NewResolver([]Source{
		NewDirectorySource(src.OptimizedDir, src.OptimizedPrefix),
		NewDirectorySource(src.OriginalDir, src.OriginalPrefix),
	}, extractor, store, logger)
}

// Select returns the first source able to serve.
func (r *Resolver) Select(ctx context.Context) (Selection, bool) {
	for _, s := range r.sources {
		if sel, ok := s.Resolve(ctx); ok {
			r.logger.Debug("source selected", zap.String("source", s.Name()))
			return sel, true
		}
		r.logger.Debug("source skipped", zap.String("source", s.Name()))
	}
	return Selection{}, false
}

// Resolve never fails: when nothing can serve, or the chosen source breaks
// midway, the result is an empty list.
func (r *Resolver) Resolve(ctx context.Context) []entity.Photo {
	sel, ok := r.Select(ctx)
	if !ok {
		r.logger.Info("no photo source available")
		return []entity.Photo{}
	}
	return r.Materialize(ctx, sel)
}

func (r *Resolver) Materialize(ctx context.Context, sel Selection) []entity.Photo {
	var photos []entity.Photo

	switch sel.Kind {
	case SourceRemote:
		photos = MergeRemote(sel.Resources, r.prior(ctx))
	case SourceDirectory:
		items, err := r.extractor.Scan(ctx, sel.Dir, sel.Prefix)
		if err != nil {
			r.logger.Warn("scanning photo directory", zap.String("dir", sel.Dir), zap.Error(err))
			return []entity.Photo{}
		}
		photos = Merge(items, r.prior(ctx))
	default:
		photos = normalize(sel.Photos)
	}

	Sort(photos)
	return photos
}

func (r *Resolver) prior(ctx context.Context) []entity.Photo {
	if r.store == nil {
		return nil
	}
	photos, err := r.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrSourceUnavailable) {
			r.logger.Warn("loading prior records", zap.Error(err))
		}
		return nil
	}
	return photos
}
