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

type SourceKind string

const (
	SourceRemote    SourceKind = "remote"
	SourceManifest  SourceKind = "manifest"
	SourceDirectory SourceKind = "directory"
	SourceStatic    SourceKind = "static"
)

// Selection is the handle a Source hands back: a directory to scan, remote
// resources to map, or records that are already complete.
type Selection struct {
	Kind      SourceKind
	Dir       string
	Prefix    string
	Resources []entity.RemoteResource
	Photos    []entity.Photo
}

// Source is one step of the fallback chain. Resolve reports false when the
// source cannot serve, and never fails otherwise.
type Source interface {
	Name() string
	Resolve(ctx context.Context) (Selection, bool)
}

type RemoteSource struct {
	library media.RemoteLibrary
	logger  *zap.Logger
}

// NewRemoteSource accepts a nil library, meaning no credentials are configured.
func NewRemoteSource(library media.RemoteLibrary, logger *zap.Logger) *RemoteSource {
	return &RemoteSource{library: library, logger: logger}
}

func (s *RemoteSource) Name() string { return string(SourceRemote) }

func (s *RemoteSource) Resolve(ctx context.Context) (Selection, bool) {
	if s.library == nil {
		return Selection{}, false
	}
	resources, err := s.library.ListResources(ctx)
	if err != nil {
		s.logger.Warn("remote library unavailable", zap.Error(err))
		return Selection{}, false
	}
	if len(resources) == 0 {
		return Selection{}, false
	}
	return Selection{Kind: SourceRemote, Resources: resources}, true
}

type ManifestSource struct {
	store  repository.PhotoRepository
	logger *zap.Logger
}

func NewManifestSource(store repository.PhotoRepository, logger *zap.Logger) *ManifestSource {
	return &ManifestSource{store: store, logger: logger}
}

func (s *ManifestSource) Name() string { return string(SourceManifest) }

func (s *ManifestSource) Resolve(ctx context.Context) (Selection, bool) {
	if s.store == nil {
		return Selection{}, false
	}
	photos, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrSourceUnavailable) {
			s.logger.Warn("manifest unreadable", zap.Error(err))
		}
		return Selection{}, false
	}
	return Selection{Kind: SourceManifest, Photos: photos}, true
}

type DirectorySource struct {
	dir    string
	prefix string
}

func NewDirectorySource(dir, prefix string) *DirectorySource {
	return &DirectorySource{dir: dir, prefix: prefix}
}

func (s *DirectorySource) Name() string { return string(SourceDirectory) + ":" + s.dir }

func (s *DirectorySource) Resolve(_ context.Context) (Selection, bool) {
	if s.dir == "" || !dirExists(s.dir) {
		return Selection{}, false
	}
	return Selection{Kind: SourceDirectory, Dir: s.dir, Prefix: s.prefix}, true
}

type StaticSource struct {
	photos func() []entity.Photo
}

// NewStaticSource serves the embedded seed list.
func NewStaticSource() *StaticSource {
	return &StaticSource{photos: SeedPhotos}
}

func (s *StaticSource) Name() string { return string(SourceStatic) }

func (s *StaticSource) Resolve(_ context.Context) (Selection, bool) {
	return Selection{Kind: SourceStatic, Photos: s.photos()}, true
}
