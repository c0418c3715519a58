// Package bootstrap builds the components shared by the api, manifest and
// optimize binaries from a loaded config.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-portfolio/internal/adapter/media"
	"github.com/marcos-nsantos/photo-portfolio/internal/adapter/repository"
	"github.com/marcos-nsantos/photo-portfolio/internal/adapter/repository/filestore"
	"github.com/marcos-nsantos/photo-portfolio/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/config"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/database"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/imagemeta"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/medialib"
	"github.com/marcos-nsantos/photo-portfolio/internal/usecase/gallery"
)

// Stores holds the record stores for one PHOTOS_STORE mode.
//
// Primary is where serving reads, curation writes and regeneration finds the
// prior records. File is the manifest on disk and is always present. Mirror
// is the second copy written on regeneration, set only when Primary is not
// the file.
type Stores struct {
	Primary repository.PhotoRepository
	File    *filestore.Store
	Mirror  repository.PhotoRepository

	pool *pgxpool.Pool
}

func OpenStores(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Stores, error) {
	file := filestore.NewStore(cfg.Photos.ManifestFile(), logger)
	if cfg.Photos.Store != config.StorePostgres {
		return &Stores{Primary: file, File: file}, nil
	}

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.RunMigrations(ctx, pool, cfg.Database.MigrationsPath); err != nil {
		pool.Close()
		return nil, err
	}

	pg := postgres.NewPhotoRepo(pool)
	return &Stores{Primary: pg, File: file, Mirror: pg, pool: pool}, nil
}

func (s *Stores) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// NewExtractor returns the metadata extractor and a func releasing the
// exiftool process, if one was started.
func NewExtractor(cfg config.PhotosConfig, logger *zap.Logger) (*gallery.Extractor, func()) {
	readers := []media.MetadataReader{}
	release := func() {}

	if cfg.UseExiftool {
		et, err := imagemeta.NewExiftoolReader(logger)
		if err != nil {
			logger.Info("exiftool not available, using built-in exif reader", zap.Error(err))
		} else {
			readers = append(readers, et)
			release = func() { _ = et.Close() }
		}
	}
	readers = append(readers, imagemeta.NewExifReader(logger))

	extractor := gallery.NewExtractor(imagemeta.NewHeaderReader(), imagemeta.NewChain(readers...), gallery.ExtractorConfig{
		OriginalDir:    cfg.OriginalPath(),
		OriginalPrefix: cfg.OriginalPrefix,
		Timeout:        cfg.ExtractTimeout,
		Concurrency:    cfg.ExtractConcurrency,
	}, logger)
	return extractor, release
}

// NewRemoteLibrary returns a nil interface when no credentials are configured.
func NewRemoteLibrary(cfg config.CloudinaryConfig, logger *zap.Logger) (media.RemoteLibrary, error) {
	cld, err := medialib.NewCloudinary(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("creating remote library: %w", err)
	}
	if cld == nil {
		return nil, nil
	}
	return cld, nil
}

func DefaultSources(cfg config.PhotosConfig, library media.RemoteLibrary) gallery.DefaultSources {
	return gallery.DefaultSources{
		Library:         library,
		OptimizedDir:    cfg.OptimizedPath(),
		OptimizedPrefix: cfg.OptimizedPrefix,
		OriginalDir:     cfg.OriginalPath(),
		OriginalPrefix:  cfg.OriginalPrefix,
	}
}
