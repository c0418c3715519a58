// Command manifest regenerates photos-manifest.json from the photo
// directories, optionally publishing it, and can keep doing so on change.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-portfolio/internal/adapter/storage"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/bootstrap"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/config"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/observability"
	storageImpl "github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/storage"
	"github.com/marcos-nsantos/photo-portfolio/internal/usecase/gallery"
	"github.com/marcos-nsantos/photo-portfolio/internal/usecase/manifest"
)

func main() {
	watch := flag.Bool("watch", false, "regenerate whenever the photo directories change")
	publish := flag.Bool("publish", false, "upload the manifest and referenced images to S3 after each run")
	debounce := flag.Duration("debounce", manifest.DefaultDebounce, "quiet period before a watched change triggers a run")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log, "manifest")
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stores, err := bootstrap.OpenStores(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open photo store", zap.Error(err))
	}
	defer stores.Close()

	extractor, releaseExtractor := bootstrap.NewExtractor(cfg.Photos, logger)
	defer releaseExtractor()

	var publisher storage.ObjectStorage
	if cfg.S3.Enabled() {
		publisher = storageImpl.NewS3Publisher(cfg.S3)
	}

	// Regeneration reads only the local directories; prior tags come from
	// the primary store so curation survives.
	resolver := gallery.NewDirectoryResolver(bootstrap.DefaultSources(cfg.Photos, nil), extractor, stores.Primary, logger)

	svc := manifest.NewService(resolver, stores.File, stores.Mirror, publisher, manifest.Config{
		PublicDir:    cfg.Photos.PublicDir,
		ManifestPath: stores.File.Path(),
		Dirs: []manifest.Dir{
			{Path: cfg.Photos.OptimizedPath(), Prefix: cfg.Photos.OptimizedPrefix},
			{Path: cfg.Photos.OriginalPath(), Prefix: cfg.Photos.OriginalPrefix},
		},
		Debounce: *debounce,
	}, logger)

	if *watch {
		err = svc.Watch(ctx, *publish)
	} else {
		err = svc.Run(ctx, *publish)
	}
	if err != nil && ctx.Err() == nil {
		logger.Error("manifest generation failed", zap.Error(err))
		stop()
		logger.Sync()
		os.Exit(1)
	}
}
