// Command optimize writes web-sized copies of the original photos into the
// optimized directory.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/config"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/observability"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/storage"
	"github.com/marcos-nsantos/photo-portfolio/internal/usecase/optimize"
)

func main() {
	force := flag.Bool("force", false, "rewrite outputs that are newer than their original")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log, "optimize")
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	processor := storage.NewImageProcessor(cfg.Optimizer.MaxWidth, cfg.Optimizer.MaxHeight, cfg.Optimizer.Quality)
	svc := optimize.NewService(processor, logger)

	result, err := svc.Run(ctx, optimize.Config{
		SourceDir: cfg.Photos.OriginalPath(),
		DestDir:   cfg.Photos.OptimizedPath(),
		Force:     *force,
	})
	if err != nil {
		logger.Error("optimize failed", zap.Error(err))
		stop()
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("optimize finished",
		zap.Int("written", result.Written),
		zap.Int("copied", result.Copied),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed),
	)
	if result.Failed > 0 {
		stop()
		logger.Sync()
		os.Exit(1)
	}
}
