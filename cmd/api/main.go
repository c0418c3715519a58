package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-portfolio/internal/adapter/cache"
	"github.com/marcos-nsantos/photo-portfolio/internal/adapter/handler"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/auth"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/bootstrap"
	cacheImpl "github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/cache"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/config"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/observability"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/server"
	"github.com/marcos-nsantos/photo-portfolio/internal/usecase/curation"
	"github.com/marcos-nsantos/photo-portfolio/internal/usecase/gallery"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log, "api")
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Stores
	stores, err := bootstrap.OpenStores(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open photo store", zap.Error(err))
	}
	defer stores.Close()

	// Metadata sources
	library, err := bootstrap.NewRemoteLibrary(cfg.Cloudinary, logger)
	if err != nil {
		logger.Fatal("failed to create remote library", zap.Error(err))
	}
	extractor, releaseExtractor := bootstrap.NewExtractor(cfg.Photos, logger)
	defer releaseExtractor()

	// Cache and redis
	var (
		redisClient *redis.Client
		photoCache  cache.PhotoCache
	)
	if cfg.Redis.Enabled {
		redisClient, err = cacheImpl.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("redis unavailable", zap.Error(err))
		} else {
			defer redisClient.Close()
		}
	}
	// A zero TTL leaves photoCache nil, which disables caching.
	if cfg.Cache.TTL > 0 {
		if redisClient != nil {
			photoCache = cacheImpl.NewRedisPhotoCache(redisClient, cfg.Cache.TTL)
		} else {
			photoCache = cacheImpl.NewMemoryPhotoCache(cfg.Cache.TTL)
		}
	}

	// Use cases
	resolver := gallery.NewDefaultResolver(bootstrap.DefaultSources(cfg.Photos, library), extractor, stores.Primary, logger)
	gallerySvc := gallery.NewService(resolver, photoCache, logger)

	// Handlers
	photoHandler := handler.NewPhotoHandler(gallerySvc, logger)

	routerCfg := server.RouterConfig{
		PhotoHandler: photoHandler,
		Logger:       logger,
		Environment:  cfg.Server.Environment,
	}

	if cfg.Admin.Enabled() {
		jwtSvc := auth.NewJWTService(cfg.Admin.JWTSecret, cfg.Admin.TokenTTL)
		curationSvc := curation.NewService(stores.Primary, photoCache, logger)
		routerCfg.AdminHandler = handler.NewAdminHandler(curationSvc)
		routerCfg.AuthMiddleware = middleware.NewAuthMiddleware(jwtSvc)
	} else {
		logger.Info("admin routes disabled: ADMIN_JWT_SECRET not set")
	}

	if cfg.RateLimit.Enabled {
		if redisClient != nil {
			routerCfg.RateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit)
		} else {
			logger.Warn("rate limiting disabled: redis unavailable")
		}
	}

	if cfg.Server.ServeStatic {
		routerCfg.Static = &server.StaticConfig{
			ManifestFile:    stores.File.Path(),
			OriginalDir:     cfg.Photos.OriginalPath(),
			OriginalPrefix:  cfg.Photos.OriginalPrefix,
			OptimizedDir:    cfg.Photos.OptimizedPath(),
			OptimizedPrefix: cfg.Photos.OptimizedPrefix,
		}
	}

	// Router
	router := server.NewRouter(routerCfg)

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:              cfg.Server.Port,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ShutdownTimeout:   cfg.Server.ShutdownTimeout,
		Handler:           router.Engine(),
		Logger:            logger,
	})

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", zap.Error(err))
	}

	logger.Info("server stopped")
}
