package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-portfolio/internal/adapter/handler"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/middleware"
)

// StaticConfig names the files served next to the API. An empty field is not served.
type StaticConfig struct {
	ManifestFile    string
	OriginalDir     string
	OriginalPrefix  string
	OptimizedDir    string
	OptimizedPrefix string
}

type Router struct {
	engine         *gin.Engine
	photoHandler   *handler.PhotoHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
	static         *StaticConfig
	logger         *zap.Logger
}

type RouterConfig struct {
	PhotoHandler *handler.PhotoHandler
	// AdminHandler and AuthMiddleware must both be set for the admin routes to be mounted.
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
	Static         *StaticConfig
	Logger         *zap.Logger
	Environment    string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:         engine,
		photoHandler:   cfg.PhotoHandler,
		adminHandler:   cfg.AdminHandler,
		authMiddleware: cfg.AuthMiddleware,
		rateLimiter:    cfg.RateLimiter,
		static:         cfg.Static,
		logger:         cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS())
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")
	if r.rateLimiter != nil {
		api.Use(r.rateLimiter.Limit())
	}
	{
		api.GET("/photos", r.photoHandler.List)
		api.GET("/photos/search", r.photoHandler.Search)
		api.GET("/photos/:id", r.photoHandler.Get)
		api.GET("/tags", r.photoHandler.Tags)

		if r.adminHandler != nil && r.authMiddleware != nil {
			admin := api.Group("/admin")
			admin.Use(r.authMiddleware.RequireAuth())
			{
				admin.PUT("/photos/:id/tags", r.adminHandler.UpdateTags)
			}
		}
	}

	r.setupStatic()
}

func (r *Router) setupStatic() {
	if r.static == nil {
		return
	}
	if r.static.ManifestFile != "" {
		r.engine.GET("/photos-manifest.json", func(c *gin.Context) {
			c.Header("Cache-Control", "no-store")
			c.File(r.static.ManifestFile)
		})
	}
	if r.static.OriginalDir != "" && r.static.OriginalPrefix != "" {
		r.engine.Static(r.static.OriginalPrefix, r.static.OriginalDir)
	}
	if r.static.OptimizedDir != "" && r.static.OptimizedPrefix != "" {
		r.engine.Static(r.static.OptimizedPrefix, r.static.OptimizedDir)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
