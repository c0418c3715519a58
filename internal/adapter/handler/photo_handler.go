package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-portfolio/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/photo-portfolio/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
	"github.com/marcos-nsantos/photo-portfolio/internal/pkg/httputil"
	"github.com/marcos-nsantos/photo-portfolio/internal/usecase/gallery"
)

type PhotoHandler struct {
	gallerySvc GalleryService
	logger     *zap.Logger
}

func NewPhotoHandler(gallerySvc GalleryService, logger *zap.Logger) *PhotoHandler {
	return &PhotoHandler{gallerySvc: gallerySvc, logger: logger}
}

// List always answers 200. A gallery that cannot be resolved, even one whose
// resolution panics, is empty.
func (h *PhotoHandler) List(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	httputil.OK(c, response.PhotosFromEntities(h.listPhotos(c)))
}

func (h *PhotoHandler) listPhotos(c *gin.Context) (photos []entity.Photo) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("resolving gallery panicked",
				zap.Any("panic", r),
				zap.String("request_id", c.GetString(httputil.RequestIDKey)),
				zap.Stack("stack"),
			)
			photos = nil
		}
	}()
	return h.gallerySvc.List(c.Request.Context())
}

func (h *PhotoHandler) Get(c *gin.Context) {
	photo, err := h.gallerySvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.PhotoFromEntity(photo))
}

func (h *PhotoHandler) Tags(c *gin.Context) {
	tags := h.gallerySvc.Tags(c.Request.Context())
	if tags == nil {
		tags = []string{}
	}
	httputil.OK(c, response.TagsResponse{Tags: tags})
}

func (h *PhotoHandler) Search(c *gin.Context) {
	var req request.SearchPhotosRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	photos := h.gallerySvc.Search(c.Request.Context(), gallery.Filter{
		Tags:  req.Tags,
		Query: req.Query,
	})
	httputil.OK(c, response.PhotosFromEntities(photos))
}
