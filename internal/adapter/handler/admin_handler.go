package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/photo-portfolio/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/photo-portfolio/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/photo-portfolio/internal/pkg/httputil"
)

type AdminHandler struct {
	curationSvc CurationService
}

func NewAdminHandler(curationSvc CurationService) *AdminHandler {
	return &AdminHandler{curationSvc: curationSvc}
}

func (h *AdminHandler) UpdateTags(c *gin.Context) {
	var req request.UpdateTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	photo, err := h.curationSvc.UpdateTags(c.Request.Context(), c.Param("id"), req.Tags)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.PhotoFromEntity(photo))
}
