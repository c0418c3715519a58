package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/photo-portfolio/internal/pkg/apperror"
)

const (
	RequestIDKey = "request_id"
	SubjectKey   = "subject"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{
		Error:     message,
		RequestID: GetRequestID(c),
	})
}

func ErrorWithCode(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: GetRequestID(c),
	})
}

func ValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:     err.Error(),
		Code:      "VALIDATION_ERROR",
		RequestID: GetRequestID(c),
	})
}

func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:     "internal server error",
		Code:      "INTERNAL_ERROR",
		RequestID: GetRequestID(c),
	})
}

// HandleError writes err as a JSON error body. Domain sentinels get their
// matching status; anything else is a 500 with the cause attached to the
// context for the request logger.
func HandleError(c *gin.Context, err error) {
	appErr := apperror.FromError(err)
	if appErr.StatusCode >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(appErr.StatusCode, ErrorResponse{
		Error:     appErr.Message,
		Code:      appErr.Code,
		RequestID: GetRequestID(c),
	})
}

func GetSubject(c *gin.Context) string {
	return c.GetString(SubjectKey)
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
