// Package shared holds handler plumbing used by both API surfaces.
package shared

import (
	"errors"

	"github.com/delipedidos/api/internal/http/response"
	"github.com/delipedidos/api/internal/logger"
	"github.com/delipedidos/api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog returns a logger carrying the request id.
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.S().With("request_id", id)
		}
	}
	return logger.S()
}

// RespondError writes an error envelope and logs the underlying error.
func RespondError(c *gin.Context, code int, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// RespondServiceError maps the well-known service errors onto response
// codes; anything else is an internal error. Validation failures carry the
// offending field list in the payload.
func RespondServiceError(c *gin.Context, err error, notFoundMsg string) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		response.ErrorWithData(c, response.CodeBadRequest, vErr.Error(), gin.H{"fields": vErr.Fields})
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, notFoundMsg)
	case errors.Is(err, service.ErrSlugExists):
		response.Error(c, response.CodeConflict, "slug already exists")
	case errors.Is(err, service.ErrCategoryInUse):
		response.Error(c, response.CodeConflict, "category still has products")
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, "invalid credentials")
	case errors.Is(err, service.ErrInvalidPassword):
		response.Error(c, response.CodeBadRequest, "current password is wrong")
	case errors.Is(err, service.ErrFileTooLarge):
		response.Error(c, response.CodeBadRequest, "file exceeds the size limit")
	case errors.Is(err, service.ErrFileTypeNotAllowed):
		response.Error(c, response.CodeBadRequest, "file type not allowed")
	default:
		RespondError(c, response.CodeInternal, "internal error", err)
	}
}
