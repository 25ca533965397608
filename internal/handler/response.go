package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"watchthis/sharing/internal/models"
	"watchthis/sharing/internal/service"
)

// region --- DTOs ---

// ErrorBody describes a failed request.
type ErrorBody struct {
	Code    string `json:"code" example:"SHARE_NOT_FOUND"`
	Message string `json:"message" example:"Share not found"`
}

// ErrorResponse is the envelope for every failure.
type ErrorResponse struct {
	Success bool      `json:"success" example:"false"`
	Error   ErrorBody `json:"error"`
}

// ShareResponse wraps a single share.
type ShareResponse struct {
	Success bool         `json:"success" example:"true"`
	Data    models.Share `json:"data"`
}

// StatsResponse wraps the caller's share statistics.
type StatsResponse struct {
	Success bool          `json:"success" example:"true"`
	Data    service.Stats `json:"data"`
}

// MessageResponse confirms an action that returns no entity.
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Share deleted successfully"`
}

// endregion

var kindStatus = map[service.Kind]int{
	service.KindMissingFields:          http.StatusBadRequest,
	service.KindInvalidShare:           http.StatusBadRequest,
	service.KindInvalidID:              http.StatusBadRequest,
	service.KindInvalidStatus:          http.StatusBadRequest,
	service.KindValidation:             http.StatusBadRequest,
	service.KindAuthenticationRequired: http.StatusUnauthorized,
	service.KindForbidden:              http.StatusForbidden,
	service.KindNotFound:               http.StatusNotFound,
	service.KindConflict:               http.StatusConflict,
}

// StatusFor maps a service error kind to its HTTP status.
func StatusFor(kind service.Kind) int {
	if status, ok := kindStatus[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   ErrorBody{Code: code, Message: message},
	})
}

// respondError writes err as an envelope. Internal causes are logged and
// never sent to the client.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var serr *service.Error
	if !errors.As(err, &serr) {
		serr = &service.Error{Kind: service.KindInternal, Message: "Internal server error", Err: err}
	}

	status := StatusFor(serr.Kind)
	if status == http.StatusInternalServerError {
		logger.Error("Request failed",
			zap.String("request_id", c.GetString("requestID")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		abortWithError(c, status, service.KindInternal.Code(), "Internal server error")
		return
	}

	abortWithError(c, status, serr.Kind.Code(), serr.Message)
}

// NotFound answers routes that do not exist.
func NotFound(c *gin.Context) {
	abortWithError(c, http.StatusNotFound, "NOT_FOUND", "Route not found")
}
