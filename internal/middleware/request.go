package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"watchthis/sharing/internal/metrics"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
)

// RequestMiddleware tags, logs and measures requests.
type RequestMiddleware struct {
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewRequestMiddleware returns middleware writing to logger and m. m may be nil.
func NewRequestMiddleware(logger *zap.Logger, m *metrics.Metrics) *RequestMiddleware {
	return &RequestMiddleware{
		logger:  logger.With(zap.String("component", "http")),
		metrics: m,
	}
}

// RequestID reuses a sane inbound X-Request-ID or mints a new one.
func (rm *RequestMiddleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" || len(requestID) > 64 {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}

// LogRequest logs one line per request and records its metrics.
func (rm *RequestMiddleware) LogRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		rm.metrics.ObserveRequest(c.Request.Method, route, status, duration)

		fields := []zap.Field{
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.Int("size", c.Writer.Size()),
			zap.String("client_ip", c.ClientIP()),
		}
		if userID := c.GetString("userID"); userID != "" {
			fields = append(fields, zap.String("user_id", userID))
		}

		switch {
		case status >= http.StatusInternalServerError:
			rm.logger.Error("HTTP Request", fields...)
		case status >= http.StatusBadRequest:
			rm.logger.Warn("HTTP Request", fields...)
		default:
			rm.logger.Info("HTTP Request", fields...)
		}
	}
}

// RecoverPanic turns a panic into a 500 envelope.
func (rm *RequestMiddleware) RecoverPanic() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				rm.logger.Error("Panic recovered",
					zap.String("request_id", c.GetString(requestIDKey)),
					zap.Any("error", err),
					zap.Stack("stack"))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_ERROR",
						"message": "Internal server error",
					},
				})
			}
		}()
		c.Next()
	}
}
