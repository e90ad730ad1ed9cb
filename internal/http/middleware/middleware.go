// Package middleware provides shared gin middleware for the HTTP layer.
package middleware

import (
	"context"
	"time"

	"prospect_portal_backend/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID attaches a request ID to each request, honoring an inbound
// header when the caller already carries one. The ID goes into the request
// context so logger.WithContext can pick it up downstream.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx := context.WithValue(c.Request.Context(), logger.RequestIDKey, requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(logger.RequestIDKey), requestID)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}

// RequestLogger logs every request with method, path, status and latency.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := float64(time.Since(start).Microseconds()) / 1000.0
		status := c.Writer.Status()

		if status >= 500 && len(c.Errors) > 0 {
			log.HTTPError(c.Request.Method, c.FullPath(), status, c.Errors.Last(), c.ClientIP())
			return
		}
		log.HTTPRequest(c.Request.Method, c.FullPath(), status, latency, c.ClientIP())
	}
}
