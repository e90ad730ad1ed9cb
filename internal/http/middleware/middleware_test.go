package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"prospect_portal_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

func requestIDEngine(seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/", func(c *gin.Context) {
		if id, ok := c.Request.Context().Value(logger.RequestIDKey).(string); ok {
			*seen = id
		}
		c.Status(http.StatusOK)
	})
	return engine
}

func TestRequestID_InboundHeaderReachesRequestContext(t *testing.T) {
	var seen string
	engine := requestIDEngine(&seen)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-abc")
	engine.ServeHTTP(rec, req)

	if seen != "req-abc" {
		t.Fatalf("request context carried %q, want %q", seen, "req-abc")
	}
	if got := rec.Header().Get("X-Request-ID"); got != "req-abc" {
		t.Fatalf("response header carried %q, want %q", got, "req-abc")
	}
}

func TestRequestID_GeneratedWhenMissing(t *testing.T) {
	var seen string
	engine := requestIDEngine(&seen)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatal("expected a generated request ID in the request context")
	}
	if got := rec.Header().Get("X-Request-ID"); got != seen {
		t.Fatalf("response header %q does not match context value %q", got, seen)
	}
}
