package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTraceIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func TestTraceIDGeneratedWhenAbsent(t *testing.T) {
	r := newTraceIDRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.NotEmpty(t, w.Header().Get(TraceIDHeader))
}

func TestTraceIDPreservedWhenSent(t *testing.T) {
	r := newTraceIDRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(TraceIDHeader, "retry-7f3a")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "retry-7f3a", w.Header().Get(TraceIDHeader))
}
