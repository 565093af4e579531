package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRequestIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RequestIDMiddleware(), func(c *gin.Context) {
		fromCtx, _ := c.Request.Context().Value("request_id").(string)
		c.JSON(http.StatusOK, gin.H{
			"ginKey": c.GetString(RequestIDKey),
			"ctxKey": fromCtx,
		})
	})
	return r
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	r := newRequestIDRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDMiddleware_HonorsIncomingHeader(t *testing.T) {
	r := newRequestIDRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-abc", w.Header().Get("X-Request-ID"))
	assert.Contains(t, w.Body.String(), `"ginKey":"req-abc"`)
	assert.Contains(t, w.Body.String(), `"ctxKey":"req-abc"`)
}
