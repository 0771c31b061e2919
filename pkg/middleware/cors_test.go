package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestCORS_SetsHeadersOnEveryResponse(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.GET("/food", func(c *gin.Context) { c.JSON(200, []string{}) })

	req := httptest.NewRequest(http.MethodGet, "/food", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestCORS_AnswersPreflight(t *testing.T) {
	called := false
	r := gin.New()
	r.Use(CORS())
	r.POST("/food", func(c *gin.Context) { called = true })

	req := httptest.NewRequest(http.MethodOptions, "/food", nil)
	req.Header.Set("Origin", "https://menu.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
	require.False(t, called)
}
