package handler

import (
	"LoveNote/config"
	"LoveNote/pkg/jwt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "handler-secret"

type router interface {
	RegisterRouter(r gin.IRouter)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Jwt.Secret = testSecret
	return cfg
}

func newEngine(routers ...router) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	for _, rt := range routers {
		rt.RegisterRouter(api)
	}
	return r
}

func bearer(t *testing.T, userID uint64) string {
	t.Helper()
	token, err := jwt.GenerateToken([]byte(testSecret), userID, "alice", jwt.TypeAccess, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func do(r http.Handler, method, path, auth, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
