package context

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"LoveNote/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h func(*gin.Context) error) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", Wrap(h))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestWrap_BizError(t *testing.T) {
	w, body := serve(t, func(c *gin.Context) error {
		return response.NewError(http.StatusConflict, "already paired")
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, http.StatusConflict, body.Code)
	assert.Equal(t, "already paired", body.Msg)
}

func TestWrap_UnknownError(t *testing.T) {
	w, body := serve(t, func(c *gin.Context) error {
		return errors.New("boom")
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", body.Msg)
}

func TestWrap_Success(t *testing.T) {
	w, body := serve(t, func(c *gin.Context) error {
		response.Success(c, gin.H{"ok": true})
		return nil
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, body.Code)
}

func TestGetUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := GetUserID(c)
	assert.Error(t, err)

	c.Set(CtxUserID, uint64(7))
	uid, err := GetUserID(c)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), uid)
}
