package prefs_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/plussdev/portfolio-backend/internal/kv"
	"github.com/plussdev/portfolio-backend/internal/prefs"
)

func newRouter(uid string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("firebase_uid", uid)
	})
	prefs.NewHandler(kv.NewMemoryStore(), zap.NewNop()).Register(r)
	return r
}

func put(r *gin.Engine, path, value string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"value": value})
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestPrefsRoundTrip(t *testing.T) {
	r := newRouter("uid-1")

	rr := put(r, "/prefs/language", "fr")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = get(r, "/prefs/language")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "fr", resp["value"])
}

func TestPrefsUnsetReadsEmpty(t *testing.T) {
	r := newRouter("uid-1")

	rr := get(r, "/prefs/theme")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "", resp["value"])
}

func TestPrefsUnknownKey(t *testing.T) {
	r := newRouter("uid-1")
	assert.Equal(t, http.StatusNotFound, get(r, "/prefs/volume").Code)
	assert.Equal(t, http.StatusNotFound, put(r, "/prefs/volume", "11").Code)
}

func TestPrefsRejectsUnknownValue(t *testing.T) {
	r := newRouter("uid-1")
	assert.Equal(t, http.StatusBadRequest, put(r, "/prefs/theme", "solarized").Code)
	assert.Equal(t, http.StatusBadRequest, put(r, "/prefs/language", "de").Code)
}
