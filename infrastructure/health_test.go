package infrastructure

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestHealthServer_Endpoints(t *testing.T) {
	t.Parallel()

	h := NewHealthServer(":0")

	for _, path := range []string{"/", "/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		h.server.Handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, path)
		body := rec.Body.String()
		assert.Equal(t, "ok", gjson.Get(body, "status").String())
		assert.True(t, gjson.Get(body, "uptimeSeconds").Exists())
	}
}

func TestHealthServer_UnknownPath(t *testing.T) {
	t.Parallel()

	h := NewHealthServer(":0")

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	h.server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
