package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler_NotFoundLogsRequest(t *testing.T) {
	t.Parallel()

	logs := &bytes.Buffer{}
	h := New(slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug})))

	rec := httptest.NewRecorder()
	h.NotFound(rec, httptest.NewRequest(http.MethodPatch, "/api/notes/abc", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"unknown endpoint"}`, rec.Body.String())
	assert.Contains(t, logs.String(), `"msg":"unknown_endpoint"`)
	assert.Contains(t, logs.String(), `"method":"PATCH"`)
	assert.Contains(t, logs.String(), `"path":"/api/notes/abc"`)
}
