package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hongminglow/devcamper-be/internal/apperr"
	"github.com/hongminglow/devcamper-be/internal/http/requestid"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestErr_TranslatesKinds(t *testing.T) {
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{apperr.Validation("Please add a name"), http.StatusBadRequest, "Please add a name"},
		{apperr.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{apperr.ErrUnauthorized, http.StatusUnauthorized, "Not authorized to access this route"},
		{apperr.Forbidden("User 1 is not authorized to update bootcamp 2"), http.StatusForbidden, "User 1 is not authorized to update bootcamp 2"},
		{apperr.NotFound("No course with the id of 3"), http.StatusNotFound, "No course with the id of 3"},
		{errors.New("pool exhausted"), http.StatusInternalServerError, "Server Error"},
	}
	for _, tc := range tests {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		Err(rec, req, zap.NewNop(), tc.err)

		assert.Equal(t, tc.status, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, tc.msg, body["error"])
	}
}

func TestErr_LogsOnlyInternal(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bootcamps", nil)
	req = req.WithContext(requestid.With(req.Context(), "req-1"))

	Err(httptest.NewRecorder(), req, log, apperr.Validation("bad"))
	assert.Equal(t, 0, logs.Len())

	Err(httptest.NewRecorder(), req, log, apperr.Internal("create bootcamp", errors.New("db down")))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "request failed", entry.Message)
	assert.Equal(t, "req-1", entry.ContextMap()["request_id"])
}

func TestList_IncludesCount(t *testing.T) {
	rec := httptest.NewRecorder()
	List(rec, zap.NewNop(), []string{})

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(0), body["count"])
	assert.Equal(t, []any{}, body["data"])
}
