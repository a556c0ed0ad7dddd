package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/agent-portal/internal/logger"
	"github.com/MKhiriev/agent-portal/internal/service"
	"github.com/MKhiriev/agent-portal/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeWithTraceID(t *testing.T, header string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	h := NewHandler(&service.Services{}, testDefaultTarget, logger.Nop())

	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(traceIDHeader, header)
	}

	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)

	require.NotNil(t, captured, "next handler was not called")
	return rec, captured
}

func TestWithTraceID_ReusesRequestHeader(t *testing.T) {
	rec, req := executeWithTraceID(t, "agent-trace-1")

	assert.Equal(t, "agent-trace-1", rec.Header().Get(traceIDHeader))

	traceID, ok := utils.GetTraceIDFromContext(req.Context())
	assert.True(t, ok)
	assert.Equal(t, "agent-trace-1", traceID)
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	rec, req := executeWithTraceID(t, "")

	header := rec.Header().Get(traceIDHeader)
	_, err := uuid.Parse(header)
	assert.NoError(t, err, "generated trace id %q is not a UUID", header)

	traceID, ok := utils.GetTraceIDFromContext(req.Context())
	assert.True(t, ok)
	assert.Equal(t, header, traceID)
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	first, _ := executeWithTraceID(t, "")
	second, _ := executeWithTraceID(t, "")

	assert.NotEqual(t, first.Header().Get(traceIDHeader), second.Header().Get(traceIDHeader))
}
