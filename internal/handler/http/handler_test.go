package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/agent-portal/internal/logger"
	"github.com/MKhiriev/agent-portal/internal/mock"
	"github.com/MKhiriev/agent-portal/internal/service"
	"github.com/MKhiriev/agent-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testDefaultTarget = "Spectrum"

// testHandler bundles a Handler with the mocks behind its services.
type testHandler struct {
	*Handler
	characters *mock.MockCharacterService
	appInfo    *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) testHandler {
	t.Helper()

	ctrl := gomock.NewController(t)
	characters := mock.NewMockCharacterService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)

	services := &service.Services{
		CharacterService: characters,
		AppInfoService:   appInfo,
	}

	return testHandler{
		Handler:    NewHandler(services, testDefaultTarget, logger.Nop()),
		characters: characters,
		appInfo:    appInfo,
	}
}

// serve runs a request through the full router.
func (th testHandler) serve(method, target string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	rec := httptest.NewRecorder()
	th.Init().ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, "Spectrum", log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, "Spectrum", h.defaultTarget)
	assert.NotNil(t, h.traceIDs)
}

func TestHandler_TargetOrDefault(t *testing.T) {
	h := NewHandler(&service.Services{}, "Spectrum", logger.Nop())

	assert.Equal(t, "Spectrum", h.targetOrDefault(""))
	assert.Equal(t, "Monica Rambeau", h.targetOrDefault("Monica Rambeau"))
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_RegistersAllRoutes(t *testing.T) {
	th := newTestHandler(t)
	th.characters.EXPECT().Synchronize(gomock.Any(), gomock.Any()).Return(models.SyncReport{}, nil).AnyTimes()
	th.characters.EXPECT().PurgeAll(gomock.Any()).Return(nil).AnyTimes()
	th.characters.EXPECT().ListAllCharacters(gomock.Any()).Return([]models.Character{}, nil).AnyTimes()
	th.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("", "", "")).AnyTimes()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodGet, "/retrieve"},
		{http.MethodGet, "/self-destruct"},
		{http.MethodGet, "/exfiltrate"},
		{http.MethodGet, "/api/characters"},
		{http.MethodDelete, "/api/characters"},
		{http.MethodPost, "/api/sync"},
		{http.MethodGet, "/api/version/"},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := th.serve(tc.method, tc.path, "")

			assert.Less(t, rec.Code, http.StatusBadRequest, "route %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	rec := newTestHandler(t).serve(http.MethodGet, "/api/nonexistent", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	th := newTestHandler(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/version/"},
		{http.MethodPut, "/api/characters"},
		{http.MethodPost, "/retrieve"},
		{http.MethodGet, "/api/sync"},
	} {
		rec := th.serve(tc.method, tc.path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	th := newTestHandler(t)

	rec := th.serve(http.MethodGet, "/", "")

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_CompressesWhenAccepted(t *testing.T) {
	th := newTestHandler(t)
	th.characters.EXPECT().ListAllCharacters(gomock.Any()).Return([]models.Character{{ID: 1, Name: "Spectrum"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/characters", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	th.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}

func TestInit_RecoversFromPanic(t *testing.T) {
	th := newTestHandler(t)
	th.characters.EXPECT().ListAllCharacters(gomock.Any()).DoAndReturn(func(context.Context) ([]models.Character, error) {
		panic("boom")
	})

	rec := th.serve(http.MethodGet, "/exfiltrate", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
