package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/agent-portal/internal/app"
	"github.com/MKhiriev/agent-portal/internal/service"
	"github.com/MKhiriev/agent-portal/internal/store"
	"github.com/MKhiriev/agent-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListCharacters_ReturnsJSON(t *testing.T) {
	th := newTestHandler(t)
	characters := []models.Character{
		{ID: 1, Name: "Spectrum", PictureURL: "http://img/1.jpg"},
		{ID: 2, Name: "X", PictureURL: "http://img/2.jpg"},
	}
	th.characters.EXPECT().ListAllCharacters(gomock.Any()).Return(characters, nil)

	rec := th.serve(http.MethodGet, "/api/characters", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp models.CharactersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Length)
	assert.Equal(t, characters, resp.Characters)
}

func TestListCharacters_EmptyStoreIsEmptyArray(t *testing.T) {
	th := newTestHandler(t)
	th.characters.EXPECT().ListAllCharacters(gomock.Any()).Return([]models.Character{}, nil)

	rec := th.serve(http.MethodGet, "/api/characters", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"characters":[],"length":0}`, rec.Body.String())
}

func TestPurgeCharacters(t *testing.T) {
	th := newTestHandler(t)
	th.characters.EXPECT().PurgeAll(gomock.Any()).Return(nil)

	rec := th.serve(http.MethodDelete, "/api/characters", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestPurgeCharacters_Failure(t *testing.T) {
	th := newTestHandler(t)
	th.characters.EXPECT().PurgeAll(gomock.Any()).Return(store.ErrBeginningTransaction)

	rec := th.serve(http.MethodDelete, "/api/characters", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// POST /api/sync
// ─────────────────────────────────────────────

func TestSynchronize_Targets(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantTarget string
	}{
		{name: "no body", body: "", wantTarget: testDefaultTarget},
		{name: "empty object", body: `{}`, wantTarget: testDefaultTarget},
		{name: "empty name", body: `{"name":""}`, wantTarget: testDefaultTarget},
		{name: "named", body: `{"name":"Monica Rambeau"}`, wantTarget: "Monica Rambeau"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			report := models.SyncReport{
				Target:         models.Character{ID: 1, Name: tt.wantTarget},
				WorksTotal:     3,
				WorksSkipped:   1,
				WorksFetched:   2,
				AssociatesSeen: 4,
			}
			th.characters.EXPECT().Synchronize(gomock.Any(), tt.wantTarget).Return(report, nil)

			rec := th.serve(http.MethodPost, "/api/sync", tt.body)
			require.Equal(t, http.StatusOK, rec.Code)

			var got models.SyncReport
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, report, got)
		})
	}
}

func TestSynchronize_InvalidJSON(t *testing.T) {
	th := newTestHandler(t)

	rec := th.serve(http.MethodPost, "/api/sync", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgInvalidDataProvided)
}

func TestSynchronize_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"not found", service.ErrCharacterNotFound, http.StatusNotFound, app.MsgCharacterNotFound},
		{"bad gateway", service.ErrCatalogBadResponse, http.StatusBadGateway, app.MsgCatalogBadResponse},
		{"empty target", service.ErrEmptyTargetName, http.StatusBadRequest, app.MsgEmptyTargetName},
		{"storage", store.ErrCommitingTransaction, http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			th.characters.EXPECT().Synchronize(gomock.Any(), "X").Return(models.SyncReport{}, tt.err)

			rec := th.serve(http.MethodPost, "/api/sync", `{"name":"X"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody+"\n", rec.Body.String())
		})
	}
}
