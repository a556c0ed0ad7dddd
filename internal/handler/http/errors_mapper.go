package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/agent-portal/internal/app"
	"github.com/MKhiriev/agent-portal/internal/logger"
	"github.com/MKhiriev/agent-portal/internal/service"
	"github.com/MKhiriev/agent-portal/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidSyncRequest: http.StatusBadRequest,

	service.ErrEmptyTargetName:    http.StatusBadRequest,
	service.ErrCharacterNotFound:  http.StatusNotFound,
	service.ErrCatalogBadResponse: http.StatusBadGateway,

	store.ErrBuildingSQLQuery:       http.StatusInternalServerError,
	store.ErrExecutingQuery:         http.StatusInternalServerError,
	store.ErrBeginningTransaction:   http.StatusInternalServerError,
	store.ErrCommitingTransaction:   http.StatusInternalServerError,
	store.ErrRollingBackTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:     http.StatusInternalServerError,
	store.ErrScanningRow:            http.StatusInternalServerError,
	store.ErrScanningRows:           http.StatusInternalServerError,
}

// errorMessageMap holds the response bodies the portal console recognises.
var errorMessageMap = map[error]string{
	ErrInvalidSyncRequest: app.MsgInvalidDataProvided,

	service.ErrEmptyTargetName:    app.MsgEmptyTargetName,
	service.ErrCharacterNotFound:  app.MsgCharacterNotFound,
	service.ErrCatalogBadResponse: app.MsgCatalogBadResponse,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

// writeError logs err and answers with its mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Err(err)
	if status < http.StatusInternalServerError {
		event = log.Warn().Err(err)
	}
	event.Str("func", funcName).Int("status", status).Msg("request failed")

	http.Error(w, messageFromError(err), status)
}
