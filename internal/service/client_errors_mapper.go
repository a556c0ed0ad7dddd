// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/agent-portal/internal/adapter"
	"github.com/MKhiriev/agent-portal/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgEmptyTargetName {
			return ErrEmptyTargetName
		}

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgCharacterNotFound {
			return ErrCharacterNotFound
		}

	case errors.Is(err, adapter.ErrBadGateway):
		if msg == app.MsgCatalogBadResponse {
			return ErrCatalogBadResponse
		}

	case errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %s", ErrPortalUnavailable, msg)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
