// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/agent-portal/internal/service"
)

// ErrNoServices is returned by New when the console has no portal service.
var ErrNoServices = errors.New("console needs a portal character service")

// humanizeError turns console service errors into one-line messages.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrCharacterNotFound):
		return "The catalog does not know this character"
	case errors.Is(err, service.ErrCatalogBadResponse):
		return "The catalog rejected the request (check the portal credentials)"
	case errors.Is(err, service.ErrEmptyTargetName):
		return "A character name is required"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Portal is unreachable"
	}

	return err.Error()
}
