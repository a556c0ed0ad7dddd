// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidSyncRequest is returned when the body of POST /api/sync is
	// present but is not a valid JSON sync request.
	ErrInvalidSyncRequest = errors.New("invalid sync request body")

	// ErrRenderingPage is returned when an HTML template fails to execute.
	ErrRenderingPage = errors.New("error rendering page")
)
