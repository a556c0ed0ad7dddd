// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// portal handlers and the console.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place lets the console recognise the portal's answers.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgEmptyTargetName is returned when a synchronization run is requested
	// without a character name and no default is configured.
	MsgEmptyTargetName = "target name is required"

	// MsgCharacterNotFound is returned when the catalog does not know the
	// requested character.
	MsgCharacterNotFound = "character not found in catalog"

	// MsgCatalogBadResponse is returned when the catalog rejected the lookup.
	MsgCatalogBadResponse = "catalog rejected the request"

	// MsgDataRetrieved is shown after a successful synchronization run.
	MsgDataRetrieved = "Data retrieved."

	// MsgDataPurged is shown after the store was emptied.
	MsgDataPurged = "Data purged from database."
)
