// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for the two remote
// parties the application talks to.
//
// [CatalogAdapter] speaks to the remote comics catalog: it signs every request
// with the agent credentials and turns catalog envelopes into lookup results.
// [PortalAdapter] is used by the terminal console to drive the portal's own
// JSON API.
//
// Error values defined in errors.go are mapped from portal HTTP status codes
// by mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrBadGateway] for 502).
package adapter

import (
	"context"

	"github.com/MKhiriev/agent-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CatalogAdapter defines read-only access to the remote comics catalog.
// Every call carries fresh authentication parameters.
type CatalogAdapter interface {
	// FindCharacterByName looks up a character by exact name. Only the first
	// matching record is reported. A successful response with no records
	// yields [models.LookupNotFound]; a non-success code yields
	// [models.LookupBadStatus] with the code and raw body. A non-nil error is
	// returned only for transport failures.
	FindCharacterByName(ctx context.Context, name string) (models.CharacterLookup, error)

	// GetWorkCharacters lists every character that appears in the work
	// located by workURI, in catalog order. A non-success code or an
	// undecodable body yields an empty list and no error. A non-nil error is
	// returned only for transport failures.
	GetWorkCharacters(ctx context.Context, workURI string) ([]models.CatalogCharacter, error)
}

// PortalAdapter defines the console's view of the portal JSON API.
type PortalAdapter interface {
	// ListCharacters returns every stored character ordered by name.
	ListCharacters(ctx context.Context) ([]models.Character, error)

	// Synchronize triggers a synchronization run. An empty name selects the
	// portal's default target.
	Synchronize(ctx context.Context, name string) (models.SyncReport, error)

	// Purge deletes every stored character.
	Purge(ctx context.Context) error

	// Version returns the portal build metadata.
	Version(ctx context.Context) (models.VersionResponse, error)
}
