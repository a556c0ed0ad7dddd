package service

import "errors"

var (
	// ErrEmptyTargetName is returned when a synchronization run is requested
	// without a character name.
	ErrEmptyTargetName = errors.New("empty target name")

	// ErrCharacterNotFound is returned when the catalog answered successfully
	// but knows no character with the requested name.
	ErrCharacterNotFound = errors.New("character not found in catalog")

	// ErrCatalogBadResponse is returned when the catalog rejected the by-name
	// lookup (bad credentials, rate limit, malformed request).
	ErrCatalogBadResponse = errors.New("catalog answered with non-success status")

	// ErrPortalUnavailable is returned by the console services when the
	// portal failed for a reason the console cannot act on.
	ErrPortalUnavailable = errors.New("portal failed to process request")
)
