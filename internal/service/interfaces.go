package service

import (
	"context"

	"github.com/MKhiriev/agent-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CharacterService owns the character synchronization workflow and the
// read/purge operations on the stored set.
type CharacterService interface {
	// Synchronize looks up targetName in the catalog, walks every work the
	// target appears in, collects the co-appearing characters and stores
	// the target plus all associates in one transaction.
	Synchronize(ctx context.Context, targetName string) (models.SyncReport, error)

	// ListAllCharacters returns the stored characters ordered by name.
	ListAllCharacters(ctx context.Context) ([]models.Character, error)

	// PurgeAll deletes every stored character.
	PurgeAll(ctx context.Context) error
}

// CharacterServiceWrapper defines middleware composition for CharacterService.
// Implementations wrap an existing CharacterService to add behavior such as
// validating.
type CharacterServiceWrapper interface {
	Wrap(CharacterService) CharacterService // returns a decorated CharacterService applying additional behavior
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// ClientCharacterService is the console's view of the portal. Transport
// errors are translated into the sentinel errors of this package.
type ClientCharacterService interface {
	// Retrieve triggers a synchronization run on the portal. An empty name
	// selects the portal's default target.
	Retrieve(ctx context.Context, name string) (models.SyncReport, error)

	// List returns every stored character ordered by name.
	List(ctx context.Context) ([]models.Character, error)

	// Purge deletes every stored character.
	Purge(ctx context.Context) error

	// PortalVersion returns the portal build metadata.
	PortalVersion(ctx context.Context) (models.VersionResponse, error)
}
