package service

import (
	"context"

	"github.com/MKhiriev/agent-portal/internal/adapter"
	"github.com/MKhiriev/agent-portal/models"
)

type clientCharacterService struct {
	portal adapter.PortalAdapter
}

func NewClientCharacterService(portal adapter.PortalAdapter) ClientCharacterService {
	return &clientCharacterService{portal: portal}
}

func (c *clientCharacterService) Retrieve(ctx context.Context, name string) (models.SyncReport, error) {
	report, err := c.portal.Synchronize(ctx, name)
	if err != nil {
		return models.SyncReport{}, mapAdapterError(err)
	}

	return report, nil
}

func (c *clientCharacterService) List(ctx context.Context) ([]models.Character, error) {
	characters, err := c.portal.ListCharacters(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return characters, nil
}

func (c *clientCharacterService) Purge(ctx context.Context) error {
	return mapAdapterError(c.portal.Purge(ctx))
}

func (c *clientCharacterService) PortalVersion(ctx context.Context) (models.VersionResponse, error) {
	version, err := c.portal.Version(ctx)
	if err != nil {
		return models.VersionResponse{}, mapAdapterError(err)
	}

	return version, nil
}
