package service

import (
	"github.com/MKhiriev/agent-portal/internal/adapter"
	"github.com/MKhiriev/agent-portal/internal/logger"
	"github.com/MKhiriev/agent-portal/internal/store"
	"github.com/MKhiriev/agent-portal/models"
)

type Services struct {
	CharacterService CharacterService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, catalog adapter.CatalogAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	characterService := NewCharacterValidationService().
		Wrap(NewCharacterService(catalog, storages.CharacterRepository, logger))

	return &Services{
		CharacterService: characterService,
		AppInfoService:   NewAppInfoService(buildInfo, logger),
	}
}
