package service

import (
	"github.com/MKhiriev/agent-portal/internal/adapter"
)

type ClientServices struct {
	CharacterService ClientCharacterService
}

func NewClientServices(portalAdapter adapter.PortalAdapter) *ClientServices {
	return &ClientServices{
		CharacterService: NewClientCharacterService(portalAdapter),
	}
}
