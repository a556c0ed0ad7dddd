package tui

import (
	"github.com/MKhiriev/agent-portal/models"
)

type charactersLoadedMsg struct {
	characters []models.Character
	err        error
}

type retrieveDoneMsg struct {
	report models.SyncReport
	err    error
}

type purgeDoneMsg struct {
	err error
}

type copiedMsg struct {
	url string
	err error
}

type versionLoadedMsg struct {
	version models.VersionResponse
	err     error
}
