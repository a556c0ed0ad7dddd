package models

// SyncRequest is the body of POST /api/sync. An empty Name selects the
// configured default target.
type SyncRequest struct {
	Name string `json:"name"`
}

// SyncReport summarises a finished synchronization run.
type SyncReport struct {
	// Target is the character the run was anchored on.
	Target Character `json:"target"`

	// WorksTotal is the number of work references listed on the target.
	WorksTotal int `json:"works_total"`

	// WorksSkipped counts references rejected as malformed.
	WorksSkipped int `json:"works_skipped"`

	// WorksFetched counts references whose character list was requested.
	WorksFetched int `json:"works_fetched"`

	// AssociatesSeen is the number of associate records collected before
	// deduplication.
	AssociatesSeen int `json:"associates_seen"`
}

// CharactersResponse is the body of GET /api/characters.
type CharactersResponse struct {
	Characters []Character `json:"characters"`
	Length     int         `json:"length"`
}

// VersionResponse is the body of GET /api/version/.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewVersionResponse renders build metadata for the API.
func NewVersionResponse(info AppBuildInfo) VersionResponse {
	return VersionResponse{
		Version: info.BuildVersion(),
		Date:    info.BuildDate(),
		Commit:  info.BuildCommit(),
	}
}
