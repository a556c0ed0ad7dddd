package models

// LookupStatus is the outcome of a by-name catalog lookup.
type LookupStatus int

const (
	// LookupFound means the catalog answered with at least one record.
	LookupFound LookupStatus = iota
	// LookupNotFound means the catalog answered successfully with zero records.
	LookupNotFound
	// LookupBadStatus means the catalog answered with a non-success code.
	LookupBadStatus
)

// String returns a human-readable lookup status.
func (s LookupStatus) String() string {
	switch s {
	case LookupFound:
		return "found"
	case LookupNotFound:
		return "not found"
	case LookupBadStatus:
		return "bad status"
	default:
		return "unknown"
	}
}

// CharacterLookup is the result of a by-name lookup. Character is only
// meaningful when Status is LookupFound; Code is only meaningful when Status
// is LookupBadStatus. Raw keeps the response body for diagnosis.
type CharacterLookup struct {
	Status    LookupStatus
	Character CatalogCharacter
	Code      int
	Raw       string
}
