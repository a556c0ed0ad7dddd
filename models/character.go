package models

// Character is a catalog character as kept in the local store.
// ID is the catalog's own identifier and is unique within the store.
type Character struct {
	// ID is the catalog identifier of the character.
	ID int64 `json:"id"`

	// Name is the primary character name as reported by the catalog.
	Name string `json:"name"`

	// Description is the catalog blurb. It is frequently empty.
	Description string `json:"description"`

	// PictureURL is the thumbnail location composed from the catalog's
	// thumbnail path and file extension.
	PictureURL string `json:"picture_url"`
}

// TableName returns the name of the database table
// associated with the Character model.
func (c Character) TableName() string {
	return "characters"
}
