package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidWorkURI     = errors.New("invalid work resource URI")
	ErrEmptyCharacterName = errors.New("character name is required")
	ErrInvalidCharacterID = errors.New("invalid character ID")
)
