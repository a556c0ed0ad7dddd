package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/agent-portal/models"
	"github.com/go-playground/validator/v10"
)

const (
	FieldResourceURI = "resource_uri"
	FieldName        = "name"
	FieldID          = "id"
)

// workURITag accepts only absolute http(s) URLs with a host.
const workURITag = "required,http_url"

type CatalogValidator struct {
	validate *validator.Validate
}

func NewCatalogValidator() Validator {
	return &CatalogValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (v *CatalogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.WorkReference:
		return v.validateWorkReference(ctx, value, fields...)
	case *models.WorkReference:
		return v.validateWorkReference(ctx, *value, fields...)

	case models.SyncRequest:
		return v.validateSyncRequest(ctx, value, fields...)
	case *models.SyncRequest:
		return v.validateSyncRequest(ctx, *value, fields...)

	case models.Character:
		return v.validateCharacter(ctx, value, fields...)
	case *models.Character:
		return v.validateCharacter(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CatalogValidator) validateWorkReference(ctx context.Context, ref models.WorkReference, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldResourceURI}
	}

	for _, f := range fields {
		switch f {
		case FieldResourceURI:
			if err := v.validate.VarCtx(ctx, ref.ResourceURI, workURITag); err != nil {
				return fmt.Errorf("%w %q: %w", ErrInvalidWorkURI, ref.ResourceURI, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CatalogValidator) validateSyncRequest(_ context.Context, request models.SyncRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(request.Name) == "" {
				return ErrEmptyCharacterName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CatalogValidator) validateCharacter(_ context.Context, character models.Character, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if character.ID <= 0 {
				return ErrInvalidCharacterID
			}
		case FieldName:
			if strings.TrimSpace(character.Name) == "" {
				return ErrEmptyCharacterName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
