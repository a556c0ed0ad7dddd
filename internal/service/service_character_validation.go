package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/agent-portal/internal/validators"
	"github.com/MKhiriev/agent-portal/models"
)

// CharacterValidationService rejects requests the catalog should never see.
type CharacterValidationService struct {
	inner     CharacterService
	validator validators.Validator
}

func NewCharacterValidationService() CharacterServiceWrapper {
	return &CharacterValidationService{
		validator: validators.NewCatalogValidator(),
	}
}

func (v *CharacterValidationService) Synchronize(ctx context.Context, targetName string) (models.SyncReport, error) {
	request := models.SyncRequest{Name: strings.TrimSpace(targetName)}
	if err := v.validator.Validate(ctx, request, validators.FieldName); err != nil {
		return models.SyncReport{}, fmt.Errorf("%w: %w", ErrEmptyTargetName, err)
	}

	return v.inner.Synchronize(ctx, request.Name)
}

func (v *CharacterValidationService) ListAllCharacters(ctx context.Context) ([]models.Character, error) {
	return v.inner.ListAllCharacters(ctx)
}

func (v *CharacterValidationService) PurgeAll(ctx context.Context) error {
	return v.inner.PurgeAll(ctx)
}

func (v *CharacterValidationService) Wrap(wrapper CharacterService) CharacterService {
	v.inner = wrapper
	return v
}
