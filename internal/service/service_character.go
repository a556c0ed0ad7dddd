// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/agent-portal/internal/adapter"
	"github.com/MKhiriev/agent-portal/internal/logger"
	"github.com/MKhiriev/agent-portal/internal/store"
	"github.com/MKhiriev/agent-portal/internal/validators"
	"github.com/MKhiriev/agent-portal/models"
)

// characterService is the concrete implementation of CharacterService.
//
// A run is strictly sequential: one by-name lookup, then one catalog call per
// valid work reference in listing order, then a single storage transaction.
// Nothing is written unless every catalog call has completed.
type characterService struct {
	catalog    adapter.CatalogAdapter
	repository store.CharacterRepository
	validator  validators.Validator

	logger *logger.Logger
}

func NewCharacterService(catalog adapter.CatalogAdapter, repository store.CharacterRepository, logger *logger.Logger) CharacterService {
	return &characterService{
		catalog:    catalog,
		repository: repository,
		validator:  validators.NewCatalogValidator(),
		logger:     logger,
	}
}

func (s *characterService) Synchronize(ctx context.Context, targetName string) (models.SyncReport, error) {
	log := logger.FromContext(ctx)

	lookup, err := s.catalog.FindCharacterByName(ctx, targetName)
	if err != nil {
		log.Err(err).
			Str("func", "characterService.Synchronize").
			Str("target", targetName).
			Msg("catalog lookup failed")
		return models.SyncReport{}, fmt.Errorf("find character %q: %w", targetName, err)
	}

	switch lookup.Status {
	case models.LookupNotFound:
		return models.SyncReport{}, fmt.Errorf("%w: %q", ErrCharacterNotFound, targetName)
	case models.LookupBadStatus:
		return models.SyncReport{}, fmt.Errorf("%w: code %d", ErrCatalogBadResponse, lookup.Code)
	}

	target := lookup.Character
	report := models.SyncReport{
		Target:     target.ToCharacter(),
		WorksTotal: len(target.Comics.Items),
	}

	associates := make([]models.CatalogCharacter, 0)
	for i, ref := range target.Comics.Items {
		if err = ctx.Err(); err != nil {
			return models.SyncReport{}, err
		}

		if err = s.validator.Validate(ctx, ref); err != nil {
			log.Warn().Err(err).
				Str("func", "characterService.Synchronize").
				Int("index", i).
				Str("resource_uri", ref.ResourceURI).
				Msg("skipping malformed work reference")
			report.WorksSkipped++
			continue
		}

		characters, workErr := s.catalog.GetWorkCharacters(ctx, ref.ResourceURI)
		if workErr != nil {
			log.Err(workErr).
				Str("func", "characterService.Synchronize").
				Str("resource_uri", ref.ResourceURI).
				Msg("catalog work lookup failed")
			return models.SyncReport{}, fmt.Errorf("get characters of work %q: %w", ref.ResourceURI, workErr)
		}

		report.WorksFetched++
		associates = append(associates, characters...)
	}
	report.AssociatesSeen = len(associates)

	if err = s.persist(ctx, report.Target, associates); err != nil {
		return models.SyncReport{}, err
	}

	log.Info().
		Str("func", "characterService.Synchronize").
		Str("target", report.Target.Name).
		Int("works_total", report.WorksTotal).
		Int("works_skipped", report.WorksSkipped).
		Int("associates_seen", report.AssociatesSeen).
		Msg("synchronization finished")

	return report, nil
}

// persist writes the target and its associates in one transaction. A target
// left by an earlier run is kept as it is.
func (s *characterService) persist(ctx context.Context, target models.Character, associates []models.CatalogCharacter) error {
	log := logger.FromContext(ctx)

	tx, err := s.repository.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin synchronization transaction: %w", err)
	}
	defer tx.Rollback()

	if err = tx.InsertCharacter(ctx, target); err != nil {
		if !errors.Is(err, store.ErrCharacterAlreadyExists) {
			return fmt.Errorf("store target %d: %w", target.ID, err)
		}
		log.Info().
			Str("func", "characterService.persist").
			Int64("character_id", target.ID).
			Msg("target already stored, keeping existing row")
	}

	for _, associate := range associates {
		if err = s.validator.Validate(ctx, associate.ToCharacter(), validators.FieldID); err != nil {
			log.Warn().Err(err).
				Str("func", "characterService.persist").
				Str("name", associate.Name).
				Msg("skipping associate without catalog id")
			continue
		}
		if err = tx.InsertCharacterOrIgnore(ctx, associate.ToCharacter()); err != nil {
			return fmt.Errorf("store associate %d: %w", associate.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit synchronization: %w", err)
	}

	return nil
}

func (s *characterService) ListAllCharacters(ctx context.Context) ([]models.Character, error) {
	return s.repository.GetAllCharacters(ctx)
}

func (s *characterService) PurgeAll(ctx context.Context) error {
	return s.repository.DeleteAllCharacters(ctx)
}
