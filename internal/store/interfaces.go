// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists characters.
//
// [CharacterRepository] is the entry point. Writes go through a
// [CharacterTx] so a synchronization run lands atomically: either every row
// of the run is visible after Commit or none is.
//
// Two backends are provided. The SQL backend runs on database/sql with
// SQLite or PostgreSQL drivers and squirrel-built statements; the memory
// backend keeps everything in-process and has identical semantics.
package store

import (
	"context"

	"github.com/MKhiriev/agent-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CharacterRepository provides access to the stored character set.
type CharacterRepository interface {
	// Begin opens a write transaction.
	Begin(ctx context.Context) (CharacterTx, error)

	// GetAllCharacters returns every stored character ordered by name
	// ascending. An empty store yields an empty, non-nil slice.
	GetAllCharacters(ctx context.Context) ([]models.Character, error)

	// DeleteAllCharacters removes every stored character and commits.
	// Deleting from an empty store is not an error.
	DeleteAllCharacters(ctx context.Context) error
}

// CharacterTx is a unit of work on the character set. Callers must end it
// with exactly one Commit or Rollback; Rollback after Commit is a no-op.
type CharacterTx interface {
	// InsertCharacter adds c. If a character with the same ID already exists
	// the existing row is kept, the transaction stays usable and
	// [ErrCharacterAlreadyExists] is returned.
	InsertCharacter(ctx context.Context, c models.Character) error

	// InsertCharacterOrIgnore adds c unless a character with the same ID
	// already exists, in which case it does nothing.
	InsertCharacterOrIgnore(ctx context.Context, c models.Character) error

	// Commit makes all writes of the transaction visible.
	Commit() error

	// Rollback discards all writes of the transaction.
	Rollback() error
}
