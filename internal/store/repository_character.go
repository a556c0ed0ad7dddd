package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/agent-portal/internal/logger"
	"github.com/MKhiriev/agent-portal/models"
)

// characterRepository is the database/sql implementation of
// [CharacterRepository]. Statements are built with the squirrel builder
// carried by the embedded [*DB], so the same code serves SQLite and
// PostgreSQL.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields.
type characterRepository struct {
	*DB
	logger *logger.Logger
}

// NewCharacterRepository constructs a [CharacterRepository] backed by the
// provided database connection and logger.
func NewCharacterRepository(db *DB, logger *logger.Logger) CharacterRepository {
	return &characterRepository{
		DB:     db,
		logger: logger,
	}
}

// Begin implements [CharacterRepository].
func (r *characterRepository) Begin(ctx context.Context) (CharacterTx, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "characterRepository.Begin").
			Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	return &characterTx{tx: tx, db: r.DB}, nil
}

// GetAllCharacters implements [CharacterRepository].
func (r *characterRepository) GetAllCharacters(ctx context.Context) ([]models.Character, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllCharactersQuery(r.builder, r.dialect)
	if err != nil {
		log.Err(err).
			Str("func", "characterRepository.GetAllCharacters").
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "characterRepository.GetAllCharacters").
			Msg("failed to execute query for getting all characters")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Character, 0, 50)

	for rows.Next() {
		var c models.Character

		if scanErr := rows.Scan(&c.ID, &c.Name, &c.Description, &c.PictureURL); scanErr != nil {
			log.Err(scanErr).
				Str("func", "characterRepository.GetAllCharacters").
				Msg("failed to scan character row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, c)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "characterRepository.GetAllCharacters").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// DeleteAllCharacters implements [CharacterRepository].
func (r *characterRepository) DeleteAllCharacters(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAllCharactersQuery(r.builder)
	if err != nil {
		log.Err(err).
			Str("func", "characterRepository.DeleteAllCharacters").
			Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "characterRepository.DeleteAllCharacters").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "characterRepository.DeleteAllCharacters").
			Msg("failed to delete characters")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "characterRepository.DeleteAllCharacters").
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	if affected, affErr := result.RowsAffected(); affErr == nil {
		log.Debug().
			Str("func", "characterRepository.DeleteAllCharacters").
			Int64("rows_affected", affected).
			Msg("characters purged")
	}

	return nil
}

// characterTx is the database/sql implementation of [CharacterTx].
type characterTx struct {
	tx   *sql.Tx
	db   *DB
	done bool
}

// InsertCharacter implements [CharacterTx]. The insert runs inside a
// savepoint; on a duplicate id the savepoint is rolled back so the
// surrounding transaction stays usable on every dialect.
func (t *characterTx) InsertCharacter(ctx context.Context, c models.Character) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCharacterQuery(t.db.builder, c)
	if err != nil {
		log.Err(err).
			Str("func", "characterTx.InsertCharacter").
			Int64("character_id", c.ID).
			Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = t.tx.ExecContext(ctx, createSavepoint); err != nil {
		log.Err(err).
			Str("func", "characterTx.InsertCharacter").
			Msg("failed to create savepoint")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err = t.tx.ExecContext(ctx, query, args...); err != nil {
		class := t.db.errorClassificator.Classify(err)

		if _, rbErr := t.tx.ExecContext(ctx, rollbackToSavepoint); rbErr != nil {
			log.Err(rbErr).
				Str("func", "characterTx.InsertCharacter").
				Msg("failed to roll back to savepoint")
			return fmt.Errorf("%w: %w", ErrRollingBackTransaction, errors.Join(err, rbErr))
		}

		if class == Duplicate {
			return fmt.Errorf("%w: id %d", ErrCharacterAlreadyExists, c.ID)
		}

		log.Err(err).
			Str("func", "characterTx.InsertCharacter").
			Int64("character_id", c.ID).
			Stringer("classification", class).
			Msg("failed to insert character")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err = t.tx.ExecContext(ctx, releaseSavepoint); err != nil {
		log.Err(err).
			Str("func", "characterTx.InsertCharacter").
			Msg("failed to release savepoint")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// InsertCharacterOrIgnore implements [CharacterTx].
func (t *characterTx) InsertCharacterOrIgnore(ctx context.Context, c models.Character) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCharacterOrIgnoreQuery(t.db.builder, t.db.dialect, c)
	if err != nil {
		log.Err(err).
			Str("func", "characterTx.InsertCharacterOrIgnore").
			Int64("character_id", c.ID).
			Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = t.tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "characterTx.InsertCharacterOrIgnore").
			Int64("character_id", c.ID).
			Stringer("classification", t.db.errorClassificator.Classify(err)).
			Msg("failed to insert character")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Commit implements [CharacterTx].
func (t *characterTx) Commit() error {
	t.done = true
	if err := t.tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// Rollback implements [CharacterTx].
func (t *characterTx) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true

	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("%w: %w", ErrRollingBackTransaction, err)
	}

	return nil
}
