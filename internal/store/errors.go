package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCharacterAlreadyExists is returned by an unconditional insert when a
	// character with the same ID is already stored. The stored row is kept.
	ErrCharacterAlreadyExists = errors.New("character already exists")

	// ErrUnsupportedDSN is returned when no backend can serve the configured
	// DSN.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrRollingBackTransaction is returned when discarding an open
	// transaction fails.
	ErrRollingBackTransaction = errors.New("failed to roll back transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE, SAVEPOINT) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single character row fails.
	ErrScanningRow = errors.New("failed to scan character row")

	// ErrScanningRows is returned when row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan character rows")
)
