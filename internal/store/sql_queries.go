package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/agent-portal/migrations"
	"github.com/MKhiriev/agent-portal/models"
)

const (
	charactersTable = "characters"

	savepointInsertCharacter = "insert_character"

	createSavepoint     = "SAVEPOINT " + savepointInsertCharacter
	releaseSavepoint    = "RELEASE SAVEPOINT " + savepointInsertCharacter
	rollbackToSavepoint = "ROLLBACK TO SAVEPOINT " + savepointInsertCharacter
)

var characterColumns = []string{"id", "name", "description", "picture_url"}

func buildInsertCharacterQuery(b sq.StatementBuilderType, c models.Character) (string, []any, error) {
	return b.Insert(charactersTable).
		Columns(characterColumns...).
		Values(c.ID, c.Name, c.Description, c.PictureURL).
		ToSql()
}

// buildInsertCharacterOrIgnoreQuery spells "skip on duplicate id" in the
// connection's dialect.
func buildInsertCharacterOrIgnoreQuery(b sq.StatementBuilderType, dialect string, c models.Character) (string, []any, error) {
	insert := b.Insert(charactersTable).
		Columns(characterColumns...).
		Values(c.ID, c.Name, c.Description, c.PictureURL)

	if dialect == migrations.DialectPostgres {
		insert = insert.Suffix("ON CONFLICT (id) DO NOTHING")
	} else {
		insert = insert.Options("OR IGNORE")
	}

	return insert.ToSql()
}

// buildGetAllCharactersQuery orders by name byte-wise on every backend.
// PostgreSQL would otherwise sort by the database collation.
func buildGetAllCharactersQuery(b sq.StatementBuilderType, dialect string) (string, []any, error) {
	byName := "name ASC"
	if dialect == migrations.DialectPostgres {
		byName = `name COLLATE "C" ASC`
	}

	return b.Select(characterColumns...).
		From(charactersTable).
		OrderBy(byName, "id ASC").
		ToSql()
}

func buildDeleteAllCharactersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Delete(charactersTable).ToSql()
}
