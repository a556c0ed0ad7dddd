package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/agent-portal/models"
)

// memoryCharacterRepository keeps characters in a map guarded by a mutex.
// Transactions stage their writes and apply them on Commit, so readers never
// observe a half-finished run.
type memoryCharacterRepository struct {
	mu    sync.RWMutex
	items map[int64]models.Character
}

// NewMemoryCharacterRepository returns an empty in-process
// [CharacterRepository].
func NewMemoryCharacterRepository() CharacterRepository {
	return &memoryCharacterRepository{
		items: make(map[int64]models.Character),
	}
}

func (m *memoryCharacterRepository) Begin(ctx context.Context) (CharacterTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	return &memoryCharacterTx{
		repo:   m,
		staged: make(map[int64]models.Character),
	}, nil
}

func (m *memoryCharacterRepository) GetAllCharacters(ctx context.Context) ([]models.Character, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]models.Character, 0, len(m.items))
	for _, c := range m.items {
		result = append(result, c)
	}

	slices.SortFunc(result, func(a, b models.Character) int {
		if n := strings.Compare(a.Name, b.Name); n != 0 {
			return n
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})

	return result, nil
}

func (m *memoryCharacterRepository) DeleteAllCharacters(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.items)
	return nil
}

type memoryCharacterTx struct {
	repo   *memoryCharacterRepository
	staged map[int64]models.Character
	order  []int64
	done   bool
}

func (t *memoryCharacterTx) exists(id int64) bool {
	if _, ok := t.staged[id]; ok {
		return true
	}

	t.repo.mu.RLock()
	defer t.repo.mu.RUnlock()
	_, ok := t.repo.items[id]
	return ok
}

func (t *memoryCharacterTx) stage(c models.Character) {
	t.staged[c.ID] = c
	t.order = append(t.order, c.ID)
}

func (t *memoryCharacterTx) InsertCharacter(ctx context.Context, c models.Character) error {
	if t.done {
		return sql.ErrTxDone
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if t.exists(c.ID) {
		return fmt.Errorf("%w: id %d", ErrCharacterAlreadyExists, c.ID)
	}

	t.stage(c)
	return nil
}

func (t *memoryCharacterTx) InsertCharacterOrIgnore(ctx context.Context, c models.Character) error {
	if t.done {
		return sql.ErrTxDone
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if t.exists(c.ID) {
		return nil
	}

	t.stage(c)
	return nil
}

// Commit applies staged rows in insertion order. A row that another
// transaction committed in the meantime wins over the staged one.
func (t *memoryCharacterTx) Commit() error {
	if t.done {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, sql.ErrTxDone)
	}
	t.done = true

	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()

	for _, id := range t.order {
		if _, ok := t.repo.items[id]; ok {
			continue
		}
		t.repo.items[id] = t.staged[id]
	}

	return nil
}

func (t *memoryCharacterTx) Rollback() error {
	t.done = true
	t.staged = nil
	t.order = nil
	return nil
}
