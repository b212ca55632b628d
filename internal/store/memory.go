package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/pautaops/pauta/internal/catalog"
	"github.com/pautaops/pauta/internal/record"
)

// Memory implements Store in process memory. It backs tests and
// database-less runs, and deliberately pushes every record through the same
// storage codec as the Postgres path so echo semantics match: what comes
// back is always the normalized application record, not the caller's input.
type Memory struct {
	mu   sync.Mutex
	cat  *catalog.Catalog
	rows []record.Row // oldest first; GetAll reverses
}

// NewMemory creates an empty in-memory store for one record variant.
func NewMemory(cat *catalog.Catalog) *Memory {
	return &Memory{cat: cat}
}

func (m *Memory) GetAll(_ context.Context) ([]record.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]record.Record, 0, len(m.rows))
	for i := len(m.rows) - 1; i >= 0; i-- {
		out = append(out, record.FromStorage(m.cat, m.rows[i]))
	}
	return out, nil
}

func (m *Memory) GetByID(_ context.Context, id string) (record.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id)
	if i < 0 {
		return nil, fmt.Errorf("%s %q: %w", m.cat.Variant, id, ErrNotFound)
	}
	return record.FromStorage(m.cat, m.rows[i]), nil
}

func (m *Memory) Create(_ context.Context, rec record.Record) (record.Record, error) {
	row := record.ToStorage(m.cat, rec)
	id := record.FromStorage(m.cat, row).String(m.cat.IDKey)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.index(id) >= 0 {
		return nil, fmt.Errorf("create %s: duplicate key %q", m.cat.Variant, id)
	}
	m.rows = append(m.rows, row)
	return record.FromStorage(m.cat, row), nil
}

func (m *Memory) Update(_ context.Context, id string, partial record.Record) (record.Record, error) {
	patch := record.ToStorage(m.cat, partial)

	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id)
	if i < 0 {
		return nil, fmt.Errorf("%s %q: %w", m.cat.Variant, id, ErrNotFound)
	}
	for col, v := range patch {
		m.rows[i][col] = v
	}
	return record.FromStorage(m.cat, m.rows[i]), nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id)
	if i < 0 {
		return fmt.Errorf("%s %q: %w", m.cat.Variant, id, ErrNotFound)
	}
	m.rows = append(m.rows[:i], m.rows[i+1:]...)
	return nil
}

func (m *Memory) ImportMany(ctx context.Context, recs []record.Record) ([]record.Record, error) {
	out := make([]record.Record, 0, len(recs))
	for _, rec := range recs {
		created, err := m.Create(ctx, rec)
		if err != nil {
			return nil, err
		}
		out = append(out, created)
	}
	return out, nil
}

// index returns the position of the row with the given identity key, or -1.
// Callers hold the lock.
func (m *Memory) index(id string) int {
	idCol := m.cat.IDColumn()
	for i, row := range m.rows {
		if s, ok := row[idCol].(string); ok && s == id {
			return i
		}
	}
	return -1
}
