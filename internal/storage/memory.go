package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is an in-process record store for tests and demos.
// Query returns records in insertion order, like the SQL repository.
type MemoryRepository struct {
	mu      sync.RWMutex
	order   []uuid.UUID
	records map[uuid.UUID]Record
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository(records ...Record) *MemoryRepository {
	m := &MemoryRepository{records: make(map[uuid.UUID]Record)}
	for i := range records {
		_ = m.Upsert(context.Background(), &records[i])
	}
	return m
}

// Query returns records matching the filter.
func (m *MemoryRepository) Query(ctx context.Context, f Filter) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Record
	for _, id := range m.order {
		if rec := m.records[id]; f.Matches(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// GetByID retrieves a record by ID.
func (m *MemoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

// Upsert inserts a record or overwrites the one with the same ID.
func (m *MemoryRepository) Upsert(ctx context.Context, rec *Record) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[rec.ID]; !exists {
		m.order = append(m.order, rec.ID)
	}
	m.records[rec.ID] = *rec
	return nil
}

// UpdateImagePath sets the image path of one record.
func (m *MemoryRepository) UpdateImagePath(ctx context.Context, id uuid.UUID, imagePath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[id]
	if !ok {
		return ErrNotFound
	}
	rec.ImagePath = imagePath
	rec.UpdatedAt = time.Now().UTC()
	m.records[id] = rec
	return nil
}

// ListPage returns up to limit records with IDs greater than after, ordered by ID.
func (m *MemoryRepository) ListPage(ctx context.Context, after uuid.UUID, limit int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	cursor := after.String()
	var page []Record
	for _, rec := range m.records {
		if rec.ID.String() > cursor {
			page = append(page, rec)
		}
	}
	sort.Slice(page, func(i, j int) bool {
		return page[i].ID.String() < page[j].ID.String()
	})
	if len(page) > limit {
		page = page[:limit]
	}
	return page, nil
}

// Count returns the number of stored records.
func (m *MemoryRepository) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records), nil
}
