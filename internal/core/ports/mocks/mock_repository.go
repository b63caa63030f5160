package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"mediaseed/internal/core/domain"
)

// MockMediaRepository is an in-memory implementation of the MediaRepository
// port for testing. Errors can be injected per operation.
type MockMediaRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.MediaRecord // keyed by ID

	// Injected failures. When set, the corresponding operation fails.
	FindErr   error
	CreateErr error
	UpdateErr error

	// Call counters.
	FindCalls   int
	CreateCalls int
	UpdateCalls int
}

// NewMockMediaRepository creates an empty mock repository.
func NewMockMediaRepository() *MockMediaRepository {
	return &MockMediaRepository{
		records: make(map[string]*domain.MediaRecord),
	}
}

// FindByFilename returns the record with the given filename.
func (m *MockMediaRepository) FindByFilename(ctx context.Context, filename string) (*domain.MediaRecord, error) {
	m.mu.Lock()
	m.FindCalls++
	m.mu.Unlock()

	if m.FindErr != nil {
		return nil, m.FindErr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, rec := range m.records {
		if rec.Filename == filename {
			copied := *rec
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create inserts a record, assigning a fresh ID.
func (m *MockMediaRepository) Create(ctx context.Context, record domain.MediaRecord) (*domain.MediaRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++

	if m.CreateErr != nil {
		return nil, m.CreateErr
	}

	record.ID = uuid.NewString()
	m.records[record.ID] = &record
	copied := record
	return &copied, nil
}

// Update replaces the record with the given ID.
func (m *MockMediaRepository) Update(ctx context.Context, id string, record domain.MediaRecord) (*domain.MediaRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls++

	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}

	if _, ok := m.records[id]; !ok {
		return nil, fmt.Errorf("update %s: %w", id, domain.ErrNotFound)
	}
	record.ID = id
	m.records[id] = &record
	copied := record
	return &copied, nil
}

// Count returns the number of stored records.
func (m *MockMediaRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Get returns the stored record by ID, or nil.
func (m *MockMediaRepository) Get(id string) *domain.MediaRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if rec, ok := m.records[id]; ok {
		copied := *rec
		return &copied
	}
	return nil
}
