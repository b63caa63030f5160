package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"mediaseed/internal/core/domain"
)

// FileMediaRepository persists the media collection as a JSON file on disk.
// It is the local stand-in for the CMS collection API: records are keyed by
// ID, found by filename, and assigned uuid identifiers on create.
type FileMediaRepository struct {
	path   string
	mu     sync.RWMutex
	cache  map[string]domain.MediaRecord // keyed by ID
	loaded bool
}

// NewFileMediaRepository creates a repository backed by storePath/media.json.
func NewFileMediaRepository(storePath string) *FileMediaRepository {
	return &FileMediaRepository{
		path:  filepath.Join(storePath, "media.json"),
		cache: make(map[string]domain.MediaRecord),
	}
}

// load reads the collection from disk. A missing file means an empty
// collection. Caller must hold the write lock.
func (r *FileMediaRepository) load() error {
	if r.loaded {
		return nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.loaded = true
			return nil
		}
		return fmt.Errorf("failed to read media collection: %w", err)
	}

	if err := json.Unmarshal(data, &r.cache); err != nil {
		return fmt.Errorf("failed to parse media collection: %w", err)
	}
	r.loaded = true
	return nil
}

// flush writes the collection to disk. Caller must hold at least a read lock.
func (r *FileMediaRepository) flush() error {
	data, err := json.MarshalIndent(r.cache, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	return os.WriteFile(r.path, data, 0644)
}

// FindByFilename returns the record with the given filename, or
// domain.ErrNotFound.
func (r *FileMediaRepository) FindByFilename(ctx context.Context, filename string) (*domain.MediaRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.load(); err != nil {
		return nil, err
	}

	for _, rec := range r.cache {
		if rec.Filename == filename {
			copied := rec
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create inserts the record with a freshly issued ID.
func (r *FileMediaRepository) Create(ctx context.Context, record domain.MediaRecord) (*domain.MediaRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.load(); err != nil {
		return nil, err
	}

	record.ID = uuid.NewString()
	r.cache[record.ID] = record
	if err := r.flush(); err != nil {
		delete(r.cache, record.ID)
		return nil, err
	}

	copied := record
	return &copied, nil
}

// Update replaces the record with the given ID.
func (r *FileMediaRepository) Update(ctx context.Context, id string, record domain.MediaRecord) (*domain.MediaRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.load(); err != nil {
		return nil, err
	}

	previous, ok := r.cache[id]
	if !ok {
		return nil, fmt.Errorf("update %s: %w", id, domain.ErrNotFound)
	}

	record.ID = id
	r.cache[id] = record
	if err := r.flush(); err != nil {
		r.cache[id] = previous
		return nil, err
	}

	copied := record
	return &copied, nil
}

// All returns every record in the collection. Used by diagnostics.
func (r *FileMediaRepository) All(ctx context.Context) ([]domain.MediaRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.load(); err != nil {
		return nil, err
	}

	records := make([]domain.MediaRecord, 0, len(r.cache))
	for _, rec := range r.cache {
		records = append(records, rec)
	}
	return records, nil
}
