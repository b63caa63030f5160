package ports

import (
	"context"

	"mediaseed/internal/core/domain"
)

// MediaRepository defines the port for media collection persistence.
// It is the typed rendering of the CMS find/create/update contract.
type MediaRepository interface {
	// FindByFilename returns the record keyed by filename, or
	// domain.ErrNotFound when no record exists.
	FindByFilename(ctx context.Context, filename string) (*domain.MediaRecord, error)

	// Create inserts a new record and returns it with its assigned ID.
	Create(ctx context.Context, record domain.MediaRecord) (*domain.MediaRecord, error)

	// Update replaces the record with the given ID and returns the result.
	Update(ctx context.Context, id string, record domain.MediaRecord) (*domain.MediaRecord, error)
}

// Prober defines the port for storage reachability checks.
type Prober interface {
	// Reachable issues a HEAD request and reports whether the URL answered
	// with an ok status. A network failure is returned as an error.
	Reachable(ctx context.Context, url string) (bool, error)
}
