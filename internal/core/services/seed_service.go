package services

import (
	"context"
	"errors"
	"time"

	"mediaseed/internal/core/domain"
	"mediaseed/internal/core/ports"
)

// Placeholder metadata written to every seeded record. The real dimensions
// and sizes are filled in later by the CMS when the files are re-uploaded
// through it.
const (
	placeholderFilesize      = 100000
	placeholderWidth         = 800
	placeholderHeight        = 600
	placeholderThumbFilesize = 50000
	placeholderThumbWidth    = 400
	placeholderThumbHeight   = 300
)

// SeedService upserts one media record per catalog asset, pointing it at the
// already-uploaded storage object.
type SeedService struct {
	repo     ports.MediaRepository
	prober   ports.Prober
	reporter Reporter
}

// NewSeedService creates a new seed service.
func NewSeedService(repo ports.MediaRepository, prober ports.Prober, reporter Reporter) *SeedService {
	return &SeedService{
		repo:     repo,
		prober:   prober,
		reporter: orNop(reporter),
	}
}

// SeedRequest carries the resolved base URL and the catalog to process.
type SeedRequest struct {
	BaseURL string
	Catalog []domain.AssetDescriptor
}

// SeedResponse summarizes a run. IDs maps filename to record ID for every
// asset that was verified reachable and upserted; skipped assets are absent.
type SeedResponse struct {
	IDs      map[string]string
	Outcomes []domain.AssetOutcome
	Total    int
}

// Succeeded returns the number of assets that ended with a persisted record.
func (r *SeedResponse) Succeeded() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Succeeded() {
			n++
		}
	}
	return n
}

// Execute runs the seeding pipeline. One asset's failure never aborts the
// rest: unreachable or rejected assets are skipped and the loop continues.
func (s *SeedService) Execute(ctx context.Context, req SeedRequest) (*SeedResponse, error) {
	resp := &SeedResponse{
		IDs:   make(map[string]string, len(req.Catalog)),
		Total: len(req.Catalog),
	}

	for _, asset := range req.Catalog {
		outcome := s.processAsset(ctx, req.BaseURL, asset)
		resp.Outcomes = append(resp.Outcomes, outcome)
		if outcome.Succeeded() {
			resp.IDs[asset.Filename] = outcome.RecordID
		}
	}

	if succeeded := resp.Succeeded(); succeeded == resp.Total {
		s.reporter.Successf("Seeded %d/%d media records", succeeded, resp.Total)
	} else {
		s.reporter.Warnf("Seeded %d/%d media records (%d skipped)",
			succeeded, resp.Total, resp.Total-succeeded)
	}

	return resp, nil
}

func (s *SeedService) processAsset(ctx context.Context, baseURL string, asset domain.AssetDescriptor) domain.AssetOutcome {
	finalURL, ok := s.probeWithFallback(ctx, baseURL, asset)
	if !ok {
		return domain.AssetOutcome{
			Filename: asset.Filename,
			Status:   domain.OutcomeUnreachable,
			Err:      errors.New("primary and fallback probes failed"),
		}
	}

	record, status, err := s.upsert(ctx, asset, finalURL)
	if err != nil {
		s.reporter.Errorf("Failed to persist %s: %v", asset.Filename, err)
		return domain.AssetOutcome{
			Filename: asset.Filename,
			Status:   domain.OutcomePersistenceError,
			URL:      finalURL,
			Err:      err,
		}
	}

	s.reporter.Infof("%s %s -> %s", status, asset.Filename, finalURL)
	return domain.AssetOutcome{
		Filename: asset.Filename,
		Status:   status,
		RecordID: record.ID,
		URL:      finalURL,
	}
}

// probeWithFallback HEAD-checks the folder-qualified URL first, then the
// bare filename at the bucket root. When the asset has no folder the two
// candidates are identical and only one probe is issued.
func (s *SeedService) probeWithFallback(ctx context.Context, baseURL string, asset domain.AssetDescriptor) (string, bool) {
	primary := baseURL + "/" + asset.ObjectPath()
	if reachable, err := s.prober.Reachable(ctx, primary); err == nil && reachable {
		return primary, true
	} else if err != nil {
		s.reporter.Warnf("Probe failed for %s: %v", primary, err)
	} else {
		s.reporter.Warnf("Not reachable: %s", primary)
	}

	fallback := baseURL + "/" + asset.Filename
	if fallback == primary {
		return "", false
	}
	if reachable, err := s.prober.Reachable(ctx, fallback); err == nil && reachable {
		return fallback, true
	} else if err != nil {
		s.reporter.Warnf("Fallback probe failed for %s: %v", fallback, err)
	} else {
		s.reporter.Warnf("Not reachable: %s", fallback)
	}

	return "", false
}

// upsert ensures exactly one record exists for the asset's filename.
func (s *SeedService) upsert(ctx context.Context, asset domain.AssetDescriptor, finalURL string) (*domain.MediaRecord, domain.OutcomeStatus, error) {
	mimeType := domain.MimeTypeFor(asset.Filename)
	thumbnail := domain.ThumbnailSize{
		Width:    placeholderThumbWidth,
		Height:   placeholderThumbHeight,
		MimeType: mimeType,
		Filesize: placeholderThumbFilesize,
		Filename: "thumb_" + asset.Filename,
		URL:      finalURL,
	}

	existing, err := s.repo.FindByFilename(ctx, asset.Filename)
	switch {
	case err == nil:
		updated := *existing
		updated.URL = finalURL
		updated.ThumbnailURL = finalURL
		updated.Sizes.Thumbnail = thumbnail
		updated.UpdatedAt = time.Now()

		record, err := s.repo.Update(ctx, existing.ID, updated)
		if err != nil {
			return nil, domain.OutcomePersistenceError, err
		}
		return record, domain.OutcomeUpdated, nil

	case errors.Is(err, domain.ErrNotFound):
		now := time.Now()
		record, err := s.repo.Create(ctx, domain.MediaRecord{
			Filename:     asset.Filename,
			Alt:          asset.Alt,
			MimeType:     mimeType,
			Filesize:     placeholderFilesize,
			Width:        placeholderWidth,
			Height:       placeholderHeight,
			URL:          finalURL,
			ThumbnailURL: finalURL,
			Sizes:        domain.MediaSizes{Thumbnail: thumbnail},
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return nil, domain.OutcomePersistenceError, err
		}
		return record, domain.OutcomeCreated, nil

	default:
		return nil, domain.OutcomePersistenceError, err
	}
}
