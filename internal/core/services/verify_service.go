package services

import (
	"context"

	"mediaseed/internal/core/domain"
	"mediaseed/internal/core/ports"
)

// VerifyService performs a read-only reachability audit of the catalog.
// No fallback probing, no persistence.
type VerifyService struct {
	prober   ports.Prober
	reporter Reporter
}

// NewVerifyService creates a new verify service.
func NewVerifyService(prober ports.Prober, reporter Reporter) *VerifyService {
	return &VerifyService{
		prober:   prober,
		reporter: orNop(reporter),
	}
}

// VerifyRequest carries the resolved base URL and the catalog to audit.
type VerifyRequest struct {
	BaseURL string
	Catalog []domain.AssetDescriptor
}

// ProbeResult records one asset's reachability.
type ProbeResult struct {
	Filename  string
	URL       string
	Reachable bool
	Err       error
}

// VerifyResponse summarizes the sweep.
type VerifyResponse struct {
	Results   []ProbeResult
	Reachable int
	Total     int
}

// Execute probes every asset's primary path. Per-asset errors are recorded
// and logged; the sweep always completes.
func (s *VerifyService) Execute(ctx context.Context, req VerifyRequest) *VerifyResponse {
	resp := &VerifyResponse{Total: len(req.Catalog)}

	for _, asset := range req.Catalog {
		url := req.BaseURL + "/" + asset.ObjectPath()
		result := ProbeResult{Filename: asset.Filename, URL: url}

		reachable, err := s.prober.Reachable(ctx, url)
		switch {
		case err != nil:
			result.Err = err
			s.reporter.Errorf("%s: probe error: %v", asset.Filename, err)
		case reachable:
			result.Reachable = true
			resp.Reachable++
			s.reporter.Successf("%s reachable", asset.Filename)
		default:
			s.reporter.Warnf("%s NOT reachable at %s", asset.Filename, url)
		}

		resp.Results = append(resp.Results, result)
	}

	s.reporter.Infof("Reachable: %d/%d", resp.Reachable, resp.Total)
	return resp
}
