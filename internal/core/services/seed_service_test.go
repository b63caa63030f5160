package services

import (
	"context"
	"errors"
	"testing"

	"mediaseed/internal/core/domain"
	"mediaseed/internal/core/ports/mocks"
)

const testBase = "https://testref.supabase.co/storage/v1/object/public/media"

func TestSeedService_FolderAssetReachablePrimary(t *testing.T) {
	repo := mocks.NewMockMediaRepository()
	prober := mocks.NewMockProber()
	prober.MarkReachable(testBase + "/gallery/latte-art.png")

	svc := NewSeedService(repo, prober, nil)
	resp, err := svc.Execute(context.Background(), SeedRequest{
		BaseURL: testBase,
		Catalog: []domain.AssetDescriptor{
			{Filename: "latte-art.png", Alt: "Latte art", Folder: "gallery"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, ok := resp.IDs["latte-art.png"]
	if !ok {
		t.Fatal("expected result map entry for latte-art.png")
	}

	rec := repo.Get(id)
	if rec == nil {
		t.Fatal("expected record to be persisted")
	}
	if want := testBase + "/gallery/latte-art.png"; rec.URL != want {
		t.Errorf("URL = %q, want %q", rec.URL, want)
	}

	// The fallback (bare filename) must not have been probed.
	if n := prober.ProbeCount(testBase + "/latte-art.png"); n != 0 {
		t.Errorf("fallback was probed %d times, want 0", n)
	}
}

func TestSeedService_FallbackToBareFilename(t *testing.T) {
	repo := mocks.NewMockMediaRepository()
	prober := mocks.NewMockProber()
	// Primary (folder-qualified) unreachable, bare filename reachable.
	prober.MarkReachable(testBase + "/beans-closeup.jpg")

	svc := NewSeedService(repo, prober, nil)
	resp, err := svc.Execute(context.Background(), SeedRequest{
		BaseURL: testBase,
		Catalog: []domain.AssetDescriptor{
			{Filename: "beans-closeup.jpg", Alt: "Beans", Folder: "gallery"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, ok := resp.IDs["beans-closeup.jpg"]
	if !ok {
		t.Fatal("expected result map entry after fallback success")
	}
	rec := repo.Get(id)
	if want := testBase + "/beans-closeup.jpg"; rec.URL != want {
		t.Errorf("URL = %q, want %q", rec.URL, want)
	}
}

func TestSeedService_BothProbesFailSkipsAsset(t *testing.T) {
	repo := mocks.NewMockMediaRepository()
	prober := mocks.NewMockProber()
	// Second asset reachable; the first is not, anywhere.
	prober.MarkReachable(testBase + "/logo.png")

	svc := NewSeedService(repo, prober, nil)
	resp, err := svc.Execute(context.Background(), SeedRequest{
		BaseURL: testBase,
		Catalog: []domain.AssetDescriptor{
			{Filename: "missing.jpg", Alt: "Missing", Folder: "gallery"},
			{Filename: "logo.png", Alt: "Logo"},
		},
	})
	if err != nil {
		t.Fatalf("run must not fail on unreachable assets: %v", err)
	}

	if _, ok := resp.IDs["missing.jpg"]; ok {
		t.Error("unreachable asset must be absent from the result map")
	}
	if _, ok := resp.IDs["logo.png"]; !ok {
		t.Error("subsequent asset must still be processed")
	}
	if repo.Count() != 1 {
		t.Errorf("expected 1 persisted record, got %d", repo.Count())
	}

	if resp.Outcomes[0].Status != domain.OutcomeUnreachable {
		t.Errorf("outcome = %v, want %v", resp.Outcomes[0].Status, domain.OutcomeUnreachable)
	}
}

func TestSeedService_NetworkErrorTriggersFallback(t *testing.T) {
	repo := mocks.NewMockMediaRepository()
	prober := mocks.NewMockProber()
	primary := testBase + "/gallery/latte-art.png"
	prober.FailWith(primary, errors.New("connection reset"))
	prober.MarkReachable(testBase + "/latte-art.png")

	svc := NewSeedService(repo, prober, nil)
	resp, err := svc.Execute(context.Background(), SeedRequest{
		BaseURL: testBase,
		Catalog: []domain.AssetDescriptor{
			{Filename: "latte-art.png", Alt: "Latte art", Folder: "gallery"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := resp.IDs["latte-art.png"]; !ok {
		t.Error("expected fallback to recover from a network error on primary")
	}
}

func TestSeedService_NoFolderProbesOnce(t *testing.T) {
	repo := mocks.NewMockMediaRepository()
	prober := mocks.NewMockProber()

	svc := NewSeedService(repo, prober, nil)
	_, err := svc.Execute(context.Background(), SeedRequest{
		BaseURL: testBase,
		Catalog: []domain.AssetDescriptor{{Filename: "logo.png", Alt: "Logo"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Primary and fallback are the same URL; it must not be probed twice.
	if n := prober.ProbeCount(testBase + "/logo.png"); n != 1 {
		t.Errorf("bare asset probed %d times, want 1", n)
	}
}

func TestSeedService_Idempotence(t *testing.T) {
	repo := mocks.NewMockMediaRepository()
	prober := mocks.NewMockProber()
	prober.MarkReachable(testBase + "/logo.png")

	svc := NewSeedService(repo, prober, nil)
	req := SeedRequest{
		BaseURL: testBase,
		Catalog: []domain.AssetDescriptor{{Filename: "logo.png", Alt: "Logo"}},
	}

	first, err := svc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := svc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if repo.Count() != 1 {
		t.Fatalf("second run must update, not duplicate: %d records", repo.Count())
	}
	if first.IDs["logo.png"] != second.IDs["logo.png"] {
		t.Errorf("expected stable record ID across runs: %q vs %q",
			first.IDs["logo.png"], second.IDs["logo.png"])
	}
	if second.Outcomes[0].Status != domain.OutcomeUpdated {
		t.Errorf("second run outcome = %v, want %v",
			second.Outcomes[0].Status, domain.OutcomeUpdated)
	}
}

func TestSeedService_UpdatePreservesCreatedAt(t *testing.T) {
	repo := mocks.NewMockMediaRepository()
	prober := mocks.NewMockProber()
	prober.MarkReachable(testBase + "/logo.png")

	svc := NewSeedService(repo, prober, nil)
	req := SeedRequest{
		BaseURL: testBase,
		Catalog: []domain.AssetDescriptor{{Filename: "logo.png", Alt: "Logo"}},
	}

	first, _ := svc.Execute(context.Background(), req)
	created := repo.Get(first.IDs["logo.png"]).CreatedAt

	svc.Execute(context.Background(), req)
	rec := repo.Get(first.IDs["logo.png"])

	if !rec.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt changed on update: %v -> %v", created, rec.CreatedAt)
	}
	if !rec.UpdatedAt.After(created) && !rec.UpdatedAt.Equal(created) {
		t.Errorf("UpdatedAt not advanced: %v", rec.UpdatedAt)
	}
}

func TestSeedService_PersistenceErrorSkipsAsset(t *testing.T) {
	repo := mocks.NewMockMediaRepository()
	repo.CreateErr = errors.New("collection locked")
	prober := mocks.NewMockProber()
	prober.MarkReachable(testBase+"/logo.png", testBase+"/hero-banner.jpg")

	svc := NewSeedService(repo, prober, nil)
	resp, err := svc.Execute(context.Background(), SeedRequest{
		BaseURL: testBase,
		Catalog: []domain.AssetDescriptor{
			{Filename: "logo.png", Alt: "Logo"},
			{Filename: "hero-banner.jpg", Alt: "Hero"},
		},
	})
	if err != nil {
		t.Fatalf("persistence errors must not abort the run: %v", err)
	}
	if len(resp.IDs) != 0 {
		t.Errorf("expected empty result map, got %v", resp.IDs)
	}
	for _, o := range resp.Outcomes {
		if o.Status != domain.OutcomePersistenceError {
			t.Errorf("%s: outcome = %v, want persistence-error", o.Filename, o.Status)
		}
	}
}

func TestSeedService_ResultMapSubsetOfCatalog(t *testing.T) {
	repo := mocks.NewMockMediaRepository()
	prober := mocks.NewMockProber()
	catalog := domain.DefaultCatalog()

	// Mark roughly half the catalog reachable.
	for i, asset := range catalog {
		if i%2 == 0 {
			prober.MarkReachable(testBase + "/" + asset.ObjectPath())
		}
	}

	svc := NewSeedService(repo, prober, nil)
	resp, err := svc.Execute(context.Background(), SeedRequest{BaseURL: testBase, Catalog: catalog})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.IDs) > len(catalog) {
		t.Errorf("result map larger than catalog: %d > %d", len(resp.IDs), len(catalog))
	}
	inCatalog := make(map[string]bool)
	for _, a := range catalog {
		inCatalog[a.Filename] = true
	}
	for filename := range resp.IDs {
		if !inCatalog[filename] {
			t.Errorf("result map key %q is not a catalog filename", filename)
		}
	}
}

func TestSeedService_MimeTypesPersisted(t *testing.T) {
	repo := mocks.NewMockMediaRepository()
	prober := mocks.NewMockProber()
	prober.MarkReachable(testBase+"/logo.png", testBase+"/hero-banner.jpg")

	svc := NewSeedService(repo, prober, nil)
	resp, err := svc.Execute(context.Background(), SeedRequest{
		BaseURL: testBase,
		Catalog: []domain.AssetDescriptor{
			{Filename: "logo.png", Alt: "Logo"},
			{Filename: "hero-banner.jpg", Alt: "Hero"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec := repo.Get(resp.IDs["logo.png"]); rec.MimeType != "image/png" {
		t.Errorf("logo.png MimeType = %q, want image/png", rec.MimeType)
	}
	if rec := repo.Get(resp.IDs["hero-banner.jpg"]); rec.MimeType != "image/jpeg" {
		t.Errorf("hero-banner.jpg MimeType = %q, want image/jpeg", rec.MimeType)
	}
}

func TestSeedService_ThumbnailDescriptor(t *testing.T) {
	repo := mocks.NewMockMediaRepository()
	prober := mocks.NewMockProber()
	url := testBase + "/logo.png"
	prober.MarkReachable(url)

	svc := NewSeedService(repo, prober, nil)
	resp, err := svc.Execute(context.Background(), SeedRequest{
		BaseURL: testBase,
		Catalog: []domain.AssetDescriptor{{Filename: "logo.png", Alt: "Logo"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := repo.Get(resp.IDs["logo.png"])
	thumb := rec.Sizes.Thumbnail
	if thumb.Width != 400 || thumb.Height != 300 {
		t.Errorf("thumbnail dimensions = %dx%d, want 400x300", thumb.Width, thumb.Height)
	}
	if thumb.Filename != "thumb_logo.png" {
		t.Errorf("thumbnail filename = %q, want thumb_logo.png", thumb.Filename)
	}
	if thumb.Filesize != 50000 {
		t.Errorf("thumbnail filesize = %d, want 50000", thumb.Filesize)
	}
	if thumb.URL != url || rec.ThumbnailURL != url {
		t.Errorf("thumbnail URLs must equal the final URL %q", url)
	}
	if rec.Filesize != 100000 || rec.Width != 800 || rec.Height != 600 {
		t.Errorf("record placeholders = %d/%dx%d, want 100000/800x600",
			rec.Filesize, rec.Width, rec.Height)
	}
}
