package services_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"what-to-watch-backend/models"
	"what-to-watch-backend/services"
)

type fakeSeedStore struct {
	counts   map[models.MediaType]int64
	inserted map[models.MediaType][]models.CatalogItem
}

func newFakeSeedStore() *fakeSeedStore {
	return &fakeSeedStore{
		counts:   make(map[models.MediaType]int64),
		inserted: make(map[models.MediaType][]models.CatalogItem),
	}
}

func (f *fakeSeedStore) Count(ctx context.Context, media models.MediaType) (int64, error) {
	return f.counts[media], nil
}

func (f *fakeSeedStore) Insert(ctx context.Context, media models.MediaType, items []models.CatalogItem) error {
	f.inserted[media] = append(f.inserted[media], items...)
	return nil
}

type fakeCatalogSource struct {
	movies map[int][]models.CatalogItem
	series map[int][]models.CatalogItem
}

func (f *fakeCatalogSource) DiscoverMovies(ctx context.Context, page int) ([]models.CatalogItem, error) {
	return f.movies[page], nil
}

func (f *fakeCatalogSource) DiscoverSeries(ctx context.Context, page int) ([]models.CatalogItem, error) {
	return f.series[page], nil
}

func writeSeedFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
}

func TestSeedFromFiles(t *testing.T) {
	dir := t.TempDir()
	writeSeedFile(t, dir, "movies.json", `[{"id":1,"title":"Seeded Movie"}]`)
	writeSeedFile(t, dir, "series.json", `[{"id":2,"name":"Seeded Show"},{"id":3,"name":"Another Show"}]`)

	store := newFakeSeedStore()
	svc := services.NewSeedService(store, nil, dir, 0)

	if err := svc.EnsureCatalog(context.Background()); err != nil {
		t.Fatalf("EnsureCatalog returned error: %v", err)
	}

	if len(store.inserted[models.MediaTypeMovie]) != 1 {
		t.Fatalf("expected 1 seeded movie, got %d", len(store.inserted[models.MediaTypeMovie]))
	}
	if len(store.inserted[models.MediaTypeSeries]) != 2 {
		t.Fatalf("expected 2 seeded series, got %d", len(store.inserted[models.MediaTypeSeries]))
	}
}

func TestSeedSkipsPopulatedCollections(t *testing.T) {
	dir := t.TempDir()
	writeSeedFile(t, dir, "movies.json", `[{"id":1,"title":"Seeded Movie"}]`)

	store := newFakeSeedStore()
	store.counts[models.MediaTypeMovie] = 120

	svc := services.NewSeedService(store, nil, dir, 0)
	if err := svc.EnsureCatalog(context.Background()); err != nil {
		t.Fatalf("EnsureCatalog returned error: %v", err)
	}

	if len(store.inserted[models.MediaTypeMovie]) != 0 {
		t.Fatal("populated collection must not be reseeded")
	}
}

func TestSeedFallsBackToSource(t *testing.T) {
	store := newFakeSeedStore()
	source := &fakeCatalogSource{
		movies: map[int][]models.CatalogItem{
			1: {{ID: 10}, {ID: 11}},
			2: {{ID: 12}},
		},
		series: map[int][]models.CatalogItem{
			1: {{ID: 20}},
		},
	}

	svc := services.NewSeedService(store, source, t.TempDir(), 3)
	if err := svc.EnsureCatalog(context.Background()); err != nil {
		t.Fatalf("EnsureCatalog returned error: %v", err)
	}

	if len(store.inserted[models.MediaTypeMovie]) != 3 {
		t.Fatalf("expected 3 movies from source, got %d", len(store.inserted[models.MediaTypeMovie]))
	}
	if len(store.inserted[models.MediaTypeSeries]) != 1 {
		t.Fatalf("expected 1 series from source, got %d", len(store.inserted[models.MediaTypeSeries]))
	}
}

func TestSeedWithoutAnySourceLeavesCatalogEmpty(t *testing.T) {
	store := newFakeSeedStore()
	svc := services.NewSeedService(store, nil, t.TempDir(), 0)

	if err := svc.EnsureCatalog(context.Background()); err != nil {
		t.Fatalf("EnsureCatalog returned error: %v", err)
	}
	if len(store.inserted[models.MediaTypeMovie]) != 0 || len(store.inserted[models.MediaTypeSeries]) != 0 {
		t.Fatal("expected nothing inserted without seed data")
	}
}
