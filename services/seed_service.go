package services

import (
	"context"
	"log"
	"path/filepath"

	"what-to-watch-backend/helper"
	"what-to-watch-backend/models"
)

// SeedStore is the write side of the catalog, used only at startup.
type SeedStore interface {
	Count(ctx context.Context, media models.MediaType) (int64, error)
	Insert(ctx context.Context, media models.MediaType, items []models.CatalogItem) error
}

// CatalogSource produces catalog pages from an external API.
type CatalogSource interface {
	DiscoverMovies(ctx context.Context, page int) ([]models.CatalogItem, error)
	DiscoverSeries(ctx context.Context, page int) ([]models.CatalogItem, error)
}

// SeedService loads the catalog once at process start. A collection that
// already has documents is left alone; otherwise it is filled from a JSON
// seed file when one exists, falling back to the TMDB discover API when a
// client is configured.
type SeedService struct {
	store    SeedStore
	source   CatalogSource
	seedDir  string
	maxPages int
}

func NewSeedService(store SeedStore, source CatalogSource, seedDir string, maxPages int) *SeedService {
	return &SeedService{
		store:    store,
		source:   source,
		seedDir:  seedDir,
		maxPages: maxPages,
	}
}

var seedFiles = map[models.MediaType]string{
	models.MediaTypeMovie:  "movies.json",
	models.MediaTypeSeries: "series.json",
}

func (s *SeedService) EnsureCatalog(ctx context.Context) error {
	for _, media := range []models.MediaType{models.MediaTypeMovie, models.MediaTypeSeries} {
		if err := s.ensure(ctx, media); err != nil {
			return err
		}
	}
	return nil
}

func (s *SeedService) ensure(ctx context.Context, media models.MediaType) error {
	count, err := s.store.Count(ctx, media)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items, err := helper.LoadCatalogSeed(filepath.Join(s.seedDir, seedFiles[media]))
	if err != nil {
		return err
	}

	if len(items) == 0 && s.source != nil {
		items, err = s.fetch(ctx, media)
		if err != nil {
			return err
		}
	}

	if len(items) == 0 {
		log.Printf("no seed data for %s catalog, collection stays empty", media)
		return nil
	}

	if err := s.store.Insert(ctx, media, items); err != nil {
		return err
	}
	log.Printf("seeded %s catalog with %d items", media, len(items))
	return nil
}

func (s *SeedService) fetch(ctx context.Context, media models.MediaType) ([]models.CatalogItem, error) {
	var items []models.CatalogItem
	for page := 1; page <= s.maxPages; page++ {
		var batch []models.CatalogItem
		var err error
		if media == models.MediaTypeMovie {
			batch, err = s.source.DiscoverMovies(ctx, page)
		} else {
			batch, err = s.source.DiscoverSeries(ctx, page)
		}
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}
		items = append(items, batch...)
	}
	return items, nil
}
