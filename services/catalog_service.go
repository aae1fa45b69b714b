package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"what-to-watch-backend/models"
)

// DefaultPageSize is applied when pageSize is missing, unparseable, or not
// on the allow-list.
const DefaultPageSize = 50

// allowedPageSizes mirrors the page-size selector the frontend renders.
// Both listing endpoints share this one policy.
var allowedPageSizes = map[int]bool{50: true, 100: true, 250: true, 500: true}

// CatalogStore is the read side of the catalog collections.
type CatalogStore interface {
	Count(ctx context.Context, media models.MediaType) (int64, error)
	Page(ctx context.Context, media models.MediaType, skip, limit int64) ([]models.CatalogItem, error)
	RandomMovie(ctx context.Context) (*models.CatalogItem, error)
}

type CatalogService struct {
	store  CatalogStore
	counts *cache.Cache
}

func NewCatalogService(store CatalogStore) *CatalogService {
	return &CatalogService{
		store:  store,
		counts: cache.New(30*time.Second, time.Minute),
	}
}

// PageWindow normalizes untrusted page/pageSize inputs against the current
// document total. Bad input is silently corrected, never an error:
//   - page defaults to 1 when not a positive integer, and clamps to the last
//     page when it runs past the end
//   - pageSize coerces to DefaultPageSize unless on the allow-list
//   - an empty collection yields totalPages 0 with validPage pinned at 1
func PageWindow(pageParam, sizeParam string, total int64) (validPage, pageSize, totalPages int, skip int64) {
	pageSize = DefaultPageSize
	if n, err := strconv.Atoi(strings.TrimSpace(sizeParam)); err == nil && allowedPageSizes[n] {
		pageSize = n
	}

	page := 1
	if n, err := strconv.Atoi(strings.TrimSpace(pageParam)); err == nil && n > 0 {
		page = n
	}

	totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))

	validPage = 1
	if totalPages > 0 {
		if page > totalPages {
			page = totalPages
		}
		validPage = page
	}

	skip = int64(validPage-1) * int64(pageSize)
	return validPage, pageSize, totalPages, skip
}

// GetPage returns one page of the catalog as a pagination envelope. Requests
// past the end return the last page; an empty collection returns an empty
// items list, not an error.
func (s *CatalogService) GetPage(ctx context.Context, media models.MediaType, pageParam, sizeParam string) (*models.PageEnvelope, error) {
	total, err := s.count(ctx, media)
	if err != nil {
		return nil, err
	}

	page, pageSize, totalPages, skip := PageWindow(pageParam, sizeParam, total)

	items, err := s.store.Page(ctx, media, skip, int64(pageSize))
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.CatalogItem{}
	}

	return &models.PageEnvelope{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		Items:      items,
	}, nil
}

func (s *CatalogService) RandomMovie(ctx context.Context) (*models.CatalogItem, error) {
	return s.store.RandomMovie(ctx)
}

// count caches document totals briefly so a page flip does not cost a
// countDocuments every time. A stale total only shifts the clamp by at most
// the documents inserted in the window, and the catalog is seed-only.
func (s *CatalogService) count(ctx context.Context, media models.MediaType) (int64, error) {
	key := fmt.Sprintf("count:%s", media)
	if cached, ok := s.counts.Get(key); ok {
		return cached.(int64), nil
	}

	total, err := s.store.Count(ctx, media)
	if err != nil {
		return 0, err
	}
	s.counts.Set(key, total, cache.DefaultExpiration)
	return total, nil
}
