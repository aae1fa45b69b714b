package data_access

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"what-to-watch-backend/models"
)

const posterBaseURL = "https://image.tmdb.org/t/p/w500"

// TMDBClient fetches discover pages and watch providers used to seed the
// catalog collections.
type TMDBClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewTMDBClient(apiKey, baseURL string) *TMDBClient {
	return &TMDBClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type tmdbDiscoverResponse struct {
	Results []tmdbItem `json:"results"`
}

type tmdbItem struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	VoteCount    int     `json:"vote_count"`
	VoteAverage  float64 `json:"vote_average"`
}

type tmdbProvidersResponse struct {
	Results map[string]struct {
		Flatrate []tmdbProvider `json:"flatrate"`
		Rent     []tmdbProvider `json:"rent"`
	} `json:"results"`
}

type tmdbProvider struct {
	ProviderName string `json:"provider_name"`
	LogoPath     string `json:"logo_path"`
}

func (c *TMDBClient) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("error making request to TMDB API: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("TMDB API returned status %d for %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding TMDB response: %v", err)
	}
	return nil
}

func (c *TMDBClient) discover(ctx context.Context, kind string, page int) ([]tmdbItem, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("TMDB API key not found")
	}

	url := fmt.Sprintf("%s/discover/%s?include_adult=false&language=en-US&sort_by=popularity.desc&with_original_language=en&page=%d&api_key=%s",
		c.baseURL, kind, page, c.apiKey)

	var discoverResp tmdbDiscoverResponse
	if err := c.getJSON(ctx, url, &discoverResp); err != nil {
		return nil, err
	}
	return discoverResp.Results, nil
}

// providers returns the US watch providers for one title. Movies include
// both flatrate and rent offerings, TV only flatrate, matching the data the
// frontend expects.
func (c *TMDBClient) providers(ctx context.Context, kind string, id int, includeRent bool) ([]models.Provider, error) {
	url := fmt.Sprintf("%s/%s/%d/watch/providers?api_key=%s", c.baseURL, kind, id, c.apiKey)

	var providersResp tmdbProvidersResponse
	if err := c.getJSON(ctx, url, &providersResp); err != nil {
		return nil, err
	}

	us := providersResp.Results["US"]
	raw := us.Flatrate
	if includeRent {
		raw = append(raw, us.Rent...)
	}

	providers := make([]models.Provider, 0, len(raw))
	for _, p := range raw {
		providers = append(providers, models.Provider{
			Name:     p.ProviderName,
			LogoPath: posterBaseURL + p.LogoPath,
		})
	}
	return providers, nil
}

func (c *TMDBClient) fetchPage(ctx context.Context, kind string, page int, includeRent bool) ([]models.CatalogItem, error) {
	results, err := c.discover(ctx, kind, page)
	if err != nil {
		return nil, err
	}

	items := make([]models.CatalogItem, 0, len(results))
	for _, r := range results {
		providers, err := c.providers(ctx, kind, r.ID, includeRent)
		if err != nil {
			// A title without provider data is still worth listing.
			providers = []models.Provider{}
		}

		item := models.CatalogItem{
			ID:           r.ID,
			Title:        r.Title,
			Name:         r.Name,
			Overview:     r.Overview,
			ReleaseDate:  r.ReleaseDate,
			FirstAirDate: r.FirstAirDate,
			VoteCount:    r.VoteCount,
			VoteAverage:  r.VoteAverage,
			Providers:    providers,
		}
		if r.PosterPath != "" {
			item.PosterPath = posterBaseURL + r.PosterPath
		}
		items = append(items, item)
	}
	return items, nil
}

func (c *TMDBClient) DiscoverMovies(ctx context.Context, page int) ([]models.CatalogItem, error) {
	return c.fetchPage(ctx, "movie", page, true)
}

func (c *TMDBClient) DiscoverSeries(ctx context.Context, page int) ([]models.CatalogItem, error) {
	return c.fetchPage(ctx, "tv", page, false)
}
