package models

import "time"

// MediaType distinguishes the two catalog namespaces. Movie and series ids
// come from separate TMDB sequences and can collide, so watchlist entries
// are keyed by (mediaType, id).
type MediaType string

const (
	MediaTypeMovie  MediaType = "movie"
	MediaTypeSeries MediaType = "series"
)

type Provider struct {
	Name     string `bson:"name" json:"name"`
	LogoPath string `bson:"logo_path" json:"logo_path"`
}

// CatalogItem is a movie or series document. The catalog is written only by
// the ingestion path; the API serves it read-only.
type CatalogItem struct {
	ID           int        `bson:"id" json:"id"`
	Title        string     `bson:"title,omitempty" json:"title,omitempty"`
	Name         string     `bson:"name,omitempty" json:"name,omitempty"`
	Overview     string     `bson:"overview,omitempty" json:"overview,omitempty"`
	PosterPath   string     `bson:"poster_path,omitempty" json:"poster_path,omitempty"`
	ReleaseDate  string     `bson:"release_date,omitempty" json:"release_date,omitempty"`
	FirstAirDate string     `bson:"first_air_date,omitempty" json:"first_air_date,omitempty"`
	VoteCount    int        `bson:"vote_count,omitempty" json:"vote_count,omitempty"`
	VoteAverage  float64    `bson:"vote_average,omitempty" json:"vote_average,omitempty"`
	Providers    []Provider `bson:"providers" json:"providers"`
}

// WatchlistEntry is a CatalogItem embedded in a user document, tagged with
// its namespace and the time it was added.
type WatchlistEntry struct {
	CatalogItem `bson:",inline"`
	MediaType   MediaType `bson:"mediaType" json:"mediaType"`
	AddedAt     time.Time `bson:"addedAt" json:"addedAt"`
}

// PageEnvelope is the response shape of the catalog listing endpoints.
type PageEnvelope struct {
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	Total      int64         `json:"total"`
	TotalPages int           `json:"totalPages"`
	Items      []CatalogItem `json:"items"`
}
