package data_access

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"what-to-watch-backend/models"
)

type CatalogRepository struct {
	db     *MongoDB
	movies *mongo.Collection
	series *mongo.Collection
}

func NewCatalogRepository(db *MongoDB, movieCollection, seriesCollection string) *CatalogRepository {
	return &CatalogRepository{
		db:     db,
		movies: db.Collection(movieCollection),
		series: db.Collection(seriesCollection),
	}
}

func (r *CatalogRepository) collection(media models.MediaType) (*mongo.Collection, error) {
	switch media {
	case models.MediaTypeMovie:
		return r.movies, nil
	case models.MediaTypeSeries:
		return r.series, nil
	default:
		return nil, fmt.Errorf("unknown media type %q", media)
	}
}

func (r *CatalogRepository) Count(ctx context.Context, media models.MediaType) (int64, error) {
	coll, err := r.collection(media)
	if err != nil {
		return 0, err
	}
	return coll.CountDocuments(ctx, bson.M{})
}

// Page fetches up to limit documents starting at skip, in the collection's
// natural order. No explicit sort: the catalog is insert-only.
func (r *CatalogRepository) Page(ctx context.Context, media models.MediaType, skip, limit int64) ([]models.CatalogItem, error) {
	coll, err := r.collection(media)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSkip(skip).SetLimit(limit))
	if err != nil {
		return nil, err
	}

	var items []models.CatalogItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CatalogRepository) RandomMovie(ctx context.Context) (*models.CatalogItem, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sample", Value: bson.D{{Key: "size", Value: 1}}}},
	}

	cursor, err := r.movies.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var items []models.CatalogItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("movie collection is empty")
	}
	return &items[0], nil
}

// Insert bulk-loads catalog documents. Only the seed path calls this; the
// API never writes to the catalog.
func (r *CatalogRepository) Insert(ctx context.Context, media models.MediaType, items []models.CatalogItem) error {
	if len(items) == 0 {
		return nil
	}
	coll, err := r.collection(media)
	if err != nil {
		return err
	}

	docs := make([]interface{}, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	_, err = coll.InsertMany(ctx, docs)
	return err
}
