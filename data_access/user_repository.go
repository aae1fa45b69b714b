package data_access

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"what-to-watch-backend/models"
)

type UserRepository struct {
	db         *MongoDB
	collection *mongo.Collection
}

func NewUserRepository(db *MongoDB, collectionName string) *UserRepository {
	return &UserRepository{
		db:         db,
		collection: db.Collection(collectionName),
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// AddEntry pushes a watchlist entry unless one with the same (mediaType, id)
// already exists. The guard lives in the update filter, so the check and the
// push are a single atomic operation. Returns false when the entry was
// already present.
func (r *UserRepository) AddEntry(ctx context.Context, userID primitive.ObjectID, entry models.WatchlistEntry) (bool, error) {
	filter := bson.M{
		"_id": userID,
		"watchlist": bson.M{
			"$not": bson.M{
				"$elemMatch": bson.M{
					"id":        entry.ID,
					"mediaType": entry.MediaType,
				},
			},
		},
	}
	update := bson.M{
		"$push": bson.M{"watchlist": entry},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

// RemoveEntry pulls every watchlist entry matching the id, regardless of
// mediaType, the way the legacy endpoint behaved. Removing an absent id is
// a no-op.
func (r *UserRepository) RemoveEntry(ctx context.Context, userID primitive.ObjectID, itemID int) error {
	update := bson.M{
		"$pull": bson.M{"watchlist": bson.M{"id": itemID}},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	return err
}

func (r *UserRepository) Entries(ctx context.Context, userID primitive.ObjectID) ([]models.WatchlistEntry, error) {
	user, err := r.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return user.Watchlist, nil
}
