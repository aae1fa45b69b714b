package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"what-to-watch-backend/models"
)

// ErrInvalidUserID marks a userId that is not a valid object id hex string.
// Controllers map it to a 400.
var ErrInvalidUserID = errors.New("invalid user id")

// WatchlistStore is the user-store surface the watchlist operations need.
type WatchlistStore interface {
	AddEntry(ctx context.Context, userID primitive.ObjectID, entry models.WatchlistEntry) (bool, error)
	RemoveEntry(ctx context.Context, userID primitive.ObjectID, itemID int) error
	Entries(ctx context.Context, userID primitive.ObjectID) ([]models.WatchlistEntry, error)
}

type WatchlistService struct {
	store WatchlistStore
}

func NewWatchlistService(store WatchlistStore) *WatchlistService {
	return &WatchlistService{store: store}
}

// Add appends the item to the user's watchlist with an addedAt stamp.
// Entries are deduplicated on (mediaType, id); adding an item that is
// already present succeeds without a second entry. Items sent by legacy
// clients without a mediaType count as movies.
func (s *WatchlistService) Add(ctx context.Context, userID string, item models.WatchlistItemPayload) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrInvalidUserID
	}

	mediaType := item.MediaType
	if mediaType == "" {
		mediaType = models.MediaTypeMovie
	}

	entry := models.WatchlistEntry{
		CatalogItem: item.CatalogItem,
		MediaType:   mediaType,
		AddedAt:     time.Now().UTC(),
	}

	_, err = s.store.AddEntry(ctx, oid, entry)
	return err
}

// Remove deletes every entry whose id matches. Removing an id that is not
// present is a no-op, not an error.
func (s *WatchlistService) Remove(ctx context.Context, userID string, itemID int) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrInvalidUserID
	}
	return s.store.RemoveEntry(ctx, oid, itemID)
}

// List returns the user's watchlist in insertion order. Unknown users get an
// empty list rather than an error.
func (s *WatchlistService) List(ctx context.Context, userID string) ([]models.WatchlistEntry, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	entries, err := s.store.Entries(ctx, oid)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.WatchlistEntry{}
	}
	return entries, nil
}
