package models

import (
	"bytes"
	"fmt"
	"strconv"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// WatchlistItemPayload is the catalog item a client sends when adding to the
// watchlist. The frontend spreads the item and tags on a mediaType; legacy
// clients omit the tag.
type WatchlistItemPayload struct {
	CatalogItem
	MediaType MediaType `json:"mediaType"`
}

// ItemID accepts both JSON numbers and numeric strings: the browser sends
// the movie id out of a dataset attribute, where it is always a string.
type ItemID int

func (id *ItemID) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("invalid item id %q", data)
	}
	*id = ItemID(n)
	return nil
}

type AddToWatchlistRequest struct {
	UserID string                `json:"userId" binding:"required"`
	Movie  *WatchlistItemPayload `json:"movie" binding:"required"`
}

type RemoveFromWatchlistRequest struct {
	UserID  string `json:"userId" binding:"required"`
	MovieID ItemID `json:"movieId" binding:"required"`
}
