package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"what-to-watch-backend/controllers"
	"what-to-watch-backend/models"
	"what-to-watch-backend/services"
)

type fakeWatchlistStore struct {
	lists map[primitive.ObjectID][]models.WatchlistEntry
}

func newFakeWatchlistStore() *fakeWatchlistStore {
	return &fakeWatchlistStore{lists: make(map[primitive.ObjectID][]models.WatchlistEntry)}
}

func (f *fakeWatchlistStore) AddEntry(ctx context.Context, userID primitive.ObjectID, entry models.WatchlistEntry) (bool, error) {
	for _, existing := range f.lists[userID] {
		if existing.ID == entry.ID && existing.MediaType == entry.MediaType {
			return false, nil
		}
	}
	f.lists[userID] = append(f.lists[userID], entry)
	return true, nil
}

func (f *fakeWatchlistStore) RemoveEntry(ctx context.Context, userID primitive.ObjectID, itemID int) error {
	kept := f.lists[userID][:0]
	for _, existing := range f.lists[userID] {
		if existing.ID != itemID {
			kept = append(kept, existing)
		}
	}
	f.lists[userID] = kept
	return nil
}

func (f *fakeWatchlistStore) Entries(ctx context.Context, userID primitive.ObjectID) ([]models.WatchlistEntry, error) {
	return f.lists[userID], nil
}

func watchlistRouter(store *fakeWatchlistStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	c := controllers.NewWatchlistController(services.NewWatchlistService(store))

	r := gin.New()
	r.GET("/api/get-user-watchlist", c.GetWatchlist)
	r.POST("/api/add-to-user-watchlist", c.AddToWatchlist)
	r.DELETE("/api/remove-from-user-watchlist", c.RemoveFromWatchlist)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestGetWatchlistRequiresUserID(t *testing.T) {
	r := watchlistRouter(newFakeWatchlistStore())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/get-user-watchlist", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without userId, got %d", w.Code)
	}
	assert.Contains(t, w.Body.String(), "userId")
}

func TestGetWatchlistMalformedUserID(t *testing.T) {
	r := watchlistRouter(newFakeWatchlistStore())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/get-user-watchlist?userId=zzz", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed userId, got %d", w.Code)
	}
}

func TestGetWatchlistEmptyIsOK(t *testing.T) {
	r := watchlistRouter(newFakeWatchlistStore())
	userID := primitive.NewObjectID().Hex()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/get-user-watchlist?userId="+userID, nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty watchlist, got %d", w.Code)
	}
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestAddToWatchlistMissingMovie(t *testing.T) {
	store := newFakeWatchlistStore()
	r := watchlistRouter(store)
	userID := primitive.NewObjectID().Hex()

	w := doJSON(r, http.MethodPost, "/api/add-to-user-watchlist", `{"userId":"`+userID+`"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without movie, got %d", w.Code)
	}
	for _, list := range store.lists {
		if len(list) != 0 {
			t.Fatal("watchlist must stay unchanged after a rejected add")
		}
	}
}

func TestAddToWatchlistMissingUserID(t *testing.T) {
	r := watchlistRouter(newFakeWatchlistStore())

	w := doJSON(r, http.MethodPost, "/api/add-to-user-watchlist", `{"movie":{"id":42}}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without userId, got %d", w.Code)
	}
}

func TestAddThenGetWatchlist(t *testing.T) {
	r := watchlistRouter(newFakeWatchlistStore())
	userID := primitive.NewObjectID().Hex()

	body := `{"userId":"` + userID + `","movie":{"id":617126,"title":"The Fantastic 4: First Steps","mediaType":"movie"}}`
	w := doJSON(r, http.MethodPost, "/api/add-to-user-watchlist", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	assert.Contains(t, w.Body.String(), `"success":true`)

	get := httptest.NewRecorder()
	r.ServeHTTP(get, httptest.NewRequest(http.MethodGet, "/api/get-user-watchlist?userId="+userID, nil))

	var entries []models.WatchlistEntry
	if err := json.Unmarshal(get.Body.Bytes(), &entries); err != nil {
		t.Fatalf("watchlist response is not a list: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != 617126 {
		t.Fatalf("unexpected watchlist contents: %+v", entries)
	}
}

func TestRemoveFromWatchlist(t *testing.T) {
	store := newFakeWatchlistStore()
	r := watchlistRouter(store)
	userID := primitive.NewObjectID().Hex()

	doJSON(r, http.MethodPost, "/api/add-to-user-watchlist",
		`{"userId":"`+userID+`","movie":{"id":42,"mediaType":"movie"}}`)

	w := doJSON(r, http.MethodDelete, "/api/remove-from-user-watchlist",
		`{"userId":"`+userID+`","movieId":42}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	assert.Contains(t, w.Body.String(), `"success":true`)

	// The browser sends the id out of a dataset attribute as a string, and
	// removing an absent id stays a 200 no-op.
	again := doJSON(r, http.MethodDelete, "/api/remove-from-user-watchlist",
		`{"userId":"`+userID+`","movieId":"42"}`)
	if again.Code != http.StatusOK {
		t.Fatalf("expected 200 for repeat remove, got %d", again.Code)
	}
}

func TestRemoveFromWatchlistMissingFields(t *testing.T) {
	r := watchlistRouter(newFakeWatchlistStore())

	w := doJSON(r, http.MethodDelete, "/api/remove-from-user-watchlist", `{"movieId":42}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without userId, got %d", w.Code)
	}

	w = doJSON(r, http.MethodDelete, "/api/remove-from-user-watchlist", `{"userId":"abc"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without movieId, got %d", w.Code)
	}
}
