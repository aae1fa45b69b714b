package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"what-to-watch-backend/models"
	"what-to-watch-backend/services"
)

type WatchlistController struct {
	watchlistService *services.WatchlistService
}

func NewWatchlistController(watchlistService *services.WatchlistService) *WatchlistController {
	return &WatchlistController{
		watchlistService: watchlistService,
	}
}

func (c *WatchlistController) GetWatchlist(ctx *gin.Context) {
	userID := ctx.Query("userId")
	if userID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	entries, err := c.watchlistService.List(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidUserID) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}
		log.Printf("watchlist fetch failed for user %s: %v", userID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watchlist"})
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

func (c *WatchlistController) AddToWatchlist(ctx *gin.Context) {
	var req models.AddToWatchlistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "userId and movie are required"})
		return
	}

	err := c.watchlistService.Add(ctx.Request.Context(), req.UserID, *req.Movie)
	if err != nil {
		if errors.Is(err, services.ErrInvalidUserID) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}
		log.Printf("watchlist add failed for user %s: %v", req.UserID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to watchlist"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true})
}

func (c *WatchlistController) RemoveFromWatchlist(ctx *gin.Context) {
	var req models.RemoveFromWatchlistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "userId and movieId are required"})
		return
	}

	err := c.watchlistService.Remove(ctx.Request.Context(), req.UserID, int(req.MovieID))
	if err != nil {
		if errors.Is(err, services.ErrInvalidUserID) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}
		log.Printf("watchlist remove failed for user %s: %v", req.UserID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from watchlist"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
