package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"what-to-watch-backend/models"
	"what-to-watch-backend/services"
)

type CatalogController struct {
	catalogService *services.CatalogService
}

func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

func (c *CatalogController) GetRandomMovie(ctx *gin.Context) {
	movie, err := c.catalogService.RandomMovie(ctx.Request.Context())
	if err != nil {
		log.Printf("random movie fetch failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch a random movie"})
		return
	}

	ctx.JSON(http.StatusOK, movie)
}

func (c *CatalogController) GetMovies(ctx *gin.Context) {
	c.page(ctx, models.MediaTypeMovie)
}

func (c *CatalogController) GetSeries(ctx *gin.Context) {
	c.page(ctx, models.MediaTypeSeries)
}

// page serves one pagination envelope. Bad page/pageSize inputs are
// normalized by the service, never rejected, so the only failure here is the
// store itself.
func (c *CatalogController) page(ctx *gin.Context, media models.MediaType) {
	envelope, err := c.catalogService.GetPage(
		ctx.Request.Context(),
		media,
		ctx.Query("page"),
		ctx.Query("pageSize"),
	)
	if err != nil {
		log.Printf("%s page fetch failed: %v", media, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch catalog page"})
		return
	}

	ctx.JSON(http.StatusOK, envelope)
}
