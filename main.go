package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"what-to-watch-backend/config"
	"what-to-watch-backend/controllers"
	"what-to-watch-backend/data_access"
	"what-to-watch-backend/middleware"
	"what-to-watch-backend/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	log.Println("Configuration loaded for environment:", cfg.Env)

	// Initialize MongoDB connection
	mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongodb.Close(context.Background())

	if err := mongodb.EnsureIndexes(context.Background(), cfg.UserCollection); err != nil {
		log.Fatal("Failed to create indexes:", err)
	}

	// Initialize repositories
	userRepo := data_access.NewUserRepository(mongodb, cfg.UserCollection)
	catalogRepo := data_access.NewCatalogRepository(mongodb, cfg.MovieCollection, cfg.SeriesCollection)

	// Seed the catalog once at startup when the collections are empty
	var tmdb services.CatalogSource
	if cfg.TMDBAPIKey != "" {
		tmdb = data_access.NewTMDBClient(cfg.TMDBAPIKey, cfg.TMDBBaseURL)
	}
	seedService := services.NewSeedService(catalogRepo, tmdb, cfg.SeedDir, cfg.TMDBMaxPages)
	if err := seedService.EnsureCatalog(context.Background()); err != nil {
		log.Fatal("Failed to seed catalog:", err)
	}

	// Set JWT secret for middleware
	middleware.SetJWTSecret(cfg.JWTSecret)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	catalogService := services.NewCatalogService(catalogRepo)
	watchlistService := services.NewWatchlistService(userRepo)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	catalogController := controllers.NewCatalogController(catalogService)
	watchlistController := controllers.NewWatchlistController(watchlistService)

	// Setup Gin router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// Static frontend
	if _, err := os.Stat(cfg.StaticDir); err == nil {
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.StaticDir))))
	}

	// API routes
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		})

		api.GET("/get-random-movie", catalogController.GetRandomMovie)
		api.GET("/movies", catalogController.GetMovies)
		api.GET("/series", catalogController.GetSeries)

		api.POST("/register-user", authController.Register)
		api.POST("/auth-user", authController.Authenticate)
		api.GET("/me", middleware.RequireAuth(), authController.Me)

		api.GET("/get-user-watchlist", watchlistController.GetWatchlist)
		api.POST("/add-to-user-watchlist", watchlistController.AddToWatchlist)
		api.DELETE("/remove-from-user-watchlist", watchlistController.RemoveFromWatchlist)
	}

	servers := make([]*http.Server, 0, 2)

	if !cfg.DisableHTTP {
		srv := &http.Server{
			Addr:           ":" + cfg.Port,
			Handler:        r,
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   10 * time.Second,
			MaxHeaderBytes: 1 << 20,
		}
		servers = append(servers, srv)
		go func() {
			log.Printf("HTTP server listening on :%s", cfg.Port)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("HTTP server failed: %v", err)
			}
		}()
	}

	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		srv := &http.Server{
			Addr:           ":" + cfg.HTTPSPort,
			Handler:        r,
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   10 * time.Second,
			MaxHeaderBytes: 1 << 20,
		}
		servers = append(servers, srv)
		go func() {
			log.Printf("HTTPS server listening on :%s", cfg.HTTPSPort)
			if err := srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile); err != nil && err != http.ErrServerClosed {
				log.Fatalf("HTTPS server failed: %v", err)
			}
		}()
	}

	if len(servers) == 0 {
		log.Fatal("No listeners configured: HTTP disabled and no TLS certificate provided")
	}

	// Wait for an interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}

	log.Println("Server exited")
}
