package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server Configuration
	Port        string
	HTTPSPort   string
	TLSCertFile string
	TLSKeyFile  string
	DisableHTTP bool
	StaticDir   string
	Env         string

	// Database Configuration
	MongoURI         string
	DBName           string
	UserCollection   string
	MovieCollection  string
	SeriesCollection string

	// Security Configuration
	JWTSecret string

	// Catalog Seeding Configuration
	SeedDir      string
	TMDBAPIKey   string
	TMDBBaseURL  string
	TMDBMaxPages int
}

// LoadConfig loads the configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load environment file based on GO_ENV when one exists
	env := getEnvOrDefault("GO_ENV", "development")
	envFile := filepath.Join("environments", fmt.Sprintf(".env.%s", env))
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("error loading env file %s: %v", envFile, err)
		}
	}

	maxPages, err := strconv.Atoi(getEnvOrDefault("TMDB_MAX_PAGES", "5"))
	if err != nil || maxPages < 0 {
		maxPages = 5
	}

	cfg := &Config{
		Port:        getEnvOrDefault("PORT", "3000"),
		HTTPSPort:   getEnvOrDefault("HTTPS_PORT", "3443"),
		TLSCertFile: getEnvOrDefault("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnvOrDefault("TLS_KEY_FILE", ""),
		DisableHTTP: getEnvOrDefault("DISABLE_HTTP", "false") == "true",
		StaticDir:   getEnvOrDefault("STATIC_DIR", "frontend"),
		Env:         env,

		MongoURI:         getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017/"),
		DBName:           getEnvOrDefault("DB_NAME", "WhatToWatch"),
		UserCollection:   getEnvOrDefault("USER_COLLECTION", "users"),
		MovieCollection:  getEnvOrDefault("MOVIE_COLLECTION", "Movies"),
		SeriesCollection: getEnvOrDefault("SERIES_COLLECTION", "Series"),

		JWTSecret: getEnvOrDefault("JWT_SECRET", "dev-secret-change-me"),

		SeedDir:      getEnvOrDefault("SEED_DIR", "seed"),
		TMDBAPIKey:   getEnvOrDefault("TMDB_API_KEY", ""),
		TMDBBaseURL:  getEnvOrDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		TMDBMaxPages: maxPages,
	}

	if cfg.DisableHTTP && (cfg.TLSCertFile == "" || cfg.TLSKeyFile == "") {
		return nil, fmt.Errorf("DISABLE_HTTP is set but TLS_CERT_FILE/TLS_KEY_FILE are not configured")
	}
	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-me" {
		fmt.Println("WARNING: production is running with the default JWT secret, set JWT_SECRET")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
