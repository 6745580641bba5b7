package main

import (
	"fmt"
	"log"
	"os"

	"exoplanet-transit/internal/api"
	"exoplanet-transit/internal/catalog"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	client := catalog.NewArchiveClient(os.Getenv("ARCHIVE_URL"))
	client.Cache = catalog.GetCache()
	if client.Cache != nil {
		log.Printf("Archive response cache enabled (development only)")
	}

	router := api.NewRouter(api.Deps{Fetcher: client})

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
