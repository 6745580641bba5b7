package api

import (
	"net/http"

	"exoplanet-transit/internal/api/handlers"
	"exoplanet-transit/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Fetcher    handlers.CatalogFetcher
	Calculator handlers.CalculatorFactory
}

// NewRouter builds the API router with middleware and all routes.
func NewRouter(deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	lightCurveHandler := handlers.NewLightCurveHandler(deps.Calculator)
	catalogHandler := handlers.NewCatalogHandler(deps.Fetcher)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/lightcurve", lightCurveHandler.Compute)
		api.POST("/lightcurve/plot", lightCurveHandler.Plot)
		api.GET("/limb-darkening", lightCurveHandler.ListLimbDarkening)

		api.GET("/catalog/transits", catalogHandler.DownloadTransits)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
	return router
}
