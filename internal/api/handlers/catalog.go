package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"exoplanet-transit/internal/api/models"
	"exoplanet-transit/internal/catalog"
	"exoplanet-transit/internal/model"

	"github.com/gin-gonic/gin"
)

// CatalogFetcher retrieves the full planet table.
type CatalogFetcher interface {
	FetchCatalog(ctx context.Context) (*model.CatalogTable, error)
}

// CatalogHandler serves filtered archive downloads
type CatalogHandler struct {
	fetcher CatalogFetcher
	now     func() time.Time
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(fetcher CatalogFetcher) *CatalogHandler {
	return &CatalogHandler{fetcher: fetcher, now: time.Now}
}

// DownloadTransits handles GET /api/v1/catalog/transits
//
// Query parameters column and value override the default
// pl_discmethod == "Transit" filter.
func (h *CatalogHandler) DownloadTransits(c *gin.Context) {
	column := c.DefaultQuery("column", catalog.DiscoveryMethodColumn)
	value := c.DefaultQuery("value", catalog.TransitMethod)
	ts := h.now().UTC().Unix()

	table, err := h.fetcher.FetchCatalog(c.Request.Context())
	if err != nil {
		var archiveErr *catalog.ArchiveError
		if errors.As(err, &archiveErr) {
			c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    archiveErr.Code,
					Message: archiveErr.Message,
					Details: map[string]interface{}{
						"status_code": archiveErr.StatusCode,
					},
				},
			})
			return
		}
		c.JSON(http.StatusBadGateway, models.NewError("DATA_FETCH_ERROR", err.Error()))
		return
	}

	filtered, err := catalog.FilterRows(table, column, value)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.NewError("MISSING_COLUMN", err.Error()))
		return
	}

	var buf bytes.Buffer
	if err := catalog.WriteCSV(&buf, filtered); err != nil {
		c.JSON(http.StatusInternalServerError, models.NewError("CSV_ERROR", err.Error()))
		return
	}

	name := catalog.Filename(catalog.CanonicalPrefix, ts)
	log.Printf("[API] Catalog download: %d of %d rows where %s == %q (%s)",
		filtered.Len(), table.Len(), column, value, name)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
