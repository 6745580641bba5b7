package catalog

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"exoplanet-transit/internal/model"

	"github.com/dustin/go-humanize"
)

// DefaultURL is the NASA Exoplanet Archive query for the full planet table.
const DefaultURL = "https://exoplanetarchive.ipac.caltech.edu/cgi-bin/nstedAPI/nph-nstedAPI?table=exoplanets"

// ArchiveClient downloads catalog tables from the NASA Exoplanet Archive.
type ArchiveClient struct {
	URL    string
	Client *http.Client
	// Cache is consulted before the network when non-nil.
	Cache *ResponseCache
}

// NewArchiveClient creates a client for url.
// If url is empty, defaults to DefaultURL.
func NewArchiveClient(url string) *ArchiveClient {
	if url == "" {
		url = DefaultURL
	}
	return &ArchiveClient{
		URL: url,
		Client: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

// ArchiveError represents a non-success response from the archive.
type ArchiveError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ArchiveError) Error() string {
	return e.Message
}

// FetchCatalog issues a single GET and parses the body as CSV.
// There is no retry; any failure is returned to the caller.
func (c *ArchiveClient) FetchCatalog(ctx context.Context) (*model.CatalogTable, error) {
	if c.Cache != nil {
		if cached, found := c.Cache.Get(c.URL); found {
			log.Printf("[Archive] Cache hit: Using cached catalog with %d rows", cached.Len())
			return cached, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	log.Printf("[Archive] Request: GET %s", c.URL)
	startTime := time.Now()
	resp, err := c.Client.Do(req)
	duration := time.Since(startTime)
	if err != nil {
		log.Printf("[Archive] Request failed: %v (duration: %v)", err, duration)
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	log.Printf("[Archive] Response: %s (duration: %v)", resp.Status, duration)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, &ArchiveError{
			StatusCode: resp.StatusCode,
			Code:       "TABLE_NOT_FOUND",
			Message:    fmt.Sprintf("Archive table not found: %s", c.URL),
		}
	case http.StatusTooManyRequests, http.StatusServiceUnavailable:
		return nil, &ArchiveError{
			StatusCode: resp.StatusCode,
			Code:       "ARCHIVE_UNAVAILABLE",
			Message:    fmt.Sprintf("Archive unavailable: %s", resp.Status),
		}
	default:
		return nil, &ArchiveError{
			StatusCode: resp.StatusCode,
			Code:       "API_ERROR",
			Message:    fmt.Sprintf("API returned status %d: %s", resp.StatusCode, resp.Status),
		}
	}

	counter := &countingReader{r: resp.Body}
	table, err := ParseCSV(counter)
	if err != nil {
		log.Printf("[Archive] Error parsing response: %v", err)
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	log.Printf("[Archive] Success: Received %d rows, %d columns (%s)",
		table.Len(), len(table.Header), humanize.Bytes(counter.n))

	if c.Cache != nil {
		c.Cache.Set(c.URL, table)
	}
	return table, nil
}

type countingReader struct {
	r io.Reader
	n uint64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += uint64(n)
	return n, err
}
