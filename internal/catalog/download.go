package catalog

import (
	"context"
	"log"

	"exoplanet-transit/internal/model"
)

// DownloadOptions configures one fetch-filter-write run.
type DownloadOptions struct {
	Column    string
	Value     string
	Prefix    string
	Dir       string
	Timestamp int64 // UTC epoch seconds, captured once by the caller
}

// Fetcher is the part of ArchiveClient the downloader needs.
type Fetcher interface {
	FetchCatalog(ctx context.Context) (*model.CatalogTable, error)
}

// Download fetches the catalog, keeps rows where Column == Value and writes
// them to <Dir>/<Prefix><Timestamp>.csv. It returns the file name.
func Download(ctx context.Context, fetcher Fetcher, opts DownloadOptions) (string, error) {
	table, err := fetcher.FetchCatalog(ctx)
	if err != nil {
		return "", err
	}
	filtered, err := FilterRows(table, opts.Column, opts.Value)
	if err != nil {
		return "", err
	}
	log.Printf("[Download] Kept %d of %d rows where %s == %q", filtered.Len(), table.Len(), opts.Column, opts.Value)
	return WriteTimestamped(opts.Dir, opts.Prefix, opts.Timestamp, filtered)
}
