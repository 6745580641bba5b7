// Package downloader implements the transit catalog download commands.
package downloader

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"exoplanet-transit/internal/catalog"
	"exoplanet-transit/internal/config"
)

// Run parses args, downloads the catalog and prints the confirmation lines.
// prefix is the output filename prefix baked into the calling command; a
// config file may override it. now supplies the run timestamp.
func Run(ctx context.Context, args []string, prefix string, stdout io.Writer, now func() time.Time) error {
	// Captured once; names the output file.
	ts := now().UTC().Unix()

	fs := flag.NewFlagSet("transit-load", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	outDir := fs.String("out-dir", "", "Directory for the CSV file (default: current directory)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	cfg.Catalog.Prefix = prefix
	if *cfgPath != "" {
		loaded, err := config.LoadOnto(cfg, *cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if v := os.Getenv("ARCHIVE_URL"); v != "" {
		cfg.Catalog.URL = v
	}
	if *outDir != "" {
		cfg.Catalog.OutputDir = *outDir
	}

	client := catalog.NewArchiveClient(cfg.Catalog.URL)
	// Zero disables the timeout, as for http.Client.
	client.Client.Timeout = cfg.Catalog.Timeout

	name, err := catalog.Download(ctx, client, catalog.DownloadOptions{
		Column:    cfg.Catalog.Column,
		Value:     cfg.Catalog.Value,
		Prefix:    cfg.Catalog.Prefix,
		Dir:       cfg.Catalog.OutputDir,
		Timestamp: ts,
	})
	if err != nil {
		return fmt.Errorf("transit download failed: %w", err)
	}
	return catalog.PrintConfirmation(stdout, name)
}
