// Command transit-load-legacy is transit-load with the older output name,
// Transit_data_<epoch>.csv, for consumers that still expect that casing.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"exoplanet-transit/internal/catalog"
	"exoplanet-transit/internal/downloader"
)

func main() {
	if err := downloader.Run(context.Background(), os.Args[1:], catalog.LegacyPrefix, os.Stdout, time.Now); err != nil {
		log.Fatalf("%v", err)
	}
}
