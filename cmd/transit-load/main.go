// Command transit-load downloads the NASA Exoplanet Archive planet table,
// keeps planets discovered by transit, and writes Transit_Data_<epoch>.csv
// to the current directory.
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
	if err := downloader.Run(context.Background(), os.Args[1:], catalog.CanonicalPrefix, os.Stdout, time.Now); err != nil {
		log.Fatalf("%v", err)
	}
}
