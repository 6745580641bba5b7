package catalog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"exoplanet-transit/internal/model"
)

// Output filename prefixes. The two downloaders historically disagree on
// casing; both are kept so existing file consumers keep working.
const (
	CanonicalPrefix = "Transit_Data_"
	LegacyPrefix    = "Transit_data_"
)

// Filename returns "<prefix><ts>.csv".
func Filename(prefix string, ts int64) string {
	return prefix + strconv.FormatInt(ts, 10) + ".csv"
}

// WriteTimestamped writes table to dir/<prefix><ts>.csv, replacing any
// existing file of that name, and returns the file name.
func WriteTimestamped(dir, prefix string, ts int64, table *model.CatalogTable) (string, error) {
	name := Filename(prefix, ts)
	if dir == "" {
		dir = "."
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := WriteCSV(f, table); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return name, nil
}

// PrintConfirmation reports a finished download.
func PrintConfirmation(w io.Writer, name string) error {
	if _, err := fmt.Fprintln(w, "Transit data-loading is complete."); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "It has been stored in the main directory - %s\n", name)
	return err
}
