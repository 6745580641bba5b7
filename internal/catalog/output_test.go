package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"exoplanet-transit/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	assert.Equal(t, "Transit_Data_1538263349.csv", Filename(CanonicalPrefix, 1538263349))
	assert.Equal(t, "Transit_data_1538263349.csv", Filename(LegacyPrefix, 1538263349))
}

func TestWriteTimestamped_EndToEnd(t *testing.T) {
	table := &model.CatalogTable{
		Header: []string{"pl_name", "pl_discmethod"},
		Rows: [][]string{
			{"a", "Transit"},
			{"b", "RV"},
			{"c", "Transit"},
			{"d", "RV"},
			{"e", "Transit"},
		},
	}
	filtered, err := FilterTransits(table)
	require.NoError(t, err)

	dir := t.TempDir()
	const ts = int64(1700000000)
	name, err := WriteTimestamped(dir, CanonicalPrefix, ts, filtered)
	require.NoError(t, err)
	assert.Equal(t, "Transit_Data_1700000000.csv", name)

	raw, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "pl_name,pl_discmethod", lines[0])
	assert.Equal(t, "e,Transit", lines[3])

	var out bytes.Buffer
	require.NoError(t, PrintConfirmation(&out, name))
	printed := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, printed, 2)
	assert.Equal(t, "Transit data-loading is complete.", printed[0])
	assert.Equal(t, "It has been stored in the main directory - Transit_Data_1700000000.csv", printed[1])
}

func TestWriteTimestamped_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Filename(LegacyPrefix, 42))
	require.NoError(t, os.WriteFile(path, []byte("stale\nstale\nstale\n"), 0o644))

	table := &model.CatalogTable{Header: []string{"pl_discmethod"}}
	name, err := WriteTimestamped(dir, LegacyPrefix, 42, table)
	require.NoError(t, err)
	assert.Equal(t, "Transit_data_42.csv", name)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pl_discmethod\n", string(raw))
}

func TestWriteTimestamped_MissingDir(t *testing.T) {
	_, err := WriteTimestamped(filepath.Join(t.TempDir(), "nope"), CanonicalPrefix, 1, &model.CatalogTable{})
	assert.Error(t, err)
}
