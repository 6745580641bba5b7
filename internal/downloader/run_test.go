package downloader

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"exoplanet-transit/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mockCatalog = `pl_name,pl_discmethod
a,Transit
b,RV
c,Transit
d,RV
e,Transit
`

func fixedNow() time.Time { return time.Unix(1700000000, 0) }

func archive(t *testing.T, status int, body string) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server.URL
}

func TestRun_CanonicalPrefix(t *testing.T) {
	t.Setenv("ARCHIVE_URL", archive(t, http.StatusOK, mockCatalog))
	dir := t.TempDir()

	var out bytes.Buffer
	err := Run(context.Background(), []string{"--out-dir", dir}, catalog.CanonicalPrefix, &out, fixedNow)
	require.NoError(t, err)

	name := "Transit_Data_1700000000.csv"
	raw, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimRight(string(raw), "\n"), "\n"), 4)

	assert.Equal(t,
		"Transit data-loading is complete.\nIt has been stored in the main directory - "+name+"\n",
		out.String())
}

func TestRun_LegacyPrefix(t *testing.T) {
	t.Setenv("ARCHIVE_URL", archive(t, http.StatusOK, mockCatalog))
	dir := t.TempDir()

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), []string{"-out-dir", dir}, catalog.LegacyPrefix, &out, fixedNow))

	_, err := os.Stat(filepath.Join(dir, "Transit_data_1700000000.csv"))
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Transit_data_1700000000.csv")
}

func TestRun_ConfigOverridesFilter(t *testing.T) {
	t.Setenv("ARCHIVE_URL", archive(t, http.StatusOK, mockCatalog))
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("catalog:\n  value: RV\n  prefix: RV_Data_\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), []string{"--config", cfgPath, "--out-dir", dir}, catalog.CanonicalPrefix, &out, fixedNow))

	raw, err := os.ReadFile(filepath.Join(dir, "RV_Data_1700000000.csv"))
	require.NoError(t, err)
	assert.Equal(t, "pl_name,pl_discmethod\nb,RV\nd,RV\n", string(raw))
}

func TestRun_ArchiveFailure(t *testing.T) {
	t.Setenv("ARCHIVE_URL", archive(t, http.StatusInternalServerError, ""))
	dir := t.TempDir()

	var out bytes.Buffer
	err := Run(context.Background(), []string{"--out-dir", dir}, catalog.CanonicalPrefix, &out, fixedNow)
	require.Error(t, err)
	assert.Empty(t, out.String())

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestRun_BadFlag(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), []string{"--nope"}, catalog.CanonicalPrefix, &out, fixedNow)
	assert.Error(t, err)
}
