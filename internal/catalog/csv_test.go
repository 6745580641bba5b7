package catalog

import (
	"bytes"
	"strings"
	"testing"

	"exoplanet-transit/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV_SkipsComments(t *testing.T) {
	table, err := ParseCSV(strings.NewReader(sampleCatalog))
	require.NoError(t, err)
	assert.Equal(t, "pl_hostname", table.Header[0])
	assert.Equal(t, 3, table.Len())
}

func TestParseCSV_QuotedAndEmptyCells(t *testing.T) {
	table, err := ParseCSV(strings.NewReader("pl_name,pl_discmethod,st_dist\n\"Kepler-11, b\",Transit,\n"))
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, []string{"Kepler-11, b", "Transit", ""}, table.Rows[0])
}

func TestParseCSV_Empty(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	assert.Error(t, err)

	_, err = ParseCSV(strings.NewReader("# only a comment\n"))
	assert.Error(t, err)
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	table, err := ParseCSV(strings.NewReader("pl_name,pl_discmethod\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

func TestWriteCSV_PreservesCells(t *testing.T) {
	table := &model.CatalogTable{
		Header: []string{"pl_name", "pl_discmethod", "st_dist"},
		Rows:   [][]string{{"Kepler-11, b", "Transit", ""}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, table))
	assert.Equal(t, "pl_name,pl_discmethod,st_dist\n\"Kepler-11, b\",Transit,\n", buf.String())

	assert.Error(t, WriteCSV(&buf, nil))
}
