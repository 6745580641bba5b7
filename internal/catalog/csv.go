package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"exoplanet-transit/internal/model"
)

// ParseCSV reads a header row followed by data rows. Lines starting with '#'
// are skipped; the archive prefixes some responses with such comments.
func ParseCSV(r io.Reader) (*model.CatalogTable, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty response: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	table := &model.CatalogTable{Header: header}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, rec)
	}
	return table, nil
}

// WriteCSV writes the header and all rows, with the original column set.
func WriteCSV(w io.Writer, table *model.CatalogTable) error {
	if table == nil {
		return errors.New("catalog table is nil")
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Header); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
