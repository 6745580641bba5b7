package model

import "fmt"

// CatalogTable is a header plus raw string rows, as read from a CSV resource.
// Cells are kept verbatim so that a round trip does not alter values.
type CatalogTable struct {
	Header []string
	Rows   [][]string
}

// ColumnIndex returns the position of the named column.
func (t *CatalogTable) ColumnIndex(name string) (int, error) {
	if t == nil {
		return -1, fmt.Errorf("catalog table is nil")
	}
	for i, h := range t.Header {
		if h == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("column %q not found in catalog", name)
}

// Value returns the cell at row i in the named column.
// Short rows yield an empty string.
func (t *CatalogTable) Value(i int, column string) (string, error) {
	idx, err := t.ColumnIndex(column)
	if err != nil {
		return "", err
	}
	if i < 0 || i >= len(t.Rows) {
		return "", fmt.Errorf("row %d out of range (%d rows)", i, len(t.Rows))
	}
	row := t.Rows[i]
	if idx >= len(row) {
		return "", nil
	}
	return row[idx], nil
}

// Len returns the number of data rows.
func (t *CatalogTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
