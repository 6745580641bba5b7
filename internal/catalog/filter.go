package catalog

import "exoplanet-transit/internal/model"

// Discovery-method filter used by the downloader.
const (
	DiscoveryMethodColumn = "pl_discmethod"
	TransitMethod         = "Transit"
)

// FilterRows returns a table holding only rows whose column equals value
// exactly (case-sensitive, no trimming). The input table is not modified.
// An empty result is valid.
func FilterRows(table *model.CatalogTable, column, value string) (*model.CatalogTable, error) {
	idx, err := table.ColumnIndex(column)
	if err != nil {
		return nil, err
	}
	out := &model.CatalogTable{
		Header: append([]string(nil), table.Header...),
		Rows:   make([][]string, 0),
	}
	for _, row := range table.Rows {
		if idx < len(row) && row[idx] == value {
			out.Rows = append(out.Rows, append([]string(nil), row...))
		}
	}
	return out, nil
}

// FilterTransits keeps planets discovered by the transit method.
func FilterTransits(table *model.CatalogTable) (*model.CatalogTable, error) {
	return FilterRows(table, DiscoveryMethodColumn, TransitMethod)
}
