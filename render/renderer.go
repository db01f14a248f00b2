package render

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"shopreorder/filter"
	"shopreorder/model"
)

const zeroStockBadge = `<span class="zero-stock-badge">0</span>`

// ViewRow is one table row as displayed. Cells hold escaped HTML in column
// order: item, sales, stock, command, location, available.
type ViewRow struct {
	Cells     [6]string
	ZeroStock bool
}

// Table is what the page shows for one filter run.
type Table struct {
	Rows []ViewRow
	Info string
}

// SortRows returns a copy of rows ordered by item name using the collation
// rules of lang.
func SortRows(rows []model.InventoryRow, lang language.Tag) []model.InventoryRow {
	sorted := make([]model.InventoryRow, len(rows))
	copy(sorted, rows)

	c := collate.New(lang)
	sort.SliceStable(sorted, func(i, j int) bool {
		return c.CompareString(sorted[i].ItemName, sorted[j].ItemName) < 0
	})
	return sorted
}

// BuildTable sorts the filtered rows for display and marks zero-stock rows.
func BuildTable(res filter.Result, lang language.Tag) Table {
	sorted := SortRows(res.Rows, lang)
	t := Table{
		Rows: make([]ViewRow, 0, len(sorted)),
		Info: res.Summary(),
	}
	for _, r := range sorted {
		t.Rows = append(t.Rows, viewRow(r))
	}
	return t
}

func viewRow(r model.InventoryRow) ViewRow {
	stock := html.EscapeString(model.FormatNumber(r.Stock))
	if r.ZeroStock() {
		stock = zeroStockBadge
	}
	return ViewRow{
		Cells: [6]string{
			html.EscapeString(r.ItemName),
			html.EscapeString(model.FormatNumber(r.Sales)),
			stock,
			html.EscapeString(model.FormatNumber(r.Command)),
			html.EscapeString(r.OrderFromLocation),
			html.EscapeString(r.AvailableQty),
		},
		ZeroStock: r.ZeroStock(),
	}
}

// RenderTableHTML writes the tbody for the results table.
func RenderTableHTML(t Table) string {
	var sb strings.Builder

	sb.WriteString(`<tbody>`)
	for _, row := range t.Rows {
		if row.ZeroStock {
			sb.WriteString(`<tr class="table-zero-stock">`)
		} else {
			sb.WriteString(`<tr>`)
		}
		for i, cell := range row.Cells {
			if i == 3 {
				sb.WriteString(fmt.Sprintf(`<td class="command-text">%s</td>`, cell))
				continue
			}
			sb.WriteString(fmt.Sprintf(`<td>%s</td>`, cell))
		}
		sb.WriteString(`</tr>`)
	}
	sb.WriteString(`</tbody>`)

	return sb.String()
}

// RenderFilterInfoHTML wraps the result summary line shown above the table.
func RenderFilterInfoHTML(info string) string {
	return fmt.Sprintf(`<div class="filter-info alert alert-info">%s</div>`, html.EscapeString(info))
}
