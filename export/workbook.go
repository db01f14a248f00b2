package export

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/xuri/excelize/v2"

	"shopreorder/model"
)

const (
	SheetFiltered = "Filtered Orders"
	SheetAll      = "All Items"
	SheetSummary  = "Summary"

	// FileName is the download name offered to the browser.
	FileName    = "filtered_orders.xlsx"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	columnWidth = 19
)

var rowHeaders = []string{"Item Name", "Sales", "Stock", "Command", "Order From Location", "Available Qty"}

type styles struct {
	header, item, number, cell, summary int
}

// BuildWorkbook writes the filtered rows, every row of the current upload and
// a summary of the latter to an xlsx file. When all is nil the filtered rows
// stand in for it.
func BuildWorkbook(filtered []model.ExportRow, all []model.InventoryRow) ([]byte, error) {
	allRows := ToExportRows(all)
	if all == nil {
		allRows = filtered
	}
	filtered = sortedByName(filtered)
	allRows = sortedByName(allRows)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetFiltered); err != nil {
		return nil, err
	}
	for _, name := range []string{SheetAll, SheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	if err := writeRowSheet(f, SheetFiltered, filtered, st); err != nil {
		return nil, err
	}
	if err := writeRowSheet(f, SheetAll, allRows, st); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(f, Summarize(allRows), st); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ToExportRows formats stored rows the way the table shows them.
func ToExportRows(rows []model.InventoryRow) []model.ExportRow {
	out := make([]model.ExportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.ExportRow{
			ItemName:          r.ItemName,
			Sales:             model.FormatNumber(r.Sales),
			Stock:             model.FormatNumber(r.Stock),
			Command:           model.FormatNumber(r.Command),
			OrderFromLocation: r.OrderFromLocation,
			AvailableQty:      r.AvailableQty,
		})
	}
	return out
}

func sortedByName(rows []model.ExportRow) []model.ExportRow {
	out := make([]model.ExportRow, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ItemName < out[j].ItemName })
	return out
}

func newStyles(f *excelize.File) (styles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	body := &excelize.Font{Family: "Calibri", Size: 12}

	var st styles
	var err error
	if st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"3E50B4"}, Pattern: 1},
		Border:    border,
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}); err != nil {
		return st, err
	}
	if st.item, err = f.NewStyle(&excelize.Style{
		Font:      body,
		Border:    border,
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	}); err != nil {
		return st, err
	}
	if st.number, err = f.NewStyle(&excelize.Style{
		Font:      body,
		Border:    border,
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		NumFmt:    1,
	}); err != nil {
		return st, err
	}
	if st.cell, err = f.NewStyle(&excelize.Style{
		Font:      body,
		Border:    border,
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}); err != nil {
		return st, err
	}
	if st.summary, err = f.NewStyle(&excelize.Style{
		Font:      body,
		Border:    border,
		Alignment: &excelize.Alignment{Horizontal: "left"},
	}); err != nil {
		return st, err
	}
	return st, nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, st styles) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, st.header); err != nil {
			return err
		}
	}
	last, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", last, columnWidth)
}

func writeRowSheet(f *excelize.File, sheet string, rows []model.ExportRow, st styles) error {
	if err := writeHeader(f, sheet, rowHeaders, st); err != nil {
		return err
	}

	for idx, r := range rows {
		values := []string{r.ItemName, r.Sales, r.Stock, r.Command, r.OrderFromLocation, r.AvailableQty}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, idx+2)
			if err != nil {
				return err
			}
			var value interface{} = v
			style := st.cell
			switch {
			case c == 0:
				style = st.item
			case c >= 1 && c <= 3:
				style = st.number
				if n, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
					value = int64(n)
				}
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
				return err
			}
		}
	}

	return autoFilter(f, sheet, len(rowHeaders), len(rows))
}

func writeSummarySheet(f *excelize.File, s Summary, st styles) error {
	if err := writeHeader(f, SheetSummary, []string{"Metric", "Value"}, st); err != nil {
		return err
	}
	metrics := s.metrics()
	for i, m := range metrics {
		for c, v := range m {
			cell, err := excelize.CoordinatesToCellName(c+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(SheetSummary, cell, v); err != nil {
				return err
			}
			if err := f.SetCellStyle(SheetSummary, cell, cell, st.summary); err != nil {
				return err
			}
		}
	}
	return autoFilter(f, SheetSummary, 2, len(metrics))
}

func autoFilter(f *excelize.File, sheet string, cols, rows int) error {
	end, err := excelize.CoordinatesToCellName(cols, rows+1)
	if err != nil {
		return err
	}
	return f.AutoFilter(sheet, "A1:"+end, []excelize.AutoFilterOptions{})
}
