package export

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"shopreorder/model"
)

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestBuildWorkbook(t *testing.T) {
	filtered := []model.ExportRow{
		{ItemName: "Zeta", Sales: "2", Stock: "0", Command: "10", OrderFromLocation: "Warehouse", AvailableQty: "20"},
		{ItemName: "Alpha", Sales: "1.5", Stock: "7", Command: "5", OrderFromLocation: "Shop 02", AvailableQty: "Shop 02: 6"},
	}
	all := []model.InventoryRow{
		{ItemName: "Zeta", Sales: 2, Stock: 0, Command: 10, OrderFromLocation: "Warehouse", AvailableQty: "20"},
		{ItemName: "Alpha", Sales: 1.5, Stock: 7, Command: 5, OrderFromLocation: "Shop 02", AvailableQty: "Shop 02: 6"},
		{ItemName: "Mid", Sales: 0, Stock: 30, Command: 0, OrderFromLocation: model.NotAvailable, AvailableQty: "0"},
	}

	data, err := BuildWorkbook(filtered, all)
	if err != nil {
		t.Fatalf("BuildWorkbook: %v", err)
	}
	f := openWorkbook(t, data)

	if got := f.GetSheetList(); !reflect.DeepEqual(got, []string{SheetFiltered, SheetAll, SheetSummary}) {
		t.Errorf("sheets = %v", got)
	}

	rows, err := f.GetRows(SheetFiltered)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("filtered sheet has %d rows, want 3", len(rows))
	}
	if !reflect.DeepEqual(rows[0], rowHeaders) {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "Alpha" || rows[2][0] != "Zeta" {
		t.Errorf("filtered rows not sorted by name: %v", rows[1:])
	}
	// quantity columns are written as whole numbers
	if rows[1][1] != "1" {
		t.Errorf("Alpha sales = %q, want 1", rows[1][1])
	}

	allRows, err := f.GetRows(SheetAll)
	if err != nil {
		t.Fatal(err)
	}
	if len(allRows) != 4 || allRows[2][0] != "Mid" {
		t.Errorf("all items sheet = %v", allRows)
	}

	summary, err := f.GetRows(SheetSummary)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{
		{"Metric", "Value"},
		{"Total Items", "3"},
		{"Low Stock (<10)", "2"},
		{"Zero Stock (0)", "1"},
		{"Order Needed (Command > 0)", "2"},
	}
	if !reflect.DeepEqual(summary, want) {
		t.Errorf("summary = %v, want %v", summary, want)
	}
}

func TestBuildWorkbook_WithoutSnapshot(t *testing.T) {
	filtered := []model.ExportRow{
		{ItemName: "Only", Sales: "1", Stock: "0", Command: "5", OrderFromLocation: "Warehouse", AvailableQty: "9"},
	}

	data, err := BuildWorkbook(filtered, nil)
	if err != nil {
		t.Fatalf("BuildWorkbook: %v", err)
	}
	f := openWorkbook(t, data)

	allRows, err := f.GetRows(SheetAll)
	if err != nil {
		t.Fatal(err)
	}
	if len(allRows) != 2 || allRows[1][0] != "Only" {
		t.Errorf("all items sheet = %v, want the filtered row", allRows)
	}
	if v, _ := f.GetCellValue(SheetSummary, "B2"); v != "1" {
		t.Errorf("Total Items = %q, want 1", v)
	}
}
