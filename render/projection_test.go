package render

import (
	"testing"

	"golang.org/x/text/language"

	"shopreorder/filter"
	"shopreorder/model"
)

func TestProjectExport(t *testing.T) {
	rows := []model.InventoryRow{
		{ItemName: "Bolt & Nut", Sales: 4, Stock: 7, Command: 5, OrderFromLocation: "Warehouse, Shop 03", AvailableQty: "20, 9"},
		{ItemName: "Anchor", Sales: 2.5, Stock: 0, Command: 10, OrderFromLocation: "Shop 02", AvailableQty: "Shop 02: 6"},
		{ItemName: "Cable", Sales: 1, Stock: -3, Command: 0, OrderFromLocation: model.NotAvailable, AvailableQty: "0"},
	}

	got := ProjectExport(BuildTable(filter.Apply(rows, filter.Query{}), language.English))

	want := []model.ExportRow{
		{ItemName: "Anchor", Sales: "2.5", Stock: "0", Command: "10", OrderFromLocation: "Shop 02", AvailableQty: "Shop 02: 6"},
		{ItemName: "Bolt & Nut", Sales: "4", Stock: "7", Command: "5", OrderFromLocation: "Warehouse, Shop 03", AvailableQty: "20, 9"},
		{ItemName: "Cable", Sales: "1", Stock: "0", Command: "0", OrderFromLocation: model.NotAvailable, AvailableQty: "0"},
	}
	if len(got) != len(want) {
		t.Fatalf("ProjectExport returned %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDigitsOnly(t *testing.T) {
	tests := map[string]string{
		"0":      "0",
		"12":     "12",
		" 1,200": "1200",
		"12.5":   "125",
		"":       "",
	}
	for in, want := range tests {
		if got := digitsOnly(in); got != want {
			t.Errorf("digitsOnly(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCellText(t *testing.T) {
	if got := cellText(zeroStockBadge); got != "0" {
		t.Errorf("cellText(badge) = %q, want 0", got)
	}
	if got := cellText("Bolt &amp; Nut"); got != "Bolt & Nut" {
		t.Errorf("cellText(escaped) = %q", got)
	}
}
