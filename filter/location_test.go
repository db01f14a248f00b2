package filter

import (
	"testing"

	"shopreorder/model"
)

func TestIsShopLocation(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     bool
	}{
		{"Plain shop", "Shop 02", true},
		{"Padded lower case", "  shop 7 ", true},
		{"Warehouse", "Warehouse", false},
		{"Shop joined with warehouse", "Shop 03, Warehouse", false},
		{"Warehouse first", "Warehouse, Shop 03", false},
		{"Insufficient label", "Shop Insufficient Stock", false},
		{"Insufficient stock", "Insufficient Stock", false},
		{"Not available", model.NotAvailable, false},
		{"Empty", "", false},
		{"Shopfront prefix", "Shopfront", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsShopLocation(tt.location); got != tt.want {
				t.Errorf("IsShopLocation(%q) = %v, want %v", tt.location, got, tt.want)
			}
		})
	}
}

func TestAvailableShopQty(t *testing.T) {
	tests := []struct {
		name  string
		avail string
		want  float64
	}{
		{"Labelled", "Shop 02: 3", 3},
		{"Bare number", "7", 7},
		{"Not a number", "n/a", 0},
		{"Empty", "", 0},
		{"Decimal", "Shop 01: 4.5", 4.5},
		{"Takes the first colon", "WH: 12, Shop 04: 9", 12},
		{"Joined list", "6, 2", 6},
		{"Label without number", "Shop 02:", 0},
		{"Negative", "-2", -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := model.InventoryRow{AvailableQty: tt.avail}
			if got := AvailableShopQty(row); got != tt.want {
				t.Errorf("AvailableShopQty(%q) = %v, want %v", tt.avail, got, tt.want)
			}
		})
	}
}
