package reorder

import (
	"strings"

	"shopreorder/model"
	"shopreorder/parsers"
)

const (
	sourceWarehouse    = "Warehouse"
	sourceInsufficient = "Insufficient Stock"
)

// stockLayout classifies the stock sheet columns once per upload.
type stockLayout struct {
	header    []string
	locations []int
	warehouse int
	// shops are the other shops' columns, excluding the one being restocked.
	shops []int
}

func newStockLayout(header []string, selectedShop string) stockLayout {
	l := stockLayout{header: header, warehouse: -1}

	carton := -1
	if len(header) > 2 {
		carton = len(header) - 1
	}
	for i := 1; i < len(header); i++ {
		if i != carton {
			l.locations = append(l.locations, i)
		}
	}

	for _, col := range l.locations {
		lower := strings.ToLower(header[col])
		if l.warehouse < 0 && (strings.Contains(lower, "warehouse") || strings.Contains(lower, "wh")) {
			l.warehouse = col
		}
		if !strings.Contains(lower, "warehouse") &&
			strings.TrimSpace(header[col]) != strings.TrimSpace(selectedShop) &&
			strings.Contains(lower, "shop") {
			l.shops = append(l.shops, col)
		}
	}
	return l
}

// bestShop returns the other shop holding the most stock of the item. The
// first column wins ties.
func (l stockLayout) bestShop(sheet *parsers.Sheet, row int) (string, float64) {
	name, best := "", 0.0
	for _, col := range l.shops {
		qty := parsers.SafeFloat(sheet.Cell(row, col), 0)
		if qty > 0 && (name == "" || qty > best) {
			name, best = strings.TrimSpace(l.header[col]), qty
		}
	}
	return name, best
}

func (l stockLayout) warehouseQty(sheet *parsers.Sheet, row int) float64 {
	if l.warehouse < 0 {
		return 0
	}
	return parsers.SafeFloat(sheet.Cell(row, l.warehouse), 0)
}

// resolveSource picks where the order should come from: the warehouse if it
// covers the order, else the best other shop, else it is flagged as
// insufficient. Every source holding stock is then listed.
func resolveSource(sheet *parsers.Sheet, row int, l stockLayout, name string, sale, stock, orderQty float64, step int) model.InventoryRow {
	whQty := l.warehouseQty(sheet, row)
	shopName, shopQty := l.bestShop(sheet, row)

	command := RoundUpToStep(orderQty, step)
	var source, avail string
	switch {
	case whQty >= orderQty:
		source, avail = sourceWarehouse, formatQty(whQty)
	case shopName != "" && shopQty >= orderQty:
		source, avail = shopName, formatQty(shopQty)
	default:
		source = sourceInsufficient
		switch {
		case whQty > 0 && shopQty > 0:
			avail = "WH: " + formatQty(whQty) + ", " + shopName + ": " + formatQty(shopQty)
		case whQty > 0:
			avail = "WH: " + formatQty(whQty)
		case shopQty > 0:
			avail = shopName + ": " + formatQty(shopQty)
		default:
			avail = "0"
		}
	}

	var sources, availability []string
	if whQty > 0 {
		sources = append(sources, sourceWarehouse)
		availability = append(availability, formatQty(whQty))
	}
	if shopName != "" && shopQty > 0 {
		sources = append(sources, shopName)
		availability = append(availability, formatQty(shopQty))
	}
	if len(sources) > 0 {
		source = strings.Join(sources, ", ")
		avail = strings.Join(availability, ", ")
	}

	return model.InventoryRow{
		ItemName:          name,
		Sales:             sale,
		Stock:             stock,
		Command:           command,
		OrderFromLocation: source,
		AvailableQty:      avail,
	}
}
