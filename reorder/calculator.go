package reorder

import (
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog/log"

	"shopreorder/model"
	"shopreorder/parsers"
)

// minStockLevel is topped up for items that did not sell and are running low.
const minStockLevel = 10

// Params are the per-upload settings from the form.
type Params struct {
	SalesDays    int
	ForecastDays int
	SelectedShop string
	StepSize     int
}

type salesLine struct {
	sale     float64
	stock    float64
	forecast float64
	order    float64
}

// Calculate builds one reorder row per item found in either sheet.
func Calculate(sales, stock *parsers.Sheet, p Params) ([]model.InventoryRow, error) {
	if p.StepSize <= 0 {
		p.StepSize = 5
	}
	sales.DropEmptyRows()

	salesCol, err := parsers.FindColumn(sales.Header, parsers.SalesKeywords)
	if err != nil {
		return nil, err
	}
	stockCol, err := parsers.FindColumn(sales.Header, parsers.StockKeywords)
	if err != nil {
		return nil, err
	}

	salesDays := float64(p.SalesDays)
	if salesDays < 1 {
		salesDays = 1
	}

	salesByItem := make(map[string]salesLine)
	var order []string
	for i := range sales.Rows {
		name := sales.Cell(i, 0)
		line := salesLine{
			sale:  parsers.SafeFloat(sales.Cell(i, salesCol), 0),
			stock: parsers.SafeFloat(sales.Cell(i, stockCol), 0),
		}
		line.forecast = line.sale / salesDays * float64(p.ForecastDays)
		line.order = math.Max(line.forecast-line.stock, 0)
		if _, seen := salesByItem[name]; !seen {
			salesByItem[name] = line
			order = append(order, name)
		}
	}

	layout := newStockLayout(stock.Header, p.SelectedShop)
	stockByItem := make(map[string]int)
	for i := range stock.Rows {
		name := stock.Cell(i, 0)
		if _, seen := stockByItem[name]; !seen {
			stockByItem[name] = i
			if _, inSales := salesByItem[name]; !inSales {
				order = append(order, name)
			}
		}
	}

	results := make([]model.InventoryRow, 0, len(order))
	for _, name := range order {
		if name == "" || strings.ToLower(name) == "nan" {
			continue
		}
		line, hasSales := salesByItem[name]
		stockRow, hasStock := stockByItem[name]

		switch {
		case !hasSales && hasStock:
			current := 0.0
			if len(layout.locations) > 0 {
				current = parsers.SafeFloat(stock.Cell(stockRow, layout.locations[0]), 0)
			}
			if current < minStockLevel {
				results = append(results, resolveSource(stock, stockRow, layout, name, 0, current, minStockLevel-current, p.StepSize))
			} else {
				results = append(results, noStockRow(name, 0, current, 0))
			}
		case hasSales:
			orderQty := line.order
			if line.sale == 0 && line.stock < minStockLevel {
				orderQty = minStockLevel - line.stock
			}
			if !hasStock {
				results = append(results, noStockRow(name, line.sale, line.stock, orderQty))
			} else {
				results = append(results, resolveSource(stock, stockRow, layout, name, line.sale, line.stock, orderQty, p.StepSize))
			}
		}
	}

	log.Info().
		Int("salesRows", len(sales.Rows)).
		Int("stockRows", len(stock.Rows)).
		Int("items", len(results)).
		Str("shop", p.SelectedShop).
		Msg("reorder calculated")
	return results, nil
}

// RoundUpToStep rounds qty up to the next multiple of step. Quantities
// below one unit past a multiple round down to it.
func RoundUpToStep(qty float64, step int) float64 {
	if qty <= 0 {
		return 0
	}
	s := float64(step)
	return math.Floor((qty+s-1)/s) * s
}

func noStockRow(name string, sale, stock, orderQty float64) model.InventoryRow {
	command := 0.0
	if orderQty > 0 {
		command = math.Trunc(orderQty)
	}
	return model.InventoryRow{
		ItemName:          name,
		Sales:             sale,
		Stock:             stock,
		Command:           command,
		OrderFromLocation: model.NotAvailable,
		AvailableQty:      "0",
	}
}

func formatQty(v float64) string {
	return fmt.Sprintf("%d", int64(v))
}
