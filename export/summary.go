package export

import (
	"strconv"
	"strings"

	"shopreorder/model"
)

// Summary holds the counts written to the Summary sheet.
type Summary struct {
	TotalItems  int
	LowStock    int
	ZeroStock   int
	OrderNeeded int
}

const lowStockLimit = 10

// Summarize counts over rows using lenientNumber, so negative or labelled
// values count as 0.
func Summarize(rows []model.ExportRow) Summary {
	s := Summary{TotalItems: len(rows)}
	for _, r := range rows {
		stock := lenientNumber(r.Stock)
		if stock < lowStockLimit {
			s.LowStock++
		}
		if stock == 0 {
			s.ZeroStock++
		}
		if lenientNumber(r.Command) > 0 {
			s.OrderNeeded++
		}
	}
	return s
}

func (s Summary) metrics() [][2]interface{} {
	return [][2]interface{}{
		{"Total Items", s.TotalItems},
		{"Low Stock (<10)", s.LowStock},
		{"Zero Stock (0)", s.ZeroStock},
		{"Order Needed (Command > 0)", s.OrderNeeded},
	}
}

// lenientNumber accepts digits with optional thousands commas and dots.
// Anything else, including a sign, is 0.
func lenientNumber(s string) float64 {
	s = strings.ReplaceAll(s, ",", "")
	digits := strings.ReplaceAll(s, ".", "")
	if digits == "" {
		return 0
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
