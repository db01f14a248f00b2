package parsers

import (
	"fmt"
	"strings"
)

var (
	SalesKeywords = []string{"sale", "sales", "qty", "sold", "outward"}
	StockKeywords = []string{"stock", "closing", "balance", "current"}
)

// FindColumn returns the index of the first header containing any of the
// keywords, case-insensitively. Sales-like keyword sets fall back to
// column 1 and stock-like sets to column 2 when nothing matches.
func FindColumn(header []string, keywords []string) (int, error) {
	for i, col := range header {
		lower := strings.ToLower(col)
		for _, kw := range keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return i, nil
			}
		}
	}
	if hasAny(keywords, "sales", "sale", "qty") && len(header) > 1 {
		return 1, nil
	}
	if hasAny(keywords, "stock", "closing", "balance") && len(header) > 2 {
		return 2, nil
	}
	return -1, fmt.Errorf("no column found for %v. Columns found: %v", keywords, header)
}

func hasAny(list []string, want ...string) bool {
	for _, v := range list {
		for _, w := range want {
			if v == w {
				return true
			}
		}
	}
	return false
}
