package filter

import (
	"strconv"
	"strings"

	"shopreorder/model"
)

// MinShopQty is the least stock another shop must hold before a transfer
// from it is suggested.
const MinShopQty = 5

// IsShopLocation reports whether location names a single shop rather than
// the warehouse or the insufficient-stock fallback.
func IsShopLocation(location string) bool {
	loc := strings.ToLower(strings.TrimSpace(location))
	return strings.HasPrefix(loc, "shop") &&
		!strings.Contains(loc, "warehouse") &&
		!strings.Contains(loc, "insufficient")
}

// AvailableShopQty reads the quantity out of the row's Available Qty text.
// "Shop 02: 3" and "3" both give 3; anything unreadable gives 0.
func AvailableShopQty(row model.InventoryRow) float64 {
	text := row.AvailableQty
	if i := strings.Index(text, ":"); i >= 0 {
		text = text[i+1:]
	}
	return leadingFloat(strings.TrimSpace(text))
}

// leadingFloat parses the longest numeric prefix of s, so "3, Warehouse"
// reads as 3.
func leadingFloat(s string) float64 {
	end := 0
	seenDigit, seenDot, seenExp := false, false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
			end = i + 1
		case (c == '+' || c == '-') && (i == 0 || s[i-1] == 'e' || s[i-1] == 'E'):
		case c == '.' && !seenDot && !seenExp:
			seenDot = true
		case (c == 'e' || c == 'E') && seenDigit && !seenExp:
			seenExp = true
		default:
			i = len(s)
		}
	}
	if !seenDigit {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}
