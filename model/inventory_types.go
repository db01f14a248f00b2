package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// NotAvailable is the location given to items that no source can supply.
const NotAvailable = "Not Available"

// InventoryRow is one reorder suggestion. Numeric fields are normalized to
// float64 when the row is built or decoded.
type InventoryRow struct {
	ItemName          string  `db:"item_name" json:"Item Name"`
	Sales             float64 `db:"sales" json:"Sales"`
	Stock             float64 `db:"stock" json:"Stock"`
	Command           float64 `db:"command" json:"Command"`
	OrderFromLocation string  `db:"order_from_location" json:"Order From Location"`
	AvailableQty      string  `db:"available_qty" json:"Available Qty"`
}

type rawInventoryRow struct {
	ItemName          json.RawMessage `json:"Item Name"`
	Sales             json.RawMessage `json:"Sales"`
	Stock             json.RawMessage `json:"Stock"`
	Command           json.RawMessage `json:"Command"`
	OrderFromLocation json.RawMessage `json:"Order From Location"`
	AvailableQty      json.RawMessage `json:"Available Qty"`
}

// UnmarshalJSON accepts numbers or numeric strings for the numeric fields.
func (r *InventoryRow) UnmarshalJSON(data []byte) error {
	var raw rawInventoryRow
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = InventoryRow{
		ItemName:          jsonText(raw.ItemName),
		Sales:             jsonNumber(raw.Sales),
		Stock:             jsonNumber(raw.Stock),
		Command:           jsonNumber(raw.Command),
		OrderFromLocation: jsonText(raw.OrderFromLocation),
		AvailableQty:      jsonText(raw.AvailableQty),
	}
	return nil
}

// NeedsOrder reports whether the row asks for a non-zero quantity from an
// actual source.
func (r InventoryRow) NeedsOrder() bool {
	return r.Command != 0 && r.OrderFromLocation != NotAvailable
}

// ZeroStock reports whether the row has nothing left on hand.
func (r InventoryRow) ZeroStock() bool {
	return r.Stock <= 0
}

// ExportRow is a rendered row as sent to the export endpoint. Every field is
// the display text of its cell.
type ExportRow struct {
	ItemName          string `json:"Item Name"`
	Sales             string `json:"Sales"`
	Stock             string `json:"Stock"`
	Command           string `json:"Command"`
	OrderFromLocation string `json:"Order From Location"`
	AvailableQty      string `json:"Available Qty"`
}

// ParseNumber converts display or wire text to a number. Anything that does
// not parse is 0.
func ParseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatNumber renders a number the way it is shown in the table: no
// trailing zeros, no exponent.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func jsonText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return FormatNumber(f)
	}
	return string(raw)
}

func jsonNumber(raw json.RawMessage) float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return ParseNumber(s)
	}
	return 0
}
