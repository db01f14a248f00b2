package filter

import (
	"fmt"
	"strings"

	"shopreorder/model"
)

// Status names as shown in the filter drop-down. Matching is exact.
const (
	StatusAll          = "All Orders"
	StatusNoOrders     = "No Orders"
	StatusCommand      = "Command"
	StatusWarehouse    = "From Warehouse"
	StatusShops        = "From Shops"
	StatusInsufficient = "Insufficient Stock"
	StatusZeroStock    = "Zero Stock"
)

// Statuses returns the filter vocabulary in display order.
func Statuses() []string {
	return []string{
		StatusAll,
		StatusNoOrders,
		StatusCommand,
		StatusWarehouse,
		StatusShops,
		StatusInsufficient,
		StatusZeroStock,
	}
}

// Query is one search box and status selector state. An empty Status
// means All Orders.
type Query struct {
	Search string `json:"search"`
	Status string `json:"status"`
}

// Result is the subset a query selected plus the counts for the info line.
type Result struct {
	Rows       []model.InventoryRow `json:"rows"`
	Matched    int                  `json:"matched"`
	Total      int                  `json:"total"`
	FilterName string               `json:"filterName"`
}

// Summary is the text of the info line above the table.
func (r Result) Summary() string {
	return fmt.Sprintf("Showing %d of %d items (%s)", r.Matched, r.Total, r.FilterName)
}

// Apply selects the rows matching q. The input slice is never modified and
// the returned rows keep their relative order.
func Apply(rows []model.InventoryRow, q Query) Result {
	search := strings.ToLower(q.Search)
	pred := predicate(q.Status)

	matched := make([]model.InventoryRow, 0, len(rows))
	for _, row := range rows {
		if !strings.Contains(strings.ToLower(row.ItemName), search) {
			continue
		}
		if pred != nil && !pred(row) {
			continue
		}
		matched = append(matched, row)
	}

	name := q.Status
	if name == "" {
		name = StatusAll
	}
	return Result{
		Rows:       matched,
		Matched:    len(matched),
		Total:      len(rows),
		FilterName: name,
	}
}

// predicate returns nil when the status does not narrow the search.
func predicate(status string) func(model.InventoryRow) bool {
	switch status {
	case "", StatusAll:
		return nil
	case StatusNoOrders:
		return func(r model.InventoryRow) bool {
			return r.Command == 0 || r.OrderFromLocation == model.NotAvailable
		}
	case StatusCommand:
		return isCommand
	}

	label := labelPredicate(status)
	return func(r model.InventoryRow) bool {
		if !r.NeedsOrder() {
			return false
		}
		return label == nil || label(r)
	}
}

func isCommand(r model.InventoryRow) bool {
	if r.Command <= 0 || r.OrderFromLocation == model.NotAvailable {
		return false
	}
	if IsShopLocation(r.OrderFromLocation) {
		return AvailableShopQty(r) >= MinShopQty
	}
	return true
}

// labelPredicate narrows rows that already need an order. Unknown labels
// return nil and keep every such row.
func labelPredicate(status string) func(model.InventoryRow) bool {
	switch status {
	case StatusWarehouse:
		return func(r model.InventoryRow) bool {
			return strings.Contains(strings.ToLower(r.OrderFromLocation), "warehouse")
		}
	case StatusShops:
		return func(r model.InventoryRow) bool {
			return IsShopLocation(r.OrderFromLocation) && AvailableShopQty(r) >= MinShopQty
		}
	case StatusInsufficient:
		return func(r model.InventoryRow) bool {
			return strings.Contains(strings.ToLower(r.OrderFromLocation), "insufficient")
		}
	case StatusZeroStock:
		return model.InventoryRow.ZeroStock
	}
	return nil
}
