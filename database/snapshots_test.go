package database

import (
	"reflect"
	"testing"

	"github.com/jmoiron/sqlx"

	"shopreorder/model"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGetLatestSnapshot_Empty(t *testing.T) {
	db := setupTestDB(t)

	rec, rows, err := GetLatestSnapshot(db)
	if err != nil {
		t.Fatalf("GetLatestSnapshot: %v", err)
	}
	if rec != nil || rows != nil {
		t.Errorf("GetLatestSnapshot on empty db = %+v, %v; want nil, nil", rec, rows)
	}
}

func TestSaveSnapshot_Replaces(t *testing.T) {
	db := setupTestDB(t)

	first := []model.InventoryRow{
		{ItemName: "Old", Sales: 1, Stock: 1, Command: 5, OrderFromLocation: "Warehouse", AvailableQty: "9"},
	}
	if err := SaveSnapshot(db, model.SnapshotRecord{ID: "s1", Shop: "Shop 01", CreatedAt: "2024-01-01T00:00:00Z"}, first); err != nil {
		t.Fatalf("SaveSnapshot first: %v", err)
	}

	second := []model.InventoryRow{
		{ItemName: "Zeta", Sales: 2.5, Stock: 0, Command: 10, OrderFromLocation: "Shop 02", AvailableQty: "Shop 02: 6"},
		{ItemName: "Alpha", Sales: 0, Stock: 12, Command: 0, OrderFromLocation: model.NotAvailable, AvailableQty: "0"},
	}
	rec := model.SnapshotRecord{ID: "s2", Shop: "Shop 03", Message: "done", CreatedAt: "2024-01-02T00:00:00Z"}
	if err := SaveSnapshot(db, rec, second); err != nil {
		t.Fatalf("SaveSnapshot second: %v", err)
	}

	got, rows, err := GetLatestSnapshot(db)
	if err != nil {
		t.Fatalf("GetLatestSnapshot: %v", err)
	}
	if got == nil || got.ID != "s2" || got.Shop != "Shop 03" || got.RowCount != 2 {
		t.Fatalf("latest snapshot = %+v, want s2 for Shop 03 with 2 rows", got)
	}
	if !reflect.DeepEqual(rows, second) {
		t.Errorf("rows = %+v, want %+v", rows, second)
	}

	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM snapshots`); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("stored snapshots = %d, want 1", count)
	}
}
