package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"shopreorder/model"
)

// ReplaceSnapshotInTx drops every stored snapshot and writes rec with its
// rows. Only the latest upload is ever kept.
func ReplaceSnapshotInTx(tx *sqlx.Tx, rec model.SnapshotRecord, rows []model.InventoryRow) error {
	if _, err := tx.Exec(`DELETE FROM snapshot_rows`); err != nil {
		return fmt.Errorf("failed to clear snapshot rows: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM snapshots`); err != nil {
		return fmt.Errorf("failed to clear snapshots: %w", err)
	}

	rec.RowCount = len(rows)
	if _, err := tx.NamedExec(`
		INSERT INTO snapshots (id, shop, message, created_at, row_count)
		VALUES (:id, :shop, :message, :created_at, :row_count)`, rec); err != nil {
		return fmt.Errorf("failed to insert snapshot %s: %w", rec.ID, err)
	}

	const q = `
		INSERT INTO snapshot_rows (
			snapshot_id, position, item_name, sales, stock, command,
			order_from_location, available_qty
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	stmt, err := tx.Prepare(q)
	if err != nil {
		return fmt.Errorf("failed to prepare snapshot row insert statement: %w", err)
	}
	defer stmt.Close()

	for i, r := range rows {
		if _, err := stmt.Exec(
			rec.ID, i, r.ItemName, r.Sales, r.Stock, r.Command,
			r.OrderFromLocation, r.AvailableQty,
		); err != nil {
			return fmt.Errorf("failed to insert snapshot row for %s: %w", r.ItemName, err)
		}
	}
	return nil
}

// SaveSnapshot replaces the stored snapshot in a single transaction.
func SaveSnapshot(db *sqlx.DB, rec model.SnapshotRecord, rows []model.InventoryRow) error {
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := ReplaceSnapshotInTx(tx, rec, rows); err != nil {
		return err
	}
	return tx.Commit()
}

// GetLatestSnapshot returns the stored snapshot and its rows in upload
// order. A nil record means nothing has been uploaded.
func GetLatestSnapshot(db *sqlx.DB) (*model.SnapshotRecord, []model.InventoryRow, error) {
	var rec model.SnapshotRecord
	err := db.Get(&rec, `
		SELECT id, shop, message, created_at, row_count
		FROM snapshots
		ORDER BY created_at DESC
		LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}

	rows := []model.InventoryRow{}
	err = db.Select(&rows, `
		SELECT item_name, sales, stock, command, order_from_location, available_qty
		FROM snapshot_rows
		WHERE snapshot_id = ?
		ORDER BY position`, rec.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get rows for snapshot %s: %w", rec.ID, err)
	}
	return &rec, rows, nil
}
