package orders

import (
	"time"

	"shopreorder/model"
)

// Snapshot is the result set of one successful upload. It is never
// modified after it is built; a new upload produces a new Snapshot.
type Snapshot struct {
	ID        string
	Shop      string
	Message   string
	CreatedAt time.Time
	rows      []model.InventoryRow
}

// Rows returns a copy of the snapshot's rows in upload order.
func (s *Snapshot) Rows() []model.InventoryRow {
	out := make([]model.InventoryRow, len(s.rows))
	copy(out, s.rows)
	return out
}

// Len is the number of rows in the snapshot.
func (s *Snapshot) Len() int { return len(s.rows) }

// Record is the stored header for the snapshot.
func (s *Snapshot) Record() model.SnapshotRecord {
	return model.SnapshotRecord{
		ID:        s.ID,
		Shop:      s.Shop,
		Message:   s.Message,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339Nano),
		RowCount:  len(s.rows),
	}
}

func snapshotFromRecord(rec model.SnapshotRecord, rows []model.InventoryRow) *Snapshot {
	created, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	return &Snapshot{
		ID:        rec.ID,
		Shop:      rec.Shop,
		Message:   rec.Message,
		CreatedAt: created,
		rows:      rows,
	}
}
