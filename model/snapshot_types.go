package model

// SnapshotRecord is the stored header of one upload's results.
type SnapshotRecord struct {
	ID        string `db:"id" json:"id"`
	Shop      string `db:"shop" json:"shop"`
	Message   string `db:"message" json:"message"`
	CreatedAt string `db:"created_at" json:"createdAt"`
	RowCount  int    `db:"row_count" json:"rowCount"`
}
