package orders

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"shopreorder/config"
	"shopreorder/database"
	"shopreorder/export"
	"shopreorder/filter"
	"shopreorder/model"
	"shopreorder/parsers"
	"shopreorder/render"
	"shopreorder/reorder"
)

// FileInput is one uploaded spreadsheet.
type FileInput struct {
	Name   string
	Reader io.Reader
}

// UploadRequest carries one upload. Nil day counts fall back to the
// configured defaults.
type UploadRequest struct {
	Shop         string
	Sales        FileInput
	Stock        FileInput
	SalesDays    *int
	ForecastDays *int
}

// View is one filter run: the engine's result and the table built from it.
type View struct {
	Result filter.Result
	Table  render.Table
}

// Controller owns the current snapshot. Uploads replace it wholesale;
// filters and exports read whichever snapshot is current when they start.
type Controller struct {
	db      *sqlx.DB
	mu      sync.RWMutex
	current *Snapshot
}

// NewController restores the last stored snapshot, if any.
func NewController(db *sqlx.DB) (*Controller, error) {
	c := &Controller{db: db}

	rec, rows, err := database.GetLatestSnapshot(db)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		c.current = snapshotFromRecord(*rec, rows)
		log.Info().Str("snapshot", rec.ID).Int("rows", len(rows)).Msg("restored snapshot")
	}
	return c, nil
}

// Current returns the current snapshot or nil before the first upload.
func (c *Controller) Current() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Upload runs the reorder calculation on the two files and makes the result
// the current snapshot. On any error the previous snapshot stays current.
func (c *Controller) Upload(ctx context.Context, req UploadRequest) (*Snapshot, error) {
	shop := strings.TrimSpace(req.Shop)
	if shop == "" {
		return nil, ErrNoShopSelected
	}
	if req.Sales.Reader == nil || req.Stock.Reader == nil {
		return nil, ErrMissingFiles
	}
	if req.Sales.Name == "" || req.Stock.Name == "" {
		return nil, ErrNoFilesSelected
	}
	if !parsers.AllowedFile(req.Sales.Name) || !parsers.AllowedFile(req.Stock.Name) {
		return nil, parsers.ErrUnsupportedFile
	}

	cfg := config.GetConfig()
	salesDays, forecastDays := cfg.SalesDays, cfg.ForecastDays
	if req.SalesDays != nil {
		salesDays = *req.SalesDays
	}
	if req.ForecastDays != nil {
		forecastDays = *req.ForecastDays
	}
	limits := parsers.Limits{MaxRows: cfg.MaxRows, MaxCols: cfg.MaxCols}

	sales, err := parsers.ReadSheet(req.Sales.Reader, req.Sales.Name, limits)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stock, err := parsers.ReadSheet(req.Stock.Reader, req.Stock.Name, limits)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := reorder.Calculate(sales, stock, reorder.Params{
		SalesDays:    salesDays,
		ForecastDays: forecastDays,
		SelectedShop: shop,
		StepSize:     cfg.StepSize,
	})
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		ID:        uuid.NewString(),
		Shop:      shop,
		CreatedAt: time.Now(),
		Message: fmt.Sprintf("Processed %d items for %s successfully (limited to first %d rows & max %d columns)",
			len(rows), shop, cfg.MaxRows, cfg.MaxCols),
		rows: rows,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := database.SaveSnapshot(c.db, snap.Record(), rows); err != nil {
		return nil, err
	}
	c.current = snap

	log.Info().Str("snapshot", snap.ID).Str("shop", shop).Int("rows", len(rows)).Msg("snapshot replaced")
	return snap, nil
}

// Filter applies q to the current snapshot and renders the result.
func (c *Controller) Filter(q filter.Query) (View, error) {
	snap := c.Current()
	if snap == nil {
		return View{}, ErrNoSnapshot
	}
	res := filter.Apply(snap.rows, q)
	return View{
		Result: res,
		Table:  render.BuildTable(res, collationTag()),
	}, nil
}

// Export builds the workbook for rows already projected from the table.
// The current snapshot fills the All Items sheet.
func (c *Controller) Export(ctx context.Context, rows []model.ExportRow) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var all []model.InventoryRow
	if snap := c.Current(); snap != nil {
		all = snap.rows
	}
	data, err := export.BuildWorkbook(rows, all)
	if err != nil {
		return nil, fmt.Errorf("failed to build export: %w", err)
	}
	log.Info().Int("rows", len(rows)).Int("bytes", len(data)).Msg("export built")
	return data, nil
}

// ExportView filters, renders and projects on the server, then exports.
func (c *Controller) ExportView(ctx context.Context, q filter.Query) ([]byte, error) {
	view, err := c.Filter(q)
	if err != nil {
		return nil, err
	}
	return c.Export(ctx, render.ProjectExport(view.Table))
}

func collationTag() language.Tag {
	tag, err := language.Parse(config.GetConfig().Language)
	if err != nil {
		log.Warn().Err(err).Msg("invalid collation language, using English")
		return language.English
	}
	return tag
}
