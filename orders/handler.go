package orders

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"shopreorder/export"
	"shopreorder/filter"
	"shopreorder/model"
	"shopreorder/render"
)

type UploadResponse struct {
	Success      bool                 `json:"success"`
	Data         []model.InventoryRow `json:"data"`
	SelectedShop string               `json:"selected_shop"`
	Message      string               `json:"message"`
	SnapshotID   string               `json:"snapshot_id"`
	Alert        model.Alert          `json:"alert"`
}

type ErrorResponse struct {
	Error string      `json:"error"`
	Alert model.Alert `json:"alert"`
}

type OrdersResponse struct {
	Rows       []model.InventoryRow `json:"rows"`
	Matched    int                  `json:"matched"`
	Total      int                  `json:"total"`
	FilterName string               `json:"filterName"`
	Summary    string               `json:"summary"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// writeError reports request problems as warnings and everything else as
// danger.
func writeError(w http.ResponseWriter, status int, message string) {
	sev := model.SeverityDanger
	if status < http.StatusInternalServerError {
		sev = model.SeverityWarning
	}
	writeJSON(w, status, ErrorResponse{Error: message, Alert: model.NewAlert(sev, message)})
}

func queryFrom(r *http.Request) filter.Query {
	q := r.URL.Query()
	return filter.Query{Search: q.Get("search"), Status: q.Get("status")}
}

// UploadHandler accepts the sales and stock sheets and replies with the new
// snapshot's rows.
func UploadHandler(ctrl *Controller, maxUploadMB int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadMB<<20)
		if err := r.ParseMultipartForm(maxUploadMB << 20); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("File too large. Maximum size is %dMB", maxUploadMB))
				return
			}
			writeError(w, http.StatusBadRequest, UserMessage(ErrMissingFiles))
			return
		}

		salesDays, err1 := formInt(r, "sales_days")
		forecastDays, err2 := formInt(r, "forecast_days")
		if err1 != nil || err2 != nil {
			writeError(w, http.StatusBadRequest, UserMessage(ErrBadDays))
			return
		}

		req := UploadRequest{
			Shop:         r.FormValue("selected_shop"),
			SalesDays:    salesDays,
			ForecastDays: forecastDays,
		}
		salesFile, salesName := formFile(r, "sales_file")
		stockFile, stockName := formFile(r, "stock_file")
		if salesFile != nil {
			defer salesFile.Close()
			req.Sales = FileInput{Name: salesName, Reader: salesFile}
		}
		if stockFile != nil {
			defer stockFile.Close()
			req.Stock = FileInput{Name: stockName, Reader: stockFile}
		}

		snap, err := ctrl.Upload(r.Context(), req)
		if err != nil {
			if IsUserError(err) {
				log.Warn().Err(err).Msg("upload rejected")
				writeError(w, http.StatusBadRequest, UserMessage(err))
				return
			}
			log.Error().Err(err).Msg("upload processing failed")
			writeError(w, http.StatusInternalServerError, "Processing error: "+err.Error())
			return
		}

		writeJSON(w, http.StatusOK, UploadResponse{
			Success:      true,
			Data:         snap.Rows(),
			SelectedShop: snap.Shop,
			Message:      snap.Message,
			SnapshotID:   snap.ID,
			Alert:        model.NewAlert(model.SeveritySuccess, snap.Message),
		})
	}
}

// formInt reads an optional whole-number field. A blank or absent field
// gives nil so the configured default applies; an explicit 0 is kept.
func formInt(r *http.Request, key string) (*int, error) {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func formFile(r *http.Request, key string) (multipart.File, string) {
	file, header, err := r.FormFile(key)
	if err != nil {
		return nil, ""
	}
	return file, header.Filename
}

// OrdersHandler returns the filtered rows in display order.
func OrdersHandler(ctrl *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := ctrl.Filter(queryFrom(r))
		if err != nil {
			writeError(w, http.StatusNotFound, UserMessage(err))
			return
		}
		writeJSON(w, http.StatusOK, OrdersResponse{
			Rows:       render.SortRows(view.Result.Rows, collationTag()),
			Matched:    view.Result.Matched,
			Total:      view.Result.Total,
			FilterName: view.Result.FilterName,
			Summary:    view.Result.Summary(),
		})
	}
}

// TableHandler returns the info line and tbody markup for the results table.
func TableHandler(ctrl *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := ctrl.Filter(queryFrom(r))
		if err != nil {
			writeError(w, http.StatusNotFound, UserMessage(err))
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, render.RenderFilterInfoHTML(view.Table.Info))
		fmt.Fprint(w, render.RenderTableHTML(view.Table))
	}
}

// ExportHandler turns the rows the page is showing into a workbook.
func ExportHandler(ctrl *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		var rows []model.ExportRow
		if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		data, err := ctrl.Export(r.Context(), rows)
		if err != nil {
			log.Error().Err(err).Msg("export failed")
			writeError(w, http.StatusInternalServerError, "Export failed: "+err.Error())
			return
		}
		writeWorkbook(w, data)
	}
}

// ExportViewHandler exports a filter run without a round trip through the
// page.
func ExportViewHandler(ctrl *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := ctrl.ExportView(r.Context(), queryFrom(r))
		if err != nil {
			if errors.Is(err, ErrNoSnapshot) {
				writeError(w, http.StatusNotFound, UserMessage(err))
				return
			}
			log.Error().Err(err).Msg("export failed")
			writeError(w, http.StatusInternalServerError, "Export failed: "+err.Error())
			return
		}
		writeWorkbook(w, data)
	}
}

func writeWorkbook(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+export.FileName)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if _, err := w.Write(data); err != nil {
		log.Error().Err(err).Msg("failed to write workbook")
	}
}

// SnapshotHandler describes the current snapshot.
func SnapshotHandler(ctrl *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := ctrl.Current()
		if snap == nil {
			writeError(w, http.StatusNotFound, UserMessage(ErrNoSnapshot))
			return
		}
		writeJSON(w, http.StatusOK, snap.Record())
	}
}
