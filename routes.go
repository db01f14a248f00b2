package main

import (
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"

	"shopreorder/config"
	"shopreorder/filter"
	"shopreorder/model"
	"shopreorder/orders"
)

func SetupRoutes(mux *http.ServeMux, ctrl *orders.Controller, env config.Env) {
	mux.HandleFunc("/upload", orders.UploadHandler(ctrl, env.MaxUploadMB))
	mux.HandleFunc("/export", orders.ExportHandler(ctrl))

	mux.HandleFunc("/api/orders", orders.OrdersHandler(ctrl))
	mux.HandleFunc("/api/orders/table", orders.TableHandler(ctrl))
	mux.HandleFunc("/api/orders/export", orders.ExportViewHandler(ctrl))
	mux.HandleFunc("/api/snapshot", orders.SnapshotHandler(ctrl))

	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			GetConfigHandler()(w, r)
		case http.MethodPost:
			SaveConfigHandler()(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})
}

type indexData struct {
	Shops           []string
	DefaultShop     string
	Statuses        []string
	SalesDays       int
	ForecastDays    int
	AlertDurationMS int64
}

func newIndexData() indexData {
	cfg := config.GetConfig()
	return indexData{
		Shops:           cfg.Shops,
		DefaultShop:     cfg.DefaultShop,
		Statuses:        filter.Statuses(),
		SalesDays:       cfg.SalesDays,
		ForecastDays:    cfg.ForecastDays,
		AlertDurationMS: model.AlertDuration.Milliseconds(),
	}
}

func indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	renderIndex(w, appTemplate)
}

func renderIndex(w http.ResponseWriter, tmpl *template.Template) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "index.html", newIndexData()); err != nil {
		log.Error().Err(err).Msg("error executing main template")
	}
}
