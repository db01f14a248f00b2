package main

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"shopreorder/config"
)

func useTempConfig(t *testing.T) {
	t.Helper()
	config.SetPath(filepath.Join(t.TempDir(), "reorder_config.json"))
	if _, err := config.LoadConfig(); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
}

func TestSaveConfigHandler(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"valid", `{"shops":["North"," South ",""],"defaultShop":"South","language":"de"}`, http.StatusOK},
		{"bad json", `{`, http.StatusBadRequest},
		{"unknown default shop", `{"shops":["North"],"defaultShop":"East"}`, http.StatusBadRequest},
		{"unknown default shop with default list", `{"defaultShop":"East"}`, http.StatusBadRequest},
		{"default shop from default list", `{"defaultShop":"Shop 03"}`, http.StatusOK},
		{"bad language", `{"language":"not a tag!"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useTempConfig(t)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/config", strings.NewReader(tt.body))
			SaveConfigHandler()(rec, req)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.status, rec.Body.String())
			}
		})
	}

	got := config.GetConfig()
	if got.SalesDays != config.Default().SalesDays {
		t.Errorf("SalesDays = %d, want default", got.SalesDays)
	}
}

func TestSaveConfigHandler_Persists(t *testing.T) {
	useTempConfig(t)

	rec := httptest.NewRecorder()
	body := `{"shops":["North"," South "],"defaultShop":"South","salesDays":7}`
	SaveConfigHandler()(rec, httptest.NewRequest(http.MethodPost, "/api/config", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	GetConfigHandler()(rec, httptest.NewRequest(http.MethodGet, "/api/config", nil))
	var got config.Config
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Shops) != 2 || got.Shops[1] != "South" || got.DefaultShop != "South" || got.SalesDays != 7 {
		t.Errorf("config = %+v", got)
	}
	if got.ForecastDays != 2 || got.StepSize != 5 {
		t.Errorf("defaults not applied: %+v", got)
	}
}

func TestRenderIndex(t *testing.T) {
	useTempConfig(t)

	tmpl := template.Must(template.New("index.html").Parse(
		`{{range .Shops}}<option>{{.}}</option>{{end}}|{{range .Statuses}}<li>{{.}}</li>{{end}}|{{.AlertDurationMS}}`))
	rec := httptest.NewRecorder()
	renderIndex(rec, tmpl)

	body := rec.Body.String()
	for _, want := range []string{"<option>Shop 01</option>", "<li>From Shops</li>", "|4000"} {
		if !strings.Contains(body, want) {
			t.Errorf("index missing %q: %s", want, body)
		}
	}
}
