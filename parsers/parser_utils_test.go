package parsers

import (
	"io"
	"strings"
	"testing"
)

func TestSafeFloat(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  float64
	}{
		{"Integer", "12", 12},
		{"Padded decimal", " 3.5 ", 3.5},
		{"Negative", "-4", -4},
		{"Blank", "  ", -1},
		{"Letters", "12 pcs", -1},
		{"Nan text", "nan", -1},
		{"Thousands separator", "1,200", -1},
		{"Not a number", "--", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeFloat(tt.value, -1); got != tt.want {
				t.Errorf("SafeFloat(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestSkipBOM(t *testing.T) {
	got, err := io.ReadAll(SkipBOM(strings.NewReader("\xEF\xBB\xBFItem,Qty")))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "Item,Qty" {
		t.Errorf("SkipBOM = %q, want %q", got, "Item,Qty")
	}

	got, _ = io.ReadAll(SkipBOM(strings.NewReader("ab")))
	if string(got) != "ab" {
		t.Errorf("SkipBOM short input = %q, want %q", got, "ab")
	}
}

func TestFindColumn(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		keywords []string
		want     int
		wantErr  bool
	}{
		{"Sales keyword", []string{"Item", "Closing", "Qty Sold"}, SalesKeywords, 2, false},
		{"Stock keyword", []string{"Item", "Qty Sold", "Closing Balance"}, StockKeywords, 2, false},
		{"Case insensitive", []string{"ITEM", "OUTWARD"}, SalesKeywords, 1, false},
		{"Sales fallback", []string{"Item", "A", "B"}, SalesKeywords, 1, false},
		{"Stock fallback", []string{"Item", "A", "B"}, StockKeywords, 2, false},
		{"Stock fallback missing", []string{"Item", "A"}, StockKeywords, -1, true},
		{"No fallback set", []string{"Item", "A", "B"}, []string{"carton"}, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindColumn(tt.header, tt.keywords)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FindColumn() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FindColumn() = %d, want %d", got, tt.want)
			}
		})
	}
}
