package export

import (
	"testing"

	"shopreorder/model"
)

func TestLenientNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12", 12},
		{"1,200", 1200},
		{"3.5", 3.5},
		{"-4", 0},
		{"", 0},
		{"n/a", 0},
		{"1.2.3", 0},
	}
	for _, tt := range tests {
		if got := lenientNumber(tt.in); got != tt.want {
			t.Errorf("lenientNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	rows := []model.ExportRow{
		{ItemName: "A", Stock: "0", Command: "10"},
		{ItemName: "B", Stock: "4", Command: "0"},
		{ItemName: "C", Stock: "25", Command: "5"},
		{ItemName: "D", Stock: "-2", Command: "-5"},
	}

	got := Summarize(rows)
	want := Summary{TotalItems: 4, LowStock: 3, ZeroStock: 2, OrderNeeded: 2}
	if got != want {
		t.Errorf("Summarize = %+v, want %+v", got, want)
	}
}
