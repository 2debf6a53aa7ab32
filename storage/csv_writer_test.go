package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"listing-feed/models"
	"listing-feed/utils"
)

func TestCSVWriter_WritesHeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "feed.csv")
	w := NewCSVWriter(path, utils.NewLogger())

	rows := []models.OutputRow{
		{SKU: "A", FeedProductType: "saree", Price: 700, Quantity: 50},
		{SKU: "B", FeedProductType: "luggage", Price: 999, Quantity: 50},
	}
	if err := w.WriteRows(rows); err != nil {
		t.Fatalf("WriteRows error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(records))
	}
	if len(records[0]) != len(models.FeedColumns) {
		t.Fatalf("expected %d header columns, got %d", len(models.FeedColumns), len(records[0]))
	}
	if records[0][1] != "item_sku" || records[1][1] != "A" || records[2][1] != "B" {
		t.Fatalf("rows out of order or misaligned: %v / %v", records[1][:3], records[2][:3])
	}
}
