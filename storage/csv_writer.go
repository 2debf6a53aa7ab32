package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"listing-feed/models"
	"listing-feed/utils"
)

// CSVWriter handles writing feed rows to a CSV file for quick inspection
type CSVWriter struct {
	filePath string
	logger   *utils.Logger
}

// NewCSVWriter creates a new CSVWriter
func NewCSVWriter(filePath string, logger *utils.Logger) *CSVWriter {
	return &CSVWriter{filePath: filePath, logger: logger}
}

// WriteRows writes the full column set plus one line per feed row
func (w *CSVWriter) WriteRows(rows []models.OutputRow) error {
	// Ensure output directory exists
	dir := filepath.Dir(w.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(w.filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(models.FeedColumns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range rows {
		if err := writer.Write(rows[i].Values()); err != nil {
			w.logger.Error("Failed to write CSV row for '%s': %v", rows[i].SKU, err)
		}
	}

	w.logger.Info("Feed rows written to: %s (%d rows)", w.filePath, len(rows))
	return nil
}
