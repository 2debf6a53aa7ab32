package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"listing-feed/models"
	"listing-feed/utils"
)

// ExcelWriter writes assembled feed rows into an .xlsx the destination
// platform's bulk-upload feature accepts: one header row with the full fixed
// column set, then one row per OutputRow in order.
type ExcelWriter struct {
	filePath string
	logger   *utils.Logger
}

// NewExcelWriter creates a new ExcelWriter
func NewExcelWriter(filePath string, logger *utils.Logger) *ExcelWriter {
	return &ExcelWriter{filePath: filePath, logger: logger}
}

// WriteRows writes all rows plus the header to the output workbook
func (w *ExcelWriter) WriteRows(rows []models.OutputRow) error {
	dir := filepath.Dir(w.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(models.FeedColumns))
	for i, col := range models.FeedColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range rows {
		values := rows[i].Values()
		cells := make([]interface{}, len(values))
		for j, v := range values {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to build cell ref for row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(w.filePath); err != nil {
		return fmt.Errorf("failed to save excel file: %w", err)
	}

	w.logger.Info("Feed written to: %s (%d rows)", w.filePath, len(rows))
	return nil
}
