package storage

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"listing-feed/utils"
)

// ExcelReader reads raw listing records from the first sheet of an .xlsx
// export. Rows become header-keyed maps; header naming varies between source
// exports, so alias resolution happens downstream at ingestion.
type ExcelReader struct {
	filePath string
	logger   *utils.Logger
}

// NewExcelReader creates a new ExcelReader
func NewExcelReader(filePath string, logger *utils.Logger) *ExcelReader {
	return &ExcelReader{filePath: filePath, logger: logger}
}

// ReadRecords loads every data row keyed by its header cell. A missing or
// unreadable file is fatal for the batch; the caller decides to abort.
func (r *ExcelReader) ReadRecords() ([]map[string]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("excel file has no data rows")
	}

	header := rows[0]
	var records []map[string]string
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		rec := make(map[string]string, len(header))
		for i, h := range header {
			h = strings.TrimSpace(h)
			if h == "" {
				continue
			}
			if i < len(row) {
				rec[h] = row[i]
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}

	r.logger.Info("Read %d records from %s", len(records), r.filePath)
	return records, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
