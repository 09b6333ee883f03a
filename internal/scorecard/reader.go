package scorecard

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// rowsFromFile reads the raw cell rows of a score card. CSV files are
// read headerless with ragged rows allowed; .xlsx/.xlsm workbooks go
// through excelize, first sheet only (the cards are single-sheet
// exports).
func rowsFromFile(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return rowsFromWorkbook(path)
	default:
		return rowsFromCSV(path)
	}
}

func rowsFromCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open score card: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // hand-written cards have ragged rows

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read score card rows: %w", err)
	}
	return rows, nil
}

func rowsFromWorkbook(path string) ([][]string, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}
