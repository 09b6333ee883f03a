// Package exporter serializes the record table to CSV, both for the
// dashboard's download action and for the scorecards CLI.
package exporter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"parkpulse/internal/config"
	"parkpulse/internal/dashboard"
)

// utf8BOM helps spreadsheet applications recognize UTF-8; the score
// cards carry Korean venue and player names.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Document is an in-memory CSV document.
type Document struct {
	Header []string
	Rows   [][]string
	BOM    bool
}

// RecordsDocument builds the export document from the displayed
// record table (date, venue, name, score), BOM included.
func RecordsDocument(rows []dashboard.Row) Document {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string{r.Date, r.Venue, r.Name, fmt.Sprintf("%d", r.Score)}
	}
	return Document{
		Header: config.ExportHeader,
		Rows:   out,
		BOM:    true,
	}
}

// Bytes renders the document.
func (d Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if d.BOM {
		buf.Write(utf8BOM)
	}

	w := csv.NewWriter(&buf)
	if len(d.Header) > 0 {
		if err := w.Write(d.Header); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}
	for i, row := range d.Rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes the document to path, creating parent directories.
func WriteFile(path string, doc Document) error {
	data, err := doc.Bytes()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
