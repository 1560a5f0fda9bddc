// utils/tabular.go
package utils

import (
	"bufio"
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"event-checkin-system/models"

	"github.com/xuri/excelize/v2"
)

// Table is an uploaded dataset: one header row plus data rows. Rows may be
// ragged (shorter than the header) — consumers must bounds-check.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadUpload parses an uploaded roster file by extension. Supported:
// .csv (UTF-8, BOM tolerated) and .xlsx (first sheet).
func ReadUpload(filename string, r io.Reader) (Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return readCSVTable(r)
	case ".xlsx":
		return readXLSXTable(r)
	default:
		return Table{}, models.ErrUnsupportedFormat
	}
}

func readCSVTable(r io.Reader) (Table, error) {
	br := bufio.NewReader(r)

	// Excel saves CSV with a UTF-8 BOM ("utf-8-sig"); strip it so the first
	// header cell matches.
	if b, err := br.Peek(3); err == nil && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = br.Discard(3)
	}

	cr := csv.NewReader(br)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, err
	}
	if len(records) == 0 {
		return Table{}, models.ErrEmptyUpload
	}
	return Table{Header: records[0], Rows: records[1:]}, nil
}

func readXLSXTable(r io.Reader) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, models.ErrEmptyUpload
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, err
	}
	if len(rows) == 0 {
		return Table{}, models.ErrEmptyUpload
	}
	return Table{Header: rows[0], Rows: rows[1:]}, nil
}
