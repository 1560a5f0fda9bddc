package utils

import (
	"errors"
	"strings"
	"testing"

	"event-checkin-system/models"

	"github.com/xuri/excelize/v2"
)

func TestReadUploadCSV(t *testing.T) {
	in := "Name,Stake,Ward\nAna,North,First\nBen,South,Second\n"
	table, err := ReadUpload("roster.csv", strings.NewReader(in))
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(table.Header) != 3 || table.Header[0] != "Name" {
		t.Fatalf("header: %v", table.Header)
	}
	if len(table.Rows) != 2 || table.Rows[1][0] != "Ben" {
		t.Fatalf("rows: %v", table.Rows)
	}
}

func TestReadUploadCSVStripsBOM(t *testing.T) {
	in := "\xEF\xBB\xBFName,Stake\nAna,North\n"
	table, err := ReadUpload("roster.csv", strings.NewReader(in))
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if table.Header[0] != "Name" {
		t.Fatalf("BOM not stripped: %q", table.Header[0])
	}
}

func TestReadUploadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	_ = f.SetSheetRow(sheet, "A1", &[]interface{}{"Name", "Stake", "Ward"})
	_ = f.SetSheetRow(sheet, "A2", &[]interface{}{"Ana", "North", "First"})
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("build xlsx: %v", err)
	}

	table, err := ReadUpload("roster.xlsx", buf)
	if err != nil {
		t.Fatalf("read xlsx: %v", err)
	}
	if len(table.Header) != 3 || table.Header[2] != "Ward" {
		t.Fatalf("header: %v", table.Header)
	}
	if len(table.Rows) != 1 || table.Rows[0][0] != "Ana" {
		t.Fatalf("rows: %v", table.Rows)
	}
}

func TestReadUploadUnsupportedExtension(t *testing.T) {
	_, err := ReadUpload("roster.pdf", strings.NewReader("whatever"))
	if !errors.Is(err, models.ErrUnsupportedFormat) {
		t.Fatalf("want ErrUnsupportedFormat, got %v", err)
	}
}

func TestReadUploadEmptyCSV(t *testing.T) {
	_, err := ReadUpload("roster.csv", strings.NewReader(""))
	if !errors.Is(err, models.ErrEmptyUpload) {
		t.Fatalf("want ErrEmptyUpload, got %v", err)
	}
}
