package services

import (
	"testing"

	"event-checkin-system/utils"
)

func strptr(s string) *string { return &s }

func TestNormalizeColumnsHeaderVariants(t *testing.T) {
	cases := []struct {
		header string
		field  string
	}{
		{"Name", "name"},
		{"  Full Name ", "name"},
		{"STAKE", "stake"},
		{"Ward", "ward_branch"},
		{"Branch", "ward_branch"},
		{"Ward/Branch", "ward_branch"},
		{"Ward or Branch", "ward_branch"},
		{"E-mail", "email"},
		{"Email", "email"},
		{"Phone", "phone_number"},
		{"Phone Number", "phone_number"},
		{"phone_no", "phone_number"},
		{"Tel", "phone_number"},
		{"Mobile", "phone_number"},
		{"TShirt", "tshirt_size"},
		{"T-Shirt", "tshirt_size"},
		{"Tshirt Size", "tshirt_size"},
		{"Shirt Size", "tshirt_size"},
	}

	for _, tc := range cases {
		rows := NormalizeColumns(utils.Table{
			Header: []string{tc.header},
			Rows:   [][]string{{"value"}},
		})
		if len(rows) != 1 {
			t.Fatalf("%q: want 1 row, got %d", tc.header, len(rows))
		}
		got := rows[0][tc.field]
		if got == nil || *got != "value" {
			t.Fatalf("%q: want %s=\"value\", got %v", tc.header, tc.field, got)
		}
	}
}

func TestNormalizeColumnsDropsUnknownHeaders(t *testing.T) {
	rows := NormalizeColumns(utils.Table{
		Header: []string{"Name", "Favourite Colour"},
		Rows:   [][]string{{"Ana", "green"}},
	})
	row := rows[0]
	if len(row) != len(CanonicalFields) {
		t.Fatalf("want exactly %d canonical fields, got %d", len(CanonicalFields), len(row))
	}
	if _, ok := row["favourite colour"]; ok {
		t.Fatal("unknown header leaked into normalized row")
	}
	if row["name"] == nil || *row["name"] != "Ana" {
		t.Fatalf("name not mapped: %v", row["name"])
	}
}

func TestNormalizeColumnsSynthesizesMissingFields(t *testing.T) {
	rows := NormalizeColumns(utils.Table{
		Header: []string{"Name"},
		Rows:   [][]string{{"Ana"}, {"Ben"}},
	})
	if len(rows) != 2 {
		t.Fatalf("row count changed: %d", len(rows))
	}
	for _, row := range rows {
		for _, field := range CanonicalFields {
			if _, ok := row[field]; !ok {
				t.Fatalf("canonical field %q missing from normalized row", field)
			}
		}
		if row["email"] != nil || row["phone_number"] != nil || row["tshirt_size"] != nil || row["stake"] != nil {
			t.Fatal("missing source columns must normalize to nil")
		}
	}
}

func TestNormalizeColumnsRaggedRow(t *testing.T) {
	rows := NormalizeColumns(utils.Table{
		Header: []string{"Name", "Stake", "Email"},
		Rows:   [][]string{{"Ana", "North"}}, // short row, no email cell
	})
	if rows[0]["email"] != nil {
		t.Fatalf("missing cell must be nil, got %q", *rows[0]["email"])
	}
	if rows[0]["stake"] == nil || *rows[0]["stake"] != "North" {
		t.Fatal("present cell lost")
	}
}
