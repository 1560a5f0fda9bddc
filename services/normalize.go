package services

import (
	"strings"

	"event-checkin-system/utils"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CanonicalFields are the six participant attributes an upload can carry,
// in fixed output order.
var CanonicalFields = []string{"name", "stake", "ward_branch", "email", "phone_number", "tshirt_size"}

// headerSynonyms maps lower-cased, trimmed spreadsheet headers onto
// canonical fields. Anything not listed here is dropped.
var headerSynonyms = map[string]string{
	"name":           "name",
	"full name":      "name",
	"stake":          "stake",
	"ward/branch":    "ward_branch",
	"ward":           "ward_branch",
	"branch":         "ward_branch",
	"ward or branch": "ward_branch",
	"email":          "email",
	"e-mail":         "email",
	"phone":          "phone_number",
	"phone number":   "phone_number",
	"phone_no":       "phone_number",
	"tel":            "phone_number",
	"mobile":         "phone_number",
	"tshirt":         "tshirt_size",
	"t-shirt":        "tshirt_size",
	"tshirt size":    "tshirt_size",
	"shirt size":     "tshirt_size",
}

// NormalizedRow holds one upload row keyed by canonical field. Every
// canonical field is present; nil means the source had no such column
// or cell.
type NormalizedRow map[string]*string

// NormalizeColumns maps a raw upload table onto the canonical participant
// columns. It is total: unknown headers are dropped, missing canonical
// fields come out as all-nil columns, and the row count is preserved.
// Duplicate synonyms for the same field resolve to the last occurrence.
func NormalizeColumns(t utils.Table) []NormalizedRow {
	fold := cases.Lower(language.Und)

	// canonical field -> source column index
	colIdx := make(map[string]int, len(CanonicalFields))
	for i, h := range t.Header {
		key := strings.TrimSpace(fold.String(h))
		if canonical, ok := headerSynonyms[key]; ok {
			colIdx[canonical] = i
		}
	}

	rows := make([]NormalizedRow, 0, len(t.Rows))
	for _, raw := range t.Rows {
		row := make(NormalizedRow, len(CanonicalFields))
		for _, field := range CanonicalFields {
			i, ok := colIdx[field]
			if !ok || i >= len(raw) {
				row[field] = nil
				continue
			}
			v := raw[i]
			row[field] = &v
		}
		rows = append(rows, row)
	}
	return rows
}
