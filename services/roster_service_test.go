package services

import (
	"testing"
)

func TestParticipantFromRowValid(t *testing.T) {
	p, ok := participantFromRow(NormalizedRow{
		"name":         strptr("  Ana Smith "),
		"stake":        strptr("North"),
		"ward_branch":  strptr("First Ward"),
		"email":        strptr("ana@example.com"),
		"phone_number": nil,
		"tshirt_size":  strptr("M"),
	})
	if !ok {
		t.Fatal("valid row rejected")
	}
	if p.Name != "Ana Smith" {
		t.Fatalf("name not trimmed: %q", p.Name)
	}
	if p.Email == nil || *p.Email != "ana@example.com" {
		t.Fatalf("email lost: %v", p.Email)
	}
	if p.PhoneNumber != nil {
		t.Fatal("absent phone must stay nil")
	}
}

func TestParticipantFromRowRequiredFields(t *testing.T) {
	cases := []NormalizedRow{
		{"name": nil, "stake": strptr("North"), "ward_branch": strptr("First")},
		{"name": strptr("   "), "stake": strptr("North"), "ward_branch": strptr("First")},
		{"name": strptr("Ana"), "stake": strptr(""), "ward_branch": strptr("First")},
		{"name": strptr("Ana"), "stake": strptr("North"), "ward_branch": nil},
	}
	for i, row := range cases {
		if _, ok := participantFromRow(row); ok {
			t.Fatalf("case %d: row with missing required field accepted", i)
		}
	}
}

func TestParticipantFromRowKeepsEmptyOptionalDistinct(t *testing.T) {
	// Empty string is a value; nil is absence. Both must survive.
	p, ok := participantFromRow(NormalizedRow{
		"name":        strptr("Ana"),
		"stake":       strptr("North"),
		"ward_branch": strptr("First"),
		"email":       strptr(""),
		"tshirt_size": nil,
	})
	if !ok {
		t.Fatal("row rejected")
	}
	if p.Email == nil {
		t.Fatal("empty-string email collapsed to nil")
	}
	if p.TshirtSize != nil {
		t.Fatal("absent tshirt size became a value")
	}
}
