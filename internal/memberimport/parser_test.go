package memberimport

import (
	"errors"
	"strings"
	"testing"
)

func TestParseReadsRowsByHeader(t *testing.T) {
	input := "email,first_name,last_name,phone\n" +
		"a@example.com,Ann,Adams,225-555-0001\n" +
		"b@example.com,Bob,Brown,\n"

	rows, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][ColEmail] != "a@example.com" || rows[0][ColFirstName] != "Ann" {
		t.Fatalf("unexpected first row %v", rows[0])
	}
	if rows[1][ColPhone] != "" {
		t.Fatalf("expected empty phone, got %q", rows[1][ColPhone])
	}
}

func TestParseNormalizesHeaderCase(t *testing.T) {
	input := "Email,FIRST_NAME,Last_Name\nc@example.com,Cara,Cole\n"

	rows, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if rows[0][ColEmail] != "c@example.com" {
		t.Fatalf("expected canonical header mapping, got %v", rows[0])
	}
}

func TestParseMissingRequiredColumn(t *testing.T) {
	input := "email,first_name\nd@example.com,Dana\n"

	_, err := Parse(strings.NewReader(input))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if !strings.Contains(parseErr.Error(), "last_name") {
		t.Fatalf("expected missing column name in error, got %v", parseErr)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile("/nonexistent/members.csv")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}
