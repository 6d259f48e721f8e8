package memberimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Canonical column names recognized in the input file.
const (
	ColEmail             = "email"
	ColFirstName         = "first_name"
	ColLastName          = "last_name"
	ColPhone             = "phone"
	ColCleanDate         = "clean_date"
	ColHomeGroup         = "home_group"
	ColListedInDirectory = "listed_in_directory"
	ColWillingToSponsor  = "willing_to_sponsor"
)

// requiredColumns must all appear in the header row.
var requiredColumns = []string{ColEmail, ColFirstName, ColLastName}

// Row is one raw record keyed by canonical column name.
type Row map[string]string

// ParseError indicates the input file itself is unusable. It aborts the
// whole run before any record is processed.
type ParseError struct {
	msg   string
	cause error
}

func (e *ParseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *ParseError) Unwrap() error { return e.cause }

// ParseFile reads the member CSV at path and returns one Row per data line.
func ParseFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{msg: fmt.Sprintf("open input file %q", path), cause: err}
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads member rows from the provided reader.
func Parse(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, &ParseError{msg: "read header row", cause: err}
	}

	columns := make([]string, len(header))
	seen := map[string]bool{}
	for i, name := range header {
		canonical := strings.ToLower(strings.TrimSpace(name))
		columns[i] = canonical
		seen[canonical] = true
	}
	for _, required := range requiredColumns {
		if !seen[required] {
			return nil, &ParseError{msg: fmt.Sprintf("missing required column %q", required)}
		}
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{msg: "read data row", cause: err}
		}
		row := Row{}
		for i, value := range record {
			if i < len(columns) {
				row[columns[i]] = value
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
