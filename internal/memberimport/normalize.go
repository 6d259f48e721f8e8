package memberimport

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// emailCorrections maps known-bad addresses from the legacy roster to
// their corrected values.
var emailCorrections = map[string]string{
	"tonyjamedee@gmailcom": "tonyjamedee@gmail.com",
}

var (
	emailPattern  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	nonDigits     = regexp.MustCompile(`\D`)
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

const phoneDigits = 10

// NormalizedMember is the validated, canonical form of one input row.
type NormalizedMember struct {
	Email             string
	FirstName         string
	LastName          string
	Phone             *string
	CleanDate         *time.Time
	HomeGroupName     string
	ListedInDirectory bool
	WillingToSponsor  bool
}

// DisplayName joins the name parts for email greetings and reports.
func (m NormalizedMember) DisplayName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// RejectionError marks a row that failed validation. Rejected rows are
// counted as skipped, not failed.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string { return e.Reason }

// Normalize validates and canonicalizes a raw row. The returned warnings
// describe fields that were dropped without rejecting the record.
func Normalize(row Row) (*NormalizedMember, []string, error) {
	email := strings.ToLower(strings.TrimSpace(row[ColEmail]))
	if corrected, ok := emailCorrections[email]; ok {
		email = corrected
	}
	if email == "" {
		return nil, nil, &RejectionError{Reason: "No email provided"}
	}
	if !emailPattern.MatchString(email) {
		return nil, nil, &RejectionError{Reason: "Invalid email format"}
	}

	firstName := strings.TrimSpace(row[ColFirstName])
	lastName := strings.TrimSpace(row[ColLastName])
	if firstName == "" && lastName == "" {
		return nil, nil, &RejectionError{Reason: "No name provided"}
	}

	member := &NormalizedMember{
		Email:             email,
		FirstName:         firstName,
		LastName:          lastName,
		HomeGroupName:     strings.TrimSpace(row[ColHomeGroup]),
		ListedInDirectory: coerceBool(row[ColListedInDirectory]),
		WillingToSponsor:  coerceBool(row[ColWillingToSponsor]),
	}

	var warnings []string

	if phone := normalizePhone(row[ColPhone]); phone != "" {
		member.Phone = &phone
	}

	if raw := strings.TrimSpace(row[ColCleanDate]); raw != "" {
		if date, ok := parseISODate(raw); ok {
			member.CleanDate = &date
		} else {
			warnings = append(warnings, fmt.Sprintf("dropped invalid clean_date %q", raw))
		}
	}

	return member, warnings, nil
}

// normalizePhone strips non-digits and keeps the first ten digits when at
// least ten are present. Shorter values are dropped entirely.
func normalizePhone(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")
	if len(digits) < phoneDigits {
		return ""
	}
	return digits[:phoneDigits]
}

func coerceBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		return true
	}
	return false
}

func parseISODate(raw string) (time.Time, bool) {
	if !isoDatePattern.MatchString(raw) {
		return time.Time{}, false
	}
	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
