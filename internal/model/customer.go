package model

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// CustomerInfo carries the contact details a customer submits with a
// reservation request. PreferredVisitDate uses the "2006-01-02" layout.
type CustomerInfo struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Address            string `json:"address"`
	PreferredVisitDate string `json:"preferred_visit_date"`
	Message            string `json:"message,omitempty"`
}

// ValidationError reports field-level validation failures. Fields maps a
// field name to a human-readable reason so that the UI can render the
// message next to the offending input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

const visitDateLayout = "2006-01-02"

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z ]{2,50}$`)
	phoneRe = regexp.MustCompile(`^[7-9][0-9]{9}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Validate checks the customer info against the reservation constraints:
// name 2-50 letters/spaces, phone exactly 10 digits starting with 7/8/9,
// RFC-shaped email, message at most 500 characters, visit date today or
// later, non-empty address. It returns nil when everything passes, or a
// ValidationError naming every failing field.
func (ci *CustomerInfo) Validate(now time.Time) error {
	fields := map[string]string{}

	if !nameRe.MatchString(strings.TrimSpace(ci.Name)) {
		fields["name"] = "name must be 2-50 characters, letters and spaces only"
	}
	if !phoneRe.MatchString(strings.TrimSpace(ci.Phone)) {
		fields["phone"] = "phone must be 10 digits starting with 7, 8 or 9"
	}
	if !emailRe.MatchString(strings.TrimSpace(ci.Email)) {
		fields["email"] = "email address is not valid"
	}
	if strings.TrimSpace(ci.Address) == "" {
		fields["address"] = "address is required"
	}
	// Characters, not bytes: multibyte messages count by rune.
	if utf8.RuneCountInString(ci.Message) > 500 {
		fields["message"] = "message must be at most 500 characters"
	}
	if d, err := time.Parse(visitDateLayout, strings.TrimSpace(ci.PreferredVisitDate)); err != nil {
		fields["preferred_visit_date"] = "preferred visit date must be in YYYY-MM-DD format"
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if d.Before(today) {
			fields["preferred_visit_date"] = "preferred visit date must be today or later"
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
