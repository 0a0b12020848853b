package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

func validCustomer() CustomerInfo {
	return CustomerInfo{
		Name:               "Asha Rao",
		Email:              "asha@example.com",
		Phone:              "9876543210",
		Address:            "12 Lake View Road",
		PreferredVisitDate: "2026-09-15",
		Message:            "Weekend visit preferred",
	}
}

func TestCustomerInfoValidateOK(t *testing.T) {
	ci := validCustomer()
	assert.NoError(t, ci.Validate(testNow))
}

func TestCustomerInfoValidateFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CustomerInfo)
		field  string
	}{
		{"name too short", func(ci *CustomerInfo) { ci.Name = "A" }, "name"},
		{"name too long", func(ci *CustomerInfo) { ci.Name = strings.Repeat("a", 51) }, "name"},
		{"name with digits", func(ci *CustomerInfo) { ci.Name = "Asha 2" }, "name"},
		{"phone wrong leading digit", func(ci *CustomerInfo) { ci.Phone = "1234567890" }, "phone"},
		{"phone too short", func(ci *CustomerInfo) { ci.Phone = "987654321" }, "phone"},
		{"phone too long", func(ci *CustomerInfo) { ci.Phone = "98765432101" }, "phone"},
		{"phone non-numeric", func(ci *CustomerInfo) { ci.Phone = "987654321x" }, "phone"},
		{"email missing at", func(ci *CustomerInfo) { ci.Email = "asha.example.com" }, "email"},
		{"email missing domain dot", func(ci *CustomerInfo) { ci.Email = "asha@example" }, "email"},
		{"empty address", func(ci *CustomerInfo) { ci.Address = "  " }, "address"},
		{"message too long", func(ci *CustomerInfo) { ci.Message = strings.Repeat("x", 501) }, "message"},
		{"visit date in the past", func(ci *CustomerInfo) { ci.PreferredVisitDate = "2026-08-30" }, "preferred_visit_date"},
		{"visit date malformed", func(ci *CustomerInfo) { ci.PreferredVisitDate = "31-08-2026" }, "preferred_visit_date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ci := validCustomer()
			tt.mutate(&ci)
			err := ci.Validate(testNow)
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestCustomerInfoValidateVisitDateToday(t *testing.T) {
	ci := validCustomer()
	ci.PreferredVisitDate = "2026-08-31"
	assert.NoError(t, ci.Validate(testNow), "today must be accepted")
}

func TestCustomerInfoValidateMessageBoundary(t *testing.T) {
	ci := validCustomer()
	ci.Message = strings.Repeat("x", 500)
	assert.NoError(t, ci.Validate(testNow), "exactly 500 characters is allowed")

	// The limit counts characters, not bytes: 300 two-byte runes are 600
	// bytes but still well under 500 characters.
	ci.Message = strings.Repeat("ü", 300)
	assert.NoError(t, ci.Validate(testNow), "multibyte messages count by rune")

	ci.Message = strings.Repeat("ü", 500)
	assert.NoError(t, ci.Validate(testNow), "exactly 500 runes is allowed")

	ci.Message = strings.Repeat("ü", 501)
	err := ci.Validate(testNow)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "message")
}

func TestCustomerInfoValidateReportsAllFields(t *testing.T) {
	ci := CustomerInfo{}
	err := ci.Validate(testNow)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	for _, f := range []string{"name", "email", "phone", "address", "preferred_visit_date"} {
		assert.Contains(t, verr.Fields, f)
	}
}
