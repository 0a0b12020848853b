package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmart/petmart-api/internal/model"
	"github.com/petmart/petmart-api/internal/repository"
	"github.com/petmart/petmart-api/internal/service"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetUserID(t *testing.T) {
	c, _ := newTestContext()

	// JWT claims decode numbers as float64.
	c.Set("user_id", float64(42))
	uid, err := getUserID(c)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), uid)

	c.Set("user_id", "17")
	uid, err = getUserID(c)
	require.NoError(t, err)
	assert.Equal(t, uint64(17), uid)

	c.Set("user_id", nil)
	_, err = getUserID(c)
	assert.Error(t, err)
}

func TestRespondErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid quantity", service.ErrInvalidQuantity, http.StatusBadRequest},
		{"empty cart", service.ErrEmptyCart, http.StatusBadRequest},
		{"product not found", repository.ErrProductNotFound, http.StatusNotFound},
		{"reservation not found", repository.ErrReservationNotFound, http.StatusNotFound},
		{"forbidden", repository.ErrForbidden, http.StatusForbidden},
		{"invalid transition", repository.ErrInvalidTransition, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()
			require.NoError(t, respondError(c, tt.err))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRespondErrorValidationFields(t *testing.T) {
	c, rec := newTestContext()
	verr := &model.ValidationError{Fields: map[string]string{
		"phone": "phone must be 10 digits starting with 7, 8 or 9",
	}}
	require.NoError(t, respondError(c, verr))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "validation_failed", body.Error)
	assert.Contains(t, body.Fields, "phone")
}
