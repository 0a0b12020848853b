package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmart/petmart-api/internal/model"
)

func newFormContext(values url.Values) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func validProductForm() url.Values {
	return url.Values{
		"name":        {"Bruno"},
		"type":        {"dog"},
		"breed":       {"Beagle"},
		"age":         {"2 years"},
		"gender":      {"Male"},
		"description": {"Friendly beagle"},
		"price":       {"100.50"},
		"status":      {"available"},
	}
}

func TestParseProductFormOK(t *testing.T) {
	form, verr := parseProductForm(newFormContext(validProductForm()), true)
	require.Nil(t, verr)
	assert.Equal(t, "Bruno", form.Name)
	assert.Equal(t, model.PetDog, form.Type)
	assert.Equal(t, int64(10050), form.PriceCents)
	assert.Equal(t, model.StatusAvailable, form.Status)
}

func TestParseProductFormFieldErrors(t *testing.T) {
	values := validProductForm()
	values.Set("name", "")
	values.Set("type", "fish")
	values.Set("price", "-1")
	values.Set("status", "SOLD")

	_, verr := parseProductForm(newFormContext(values), false)
	require.NotNil(t, verr)
	for _, f := range []string{"name", "type", "price", "status"} {
		assert.Contains(t, verr.Fields, f)
	}
}

func TestParseProductFormStatusOmitted(t *testing.T) {
	values := validProductForm()
	values.Del("status")

	// Creation defaults a missing status to AVAILABLE.
	form, verr := parseProductForm(newFormContext(values), false)
	require.Nil(t, verr)
	assert.Equal(t, model.StatusAvailable, form.Status)

	// Updates must spell the status out so an omitted field cannot reset
	// an adopted product.
	_, verr = parseProductForm(newFormContext(values), true)
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "status")
}
