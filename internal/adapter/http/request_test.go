package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewardo/reward-flight-search/internal/domain"
)

// newRangeContext builds an echo context carrying the range search path
// parameters and the given raw query string.
func newRangeContext(origin, destination, from, to, query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("origin", "destination", "from", "to")
	c.SetParamValues(origin, destination, from, to)
	return c
}

// newCheapestContext builds an echo context carrying the cheapest search
// path parameters and the given raw query string.
func newCheapestContext(origin, destination, cabin, query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("origin", "destination", "cabinType")
	c.SetParamValues(origin, destination, cabin)
	return c
}

func TestParseRangeSearchParams_Valid(t *testing.T) {
	c := newRangeContext("LHR", "JFK", "2024-06-01", "2024-06-30", "")

	params, err := ParseRangeSearchParams(c)

	require.NoError(t, err)
	assert.Equal(t, "LHR", params.Origin)
	assert.Equal(t, "JFK", params.Destination)
	assert.Equal(t, "2024-06-01", params.FromDate.Format("2006-01-02"))
	assert.Equal(t, "2024-06-30", params.ToDate.Format("2006-01-02"))
	assert.Equal(t, domain.PageRequest{Number: 0, Size: DefaultRangePageSize}, params.Page)
}

func TestParseRangeSearchParams_NormalizesCase(t *testing.T) {
	c := newRangeContext("lhr", "jfk", "2024-06-01", "2024-06-30", "")

	params, err := ParseRangeSearchParams(c)

	require.NoError(t, err)
	assert.Equal(t, "LHR", params.Origin)
	assert.Equal(t, "JFK", params.Destination)
}

func TestParseRangeSearchParams_ExplicitPagination(t *testing.T) {
	query := url.Values{
		"page-number": {"3"},
		"page-size":   {"25"},
	}
	c := newRangeContext("LHR", "JFK", "2024-06-01", "2024-06-30", query.Encode())

	params, err := ParseRangeSearchParams(c)

	require.NoError(t, err)
	assert.Equal(t, domain.PageRequest{Number: 3, Size: 25}, params.Page)
}

func TestParseRangeSearchParams_CollectsAllErrors(t *testing.T) {
	query := url.Values{
		"page-number": {"-1"},
		"page-size":   {"0"},
	}
	c := newRangeContext("LOND", "J1", "June 1st", "2024-13-45", query.Encode())

	_, err := ParseRangeSearchParams(c)

	require.Error(t, err)
	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)

	details := verrs.ToMap()
	assert.Contains(t, details, "origin")
	assert.Contains(t, details, "destination")
	assert.Contains(t, details, "from")
	assert.Contains(t, details, "to")
	assert.Contains(t, details, "page-number")
	assert.Contains(t, details, "page-size")
}

func TestParseRangeSearchParams_InvalidDates(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
	}{
		{"non-date text", "hello", "2024-06-30"},
		{"wrong format", "01-06-2024", "2024-06-30"},
		{"impossible day", "2024-06-01", "2024-06-32"},
		{"empty segment", "", "2024-06-30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newRangeContext("LHR", "JFK", tt.from, tt.to, "")

			_, err := ParseRangeSearchParams(c)

			assert.Error(t, err)
		})
	}
}

func TestParseCheapestSearchParams_Valid(t *testing.T) {
	for _, cabin := range []domain.CabinClass{domain.CabinEconomy, domain.CabinPremiumEconomy, domain.CabinBusiness} {
		c := newCheapestContext("LHR", "JFK", string(cabin), "")

		params, err := ParseCheapestSearchParams(c)

		require.NoError(t, err, "cabin=%s", cabin)
		assert.Equal(t, cabin, params.Cabin)
		assert.Equal(t, DefaultCheapestPageSize, params.Page.Size)
	}
}

func TestParseCheapestSearchParams_RejectsUnsearchableCabins(t *testing.T) {
	for _, cabin := range []string{"FIRST", "business", "SUITE", ""} {
		c := newCheapestContext("LHR", "JFK", cabin, "")

		_, err := ParseCheapestSearchParams(c)

		require.Error(t, err, "cabin=%q", cabin)
		var verrs *ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "cabinType")
	}
}

func TestParsePageRequest_Bounds(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
		want    domain.PageRequest
	}{
		{"defaults", "", false, domain.PageRequest{Number: 0, Size: 10}},
		{"valid values", "page-number=5&page-size=100", false, domain.PageRequest{Number: 5, Size: 100}},
		{"size at cap", "page-size=200", false, domain.PageRequest{Number: 0, Size: 200}},
		{"size above cap", "page-size=201", true, domain.PageRequest{}},
		{"zero size", "page-size=0", true, domain.PageRequest{}},
		{"negative size", "page-size=-10", true, domain.PageRequest{}},
		{"negative number", "page-number=-1", true, domain.PageRequest{}},
		{"non-integer number", "page-number=two", true, domain.PageRequest{}},
		{"non-integer size", "page-size=ten", true, domain.PageRequest{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newRangeContext("LHR", "JFK", "2024-06-01", "2024-06-30", tt.query)

			params, err := ParseRangeSearchParams(c)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, params.Page)
		})
	}
}

func TestValidationErrors_ErrorAndMap(t *testing.T) {
	errs := &ValidationErrors{}
	assert.False(t, errs.HasErrors())
	assert.Equal(t, "validation failed", errs.Error())

	errs.Add("origin", "origin is required")
	errs.Add("to", "to must be a valid date in YYYY-MM-DD format")

	assert.True(t, errs.HasErrors())
	assert.Equal(t, "origin is required", errs.Error())
	assert.Equal(t, map[string]string{
		"origin": "origin is required",
		"to":     "to must be a valid date in YYYY-MM-DD format",
	}, errs.ToMap())
}
