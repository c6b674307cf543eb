// Package mfapi retrieves mutual fund NAV histories from the free
// api.mfapi.in service and turns them into price series.
package mfapi

import (
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/indexlab/cagr"
	"github.com/indexlab/cagr/date"
	"github.com/shopspring/decimal"
)

// baseURL is a variable so tests can point the package at a local server.
var baseURL = "https://api.mfapi.in"

// Scheme describes a mutual fund scheme as reported by the service.
type Scheme struct {
	Code      int64
	Name      string
	FundHouse string
	Category  string
}

// Fetch retrieves the full NAV history of a scheme and returns it as a
// price series along with the scheme metadata. Responses are cached on
// disk for a day, so repeated analyses do not hammer the service.
func Fetch(schemeCode int64) (Scheme, *cagr.Series, error) {
	// https://api.mfapi.in/mf/119551
	// {
	//   "meta": {
	//     "fund_house": "...",
	//     "scheme_type": "Open Ended Schemes",
	//     "scheme_category": "Equity Scheme - Large Cap Fund",
	//     "scheme_code": 119551,
	//     "scheme_name": "..."
	//   },
	//   "data": [ {"date": "17-01-2025", "nav": "104.29060"}, ... ],
	//   "status": "SUCCESS"
	// }
	// data is newest first, dates are day-first, navs are decimal strings.

	addr := fmt.Sprintf("%s/mf/%d", baseURL, schemeCode)

	type jnav struct {
		Date date.Date `json:"date"`
		Nav  string    `json:"nav"`
	}
	type payload struct {
		Meta struct {
			FundHouse  string `json:"fund_house"`
			Category   string `json:"scheme_category"`
			SchemeCode int64  `json:"scheme_code"`
			SchemeName string `json:"scheme_name"`
		} `json:"meta"`
		Data   []jnav `json:"data"`
		Status string `json:"status"`
	}

	var content payload
	if err := jwget(newDailyCachingClient(), addr, &content); err != nil {
		return Scheme{}, nil, fmt.Errorf("cannot fetch scheme %d: %w", schemeCode, err)
	}
	if content.Status != "SUCCESS" {
		return Scheme{}, nil, fmt.Errorf("scheme %d: service returned status %q", schemeCode, content.Status)
	}

	scheme := Scheme{
		Code:      content.Meta.SchemeCode,
		Name:      content.Meta.SchemeName,
		FundHouse: content.Meta.FundHouse,
		Category:  content.Meta.Category,
	}

	obs := make([]cagr.Observation, 0, len(content.Data))
	for _, nav := range content.Data {
		// NAVs arrive as decimal strings; parse them exactly before
		// handing floats to the engine.
		d, err := decimal.NewFromString(nav.Nav)
		if err != nil {
			return Scheme{}, nil, fmt.Errorf("scheme %d: invalid nav %q on %s: %w", schemeCode, nav.Nav, nav.Date, err)
		}
		if d.IsZero() {
			// The service reports 0.00000 on non-business days for some
			// schemes; those are not real quotes.
			continue
		}
		obs = append(obs, cagr.Observation{Date: nav.Date, Price: d.InexactFloat64()})
	}

	series, err := cagr.NewSeries(obs)
	if err != nil {
		return Scheme{}, nil, fmt.Errorf("scheme %d: %w", schemeCode, err)
	}
	return scheme, series, nil
}

// Latest returns the most recent NAV of a scheme.
func Latest(schemeCode int64) (float64, error) {
	addr := fmt.Sprintf("%s/mf/%d/latest", baseURL, schemeCode)
	var jobj any
	if err := jwget(new(http.Client), addr, &jobj); err != nil {
		return 0, fmt.Errorf("cannot fetch latest nav of scheme %d: %w", schemeCode, err)
	}
	path := "$.data[0].nav"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("scheme %d: %q %w", schemeCode, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	str, ok := jval.(string)
	if !ok {
		return 0, fmt.Errorf("scheme %d: %q is not a nav string: %v", schemeCode, path, jval)
	}
	d, err := decimal.NewFromString(str)
	if err != nil {
		return 0, fmt.Errorf("scheme %d: invalid nav %q: %w", schemeCode, str, err)
	}
	return d.InexactFloat64(), nil
}
