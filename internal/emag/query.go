package emag

import (
	"net/url"
	"strconv"
)

// PriceFacetID is the facet upstream reserves for price ranges.
const PriceFacetID = "6411"

// SearchQuery is the structured filter state of a faceted search. Nil
// fields are absent and produce no key at all.
type SearchQuery struct {
	Text       string
	CategoryID *int
	// CustomFilters maps a facet id to the selected option ids.
	CustomFilters map[string][]string
	MinPrice      *float64
	MaxPrice      *float64
	PageOffset    *int
}

// Encode serializes the query into upstream's bracket-indexed dialect.
//
// Several options under one facet each get their own slot key, numbered
// from zero per facet; a shared key would keep only the last option.
// The result is sorted by key, so equal queries encode identically.
func (q SearchQuery) Encode() string {
	return q.Values().Encode()
}

// Values returns the query as url.Values.
func (q SearchQuery) Values() url.Values {
	params := url.Values{}

	if q.Text != "" {
		params.Set("filters[query]", q.Text)
	}

	if q.CategoryID != nil {
		params.Set("filters[category][]", strconv.Itoa(*q.CategoryID))
	}

	for facet, options := range q.CustomFilters {
		seen := make(map[string]struct{}, len(options))
		slot := 0
		for _, option := range options {
			if _, dup := seen[option]; dup {
				continue
			}
			seen[option] = struct{}{}
			params.Set("filters[custom_filter]["+facet+"]["+strconv.Itoa(slot)+"]", option)
			slot++
		}
	}

	// Zero is a valid lower bound.
	if q.MinPrice != nil && q.MaxPrice != nil {
		params.Set(
			"filters[price]["+PriceFacetID+"]",
			formatNumber(*q.MinPrice)+"-"+formatNumber(*q.MaxPrice),
		)
	}

	if q.PageOffset != nil {
		params.Set("page[offset]", strconv.Itoa(*q.PageOffset))
	}

	return params
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
