// Package emag provides an eMAG mobile API client abstracted behind
// interfaces for testability, plus the query encoder and the projections
// that turn upstream payloads into the catalog types in pkg/types.
package emag

import (
	"context"
)

const (
	defaultBaseURL       = "https://sapi.emag.ro"
	defaultTokenURL      = "https://m-api.emag.ro/v2.0/user/details"
	defaultTokenHeader   = "x-tokens"
	defaultRequestSource = "mobile-app"
)

// Upstream paths.
const (
	pathTopCategories = "/nav/all"
	pathNav           = "/nav"
	pathSearch        = "/search-by-filters-with-redirect"
	pathProducts      = "/products/"
)

// Catalog defines the interface for reading the eMAG catalog. Every method
// returns the raw decoded payload; projections live in convert.go.
type Catalog interface {
	TopCategories(ctx context.Context) (*NavAllResult, error)
	Category(ctx context.Context, path string) (*Nav, error)
	Search(ctx context.Context, q SearchQuery) (*SearchResult, error)
	Product(ctx context.Context, productID string) (*ProductDetails, error)
	Reviews(ctx context.Context, productID string) (*ReviewsResult, error)
}

// TokenProvider defines the interface for obtaining the session credential.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}
