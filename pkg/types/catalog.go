// Package domain defines the catalog types returned by every surface of
// emag-catalog: the MCP tools, the REST API and the CLI.
package domain

// Category is a catalog node a caller can drill into or search within.
type Category struct {
	Name string `json:"name"`
	URL  string `json:"url"          jsonschema:"path to pass to get_product_category"`
	ID   string `json:"id,omitempty" jsonschema:"category id to pass to search"`
}

// CategoryList wraps a category listing.
type CategoryList struct {
	Categories []Category `json:"categories"`
}

// ListingItem is a product as shown on a search page.
type ListingItem struct {
	ProductID      string   `json:"product_id"`
	Title          string   `json:"title"`
	Specifications []string `json:"specifications,omitempty"`
	Rating         *float64 `json:"rating,omitempty"`
	RatingCount    *int     `json:"rating_count,omitempty"`
	Price          string   `json:"price,omitempty"`
	Availability   string   `json:"availability,omitempty"`
}

// FilterOption is a selectable value of a facet.
type FilterOption struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsSelected bool   `json:"is_selected"`
}

// Filter is a search facet with its options.
type Filter struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	IsSelected bool           `json:"is_selected"`
	ChoiceType string         `json:"choice_type,omitempty"`
	Options    []FilterOption `json:"options"`
}

// SearchResult is either a redirect suggestion or a page of listings.
type SearchResult struct {
	// Redirect is set when upstream resolved the query to a single category;
	// the caller should search that category instead. RedirectCategoryID is
	// empty when the deeplink names no usable id.
	Redirect           bool          `json:"redirect,omitempty"`
	RedirectCategoryID string        `json:"redirect_category_id,omitempty"`
	Message            string        `json:"message,omitempty"`
	NextPageOffset     int           `json:"next_page_offset"`
	Items              []ListingItem `json:"items"`
	Filters            []Filter      `json:"filters"`
}

// IsRedirect reports whether the result is a redirect suggestion.
func (r *SearchResult) IsRedirect() bool {
	return r.Redirect
}

// ProductVariant is an alternate configuration of the same product family.
type ProductVariant struct {
	ProductID  string `json:"product_id"`
	Label      string `json:"label"`
	Price      string `json:"price,omitempty"`
	IsSelected bool   `json:"is_selected"`
	Status     string `json:"status,omitempty"`
	Title      string `json:"title"`
}

// ProductDetail is the projection of a product page.
type ProductDetail struct {
	ProductID      string           `json:"product_id"`
	Title          string           `json:"title"`
	Specifications []string         `json:"specifications,omitempty"`
	Rating         *float64         `json:"rating,omitempty"`
	RatingCount    *int             `json:"rating_count,omitempty"`
	OtherOptions   []ProductVariant `json:"other_options,omitempty"`
}

// ReviewProduct is the product summary attached to a review.
type ReviewProduct struct {
	Name           string `json:"name"`
	ProductID      string `json:"product_id"`
	Specifications string `json:"specifications,omitempty"`
	Price          string `json:"price,omitempty"`
}

// Review is a single customer review.
type Review struct {
	Title          string         `json:"title,omitempty"`
	Content        string         `json:"content,omitempty"`
	Product        *ReviewProduct `json:"product,omitempty"`
	ActuallyBought *bool          `json:"actually_bought,omitempty"`
	Rating         *float64       `json:"rating,omitempty"`
	Votes          *int           `json:"votes,omitempty"`
}

// ReviewList wraps a product's reviews.
type ReviewList struct {
	Reviews []Review `json:"reviews"`
}
