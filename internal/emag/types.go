package emag

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Upstream payloads are feature-flagged and sparse. Nested objects are
// pointers and scalars fall back to their zero value; the projections in
// convert.go treat nil and empty alike.

// FlexString accepts a JSON string or number. Upstream ids switch between
// the two depending on the endpoint.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding string id: %w", err)
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decoding numeric id: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

// NavAllResult is the payload of /nav/all.
type NavAllResult struct {
	Navs  []Nav `json:"navs"`
	Limit int   `json:"limit"`
	Count int   `json:"count"`
}

// Nav is a catalog node. Drill-down children live in a widget of type
// "children".
type Nav struct {
	ID       FlexString  `json:"id"`
	ParentID FlexString  `json:"parent_id"`
	Name     string      `json:"name"`
	URL      string      `json:"url"`
	Deeplink string      `json:"deeplink"`
	Selected bool        `json:"selected"`
	Siblings []Nav       `json:"siblings,omitempty"`
	Widgets  []NavWidget `json:"widgets,omitempty"`
}

// NavWidget groups nodes or products under a nav entry.
type NavWidget struct {
	ID       FlexString `json:"id"`
	Type     string     `json:"type"`
	Name     string     `json:"name"`
	Children []Nav      `json:"children,omitempty"`
}

// SearchResult is the payload of /search-by-filters-with-redirect.
type SearchResult struct {
	Title      string              `json:"title"`
	Deeplink   string              `json:"deeplink,omitempty"`
	Items      []SearchItem        `json:"items"`
	Filters    *SearchFilterParent `json:"filters,omitempty"`
	Pagination *Pagination         `json:"pagination,omitempty"`
}

// Pagination holds the upstream pagination counters.
type Pagination struct {
	PositionItemStart *int `json:"position_item_start,omitempty"`
	PositionItemEnd   *int `json:"position_item_end,omitempty"`
	ItemsCount        *int `json:"items_count,omitempty"`
	ItemsPerPage      *int `json:"items_per_page,omitempty"`
}

// SearchItem is one listing in a search page.
type SearchItem struct {
	ID              FlexString       `json:"id"`
	Name            string           `json:"name"`
	PartNumberKey   string           `json:"part_number_key"`
	Characteristics *Characteristics `json:"characteristics,omitempty"`
	Offer           *Offer           `json:"offer,omitempty"`
	Feedback        *Feedback        `json:"feedback,omitempty"`
}

// Characteristics holds the grouped specifications. Listings carry the
// "listing" subset, product pages the "visible" one.
type Characteristics struct {
	Listing []CharacteristicGroup `json:"listing,omitempty"`
	Visible []CharacteristicGroup `json:"visible,omitempty"`
}

// CharacteristicGroup is a named group of characteristics.
type CharacteristicGroup struct {
	Name            string           `json:"name"`
	Characteristics []Characteristic `json:"characteristics"`
}

// Characteristic is a single name/value pair with an optional unit.
type Characteristic struct {
	ID    FlexString           `json:"id"`
	Name  string               `json:"name"`
	Value *CharacteristicValue `json:"value,omitempty"`
	Order int                  `json:"order"`
}

// CharacteristicValue is the value of a characteristic.
type CharacteristicValue struct {
	ID            FlexString     `json:"id"`
	Value         FlexString     `json:"value"`
	UnitOfMeasure *UnitOfMeasure `json:"unit_of_measure,omitempty"`
}

// UnitOfMeasure describes the unit appended to a value.
type UnitOfMeasure struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Offer is the main offer of a product.
type Offer struct {
	ID           FlexString         `json:"id"`
	Price        *OfferPrice        `json:"price,omitempty"`
	Availability *OfferAvailability `json:"availability,omitempty"`
}

// OfferPrice keeps the current price as the literal JSON number so it can
// be rendered exactly as supplied.
type OfferPrice struct {
	Current json.Number `json:"current"`
	Prefix  string      `json:"prefix"`
	Suffix  string      `json:"suffix"`
}

// OfferAvailability is the stock status shown to shoppers.
type OfferAvailability struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

// Feedback aggregates rating information.
type Feedback struct {
	Rating  *float64         `json:"rating,omitempty"`
	Reviews *FeedbackReviews `json:"reviews,omitempty"`
}

// FeedbackReviews carries the review counter.
type FeedbackReviews struct {
	Count *int `json:"count,omitempty"`
}

// SearchFilterParent wraps the facet list of a search page.
type SearchFilterParent struct {
	Type  string         `json:"type"`
	Items []SearchFilter `json:"items"`
}

// SearchFilter is a facet.
type SearchFilter struct {
	ID         FlexString         `json:"id"`
	Name       string             `json:"name"`
	IsSelected bool               `json:"is_selected"`
	ChoiceType string             `json:"choice_type"`
	Items      []SearchFilterItem `json:"items"`
}

// SearchFilterItem is an option of a facet.
type SearchFilterItem struct {
	ID         FlexString `json:"id"`
	Name       string     `json:"name"`
	Count      int        `json:"count"`
	IsSelected bool       `json:"is_selected"`
}

// ProductDetails is the payload of /products/<id>.
type ProductDetails struct {
	ID              FlexString       `json:"id"`
	Name            string           `json:"name"`
	PartNumberKey   string           `json:"part_number_key"`
	Characteristics *Characteristics `json:"characteristics,omitempty"`
	Offer           *Offer           `json:"offer,omitempty"`
	Feedback        *Feedback        `json:"feedback,omitempty"`
	Family          *Family          `json:"family,omitempty"`
}

// Family groups alternate configurations of the same product.
type Family struct {
	ID              FlexString             `json:"id"`
	Name            string                 `json:"name"`
	Characteristics []FamilyCharacteristic `json:"characteristics,omitempty"`
}

// FamilyCharacteristic is one axis of variation (colour, capacity, ...).
type FamilyCharacteristic struct {
	ID         FlexString      `json:"id"`
	Name       string          `json:"name"`
	IsSelected bool            `json:"is_selected"`
	Products   []FamilyProduct `json:"products,omitempty"`
}

// FamilyProduct is a sibling variant.
type FamilyProduct struct {
	ID            FlexString  `json:"id"`
	Name          string      `json:"name"`
	Label         string      `json:"label"`
	PartNumberKey string      `json:"part_number_key"`
	Price         *OfferPrice `json:"price,omitempty"`
	Status        string      `json:"status"`
	IsSelected    bool        `json:"is_selected"`
}

// ReviewsResult is the payload of /products/<id>/reviews.
type ReviewsResult struct {
	Count int       `json:"count"`
	Items []Comment `json:"items"`
}

// Comment is a question, answer or review. Only reviews are projected.
type Comment struct {
	ID        FlexString      `json:"id"`
	Type      string          `json:"type"`
	Title     string          `json:"title,omitempty"`
	Content   string          `json:"content"`
	Product   *CommentProduct `json:"product,omitempty"`
	IsBought  *bool           `json:"is_bought,omitempty"`
	Rating    *float64        `json:"rating,omitempty"`
	Votes     *int            `json:"votes,omitempty"`
	Published string          `json:"published,omitempty"`
}

// CommentProduct is the product summary embedded in a review.
type CommentProduct struct {
	ID                    FlexString             `json:"id"`
	Name                  string                 `json:"name"`
	PartNumberKey         string                 `json:"part_number_key"`
	FamilyCharacteristics *FamilyCharacteristics `json:"family_characteristics,omitempty"`
	Offer                 *Offer                 `json:"offer,omitempty"`
}

// FamilyCharacteristics lists the variant-defining values of a reviewed
// product.
type FamilyCharacteristics struct {
	Name            string           `json:"name"`
	Characteristics []Characteristic `json:"characteristics"`
}
