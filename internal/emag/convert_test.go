package emag_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/emag-catalog/internal/emag"
	domain "github.com/donaldgifford/emag-catalog/pkg/types"
)

func decode[T any](t *testing.T, raw string) *T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return &v
}

func boolPtr(b bool) *bool { return &b }

func TestCategoryIDFromDeeplink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		deeplink string
		want     string
	}{
		{name: "parameter followed by others", deeplink: "emag://products/category_id=123&x=1", want: "123"},
		{name: "parameter last", deeplink: "emag://nav?category_id=55", want: "55"},
		{name: "no parameter", deeplink: "emag://nav/laptops", want: ""},
		{name: "no deeplink", deeplink: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, emag.CategoryIDFromDeeplink(tt.deeplink))
		})
	}
}

func TestToCategories(t *testing.T) {
	t.Parallel()

	res := decode[emag.NavAllResult](t, `{
		"navs": [
			{"id": 1, "name": "Laptops", "url": "/nav/laptops?ref=home", "deeplink": "emag://x/category_id=123&x=1"},
			{"id": "2", "name": "Phones", "url": "/nav/phones"}
		],
		"count": 2
	}`)

	got := emag.ToCategories(res)

	assert.Equal(t, []domain.Category{
		{Name: "Laptops", URL: "/nav/laptops", ID: "123"},
		{Name: "Phones", URL: "/nav/phones"},
	}, got)

	out, err := json.Marshal(got[1])
	require.NoError(t, err)
	assert.NotContains(t, string(out), `"id"`)
}

func TestToCategories_Nil(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []domain.Category{}, emag.ToCategories(nil))
}

func TestToChildCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []domain.Category
	}{
		{
			name: "first children widget",
			raw: `{
				"name": "Laptops",
				"widgets": [
					{"type": "products", "children": [{"name": "ignored", "url": "/nav/x"}]},
					{"type": "children", "children": [
						{"name": "Gaming", "url": "/nav/gaming?a=b", "deeplink": "emag://c/category_id=9"}
					]},
					{"type": "children", "children": [{"name": "second", "url": "/nav/y"}]}
				]
			}`,
			want: []domain.Category{{Name: "Gaming", URL: "/nav/gaming", ID: "9"}},
		},
		{
			name: "no widgets",
			raw:  `{"name": "Leaf"}`,
			want: []domain.Category{},
		},
		{
			name: "children widget without children",
			raw:  `{"widgets": [{"type": "children"}]}`,
			want: []domain.Category{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, emag.ToChildCategories(decode[emag.Nav](t, tt.raw)))
		})
	}
}

func TestFlattenCharacteristics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		groups []emag.CharacteristicGroup
		want   []string
	}{
		{
			name: "value with unit",
			groups: []emag.CharacteristicGroup{{
				Name: "Color",
				Characteristics: []emag.Characteristic{{
					Name: "Shade",
					Value: &emag.CharacteristicValue{
						Value:         "Red",
						UnitOfMeasure: &emag.UnitOfMeasure{Symbol: "x"},
					},
				}},
			}},
			want: []string{"Color:\n- Shade: Redx"},
		},
		{
			name: "order preserved across groups",
			groups: []emag.CharacteristicGroup{
				{
					Name: "Display",
					Characteristics: []emag.Characteristic{
						{Name: "Size", Value: &emag.CharacteristicValue{Value: "15.6", UnitOfMeasure: &emag.UnitOfMeasure{Symbol: "\""}}},
						{Name: "Panel", Value: &emag.CharacteristicValue{Value: "IPS"}},
					},
				},
				{
					Name:            "CPU",
					Characteristics: []emag.Characteristic{{Name: "Cores", Value: &emag.CharacteristicValue{Value: "8"}}},
				},
			},
			want: []string{
				"Display:\n- Size: 15.6\"\n- Panel: IPS",
				"CPU:\n- Cores: 8",
			},
		},
		{
			name: "missing value",
			groups: []emag.CharacteristicGroup{{
				Name:            "Misc",
				Characteristics: []emag.Characteristic{{Name: "Note"}},
			}},
			want: []string{"Misc:\n- Note: "},
		},
		{
			name:   "no groups",
			groups: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, emag.FlattenCharacteristics(tt.groups))
		})
	}
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		price *emag.OfferPrice
		want  string
	}{
		{name: "prefix and suffix", price: &emag.OfferPrice{Current: "4999.99", Suffix: " Lei"}, want: "4999.99 Lei"},
		{name: "literal number kept", price: &emag.OfferPrice{Current: "100.10", Prefix: "de la "}, want: "de la 100.10"},
		{name: "nil price", price: nil, want: ""},
		{name: "no current value", price: &emag.OfferPrice{Suffix: " Lei"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, emag.FormatPrice(tt.price))
		})
	}
}

func TestToSearchResult(t *testing.T) {
	t.Parallel()

	res := decode[emag.SearchResult](t, `{
		"title": "laptop",
		"deeplink": "emag://search/laptop",
		"items": [
			{
				"id": 1,
				"name": "Laptop A",
				"part_number_key": "DA1",
				"characteristics": {"listing": [
					{"name": "CPU", "characteristics": [{"name": "Model", "value": {"value": "M3"}}]}
				]},
				"offer": {
					"price": {"current": 4999.99, "prefix": "", "suffix": " Lei"},
					"availability": {"code": "in_stock", "text": "In stoc"}
				},
				"feedback": {"rating": 4.5, "reviews": {"count": 12}}
			},
			{"id": "2", "name": "Laptop B", "part_number_key": "DB2"}
		],
		"filters": {"items": [
			{
				"id": 7885,
				"name": "Tip procesor",
				"is_selected": false,
				"choice_type": "multiple",
				"items": [{"id": 31004, "name": "Apple M3", "count": 4, "is_selected": true}]
			}
		]},
		"pagination": {"items_count": 2}
	}`)

	got := emag.ToSearchResult(res)

	assert.False(t, got.IsRedirect())
	assert.Equal(t, 2, got.NextPageOffset)
	require.Len(t, got.Items, 2)

	assert.Equal(t, domain.ListingItem{
		ProductID:      "DA1",
		Title:          "Laptop A",
		Specifications: []string{"CPU:\n- Model: M3"},
		Rating:         floatPtr(4.5),
		RatingCount:    intPtr(12),
		Price:          "4999.99 Lei",
		Availability:   "In stoc",
	}, got.Items[0])

	assert.Equal(t, domain.ListingItem{ProductID: "DB2", Title: "Laptop B"}, got.Items[1])

	assert.Equal(t, []domain.Filter{{
		ID:         "7885",
		Name:       "Tip procesor",
		ChoiceType: "multiple",
		Options:    []domain.FilterOption{{ID: "31004", Name: "Apple M3", IsSelected: true}},
	}}, got.Filters)
}

func TestToSearchResult_Redirect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		deeplink    string
		wantID      string
		wantMessage string
	}{
		{
			name:        "id followed by more params",
			deeplink:    "emag://products/category_id=2172&ref=search",
			wantID:      "2172",
			wantMessage: "Use search with `category` set to 2172 instead",
		},
		{
			name:        "id at the end",
			deeplink:    "emag://x?y=2&category_id=77",
			wantID:      "77",
			wantMessage: "Use search with `category` set to 77 instead",
		},
		{
			name:        "marker without =",
			deeplink:    "emag://search/category_id:123",
			wantMessage: "Search resolved to a single category; search with its `category` id instead",
		},
		{
			name:        "empty value",
			deeplink:    "emag://x?category_id=&a=1",
			wantMessage: "Search resolved to a single category; search with its `category` id instead",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := emag.ToSearchResult(&emag.SearchResult{
				Deeplink:   tt.deeplink,
				Items:      []emag.SearchItem{{Name: "ignored", PartNumberKey: "X"}},
				Pagination: &emag.Pagination{ItemsCount: intPtr(40)},
			})

			assert.True(t, got.IsRedirect())
			assert.Equal(t, tt.wantID, got.RedirectCategoryID)
			assert.Equal(t, tt.wantMessage, got.Message)
			assert.Empty(t, got.Items)
			assert.Zero(t, got.NextPageOffset)
		})
	}
}

func TestToSearchResult_NumericCharacteristicValue(t *testing.T) {
	t.Parallel()

	got := emag.ToSearchResult(decode[emag.SearchResult](t, `{
		"items": [{
			"name": "Laptop",
			"characteristics": {"listing": [{"name": "Memory", "characteristics": [
				{"name": "RAM", "value": {"value": 16, "unit_of_measure": {"symbol": " GB"}}}
			]}]}
		}]
	}`))

	require.Len(t, got.Items, 1)
	assert.Equal(t, []string{"Memory:\n- RAM: 16 GB"}, got.Items[0].Specifications)
}

func TestToSearchResult_SparsePayload(t *testing.T) {
	t.Parallel()

	got := emag.ToSearchResult(decode[emag.SearchResult](t, `{"items": [{"name": "Only name"}]}`))

	assert.Equal(t, 1, got.NextPageOffset)
	assert.Equal(t, []domain.ListingItem{{Title: "Only name"}}, got.Items)
	assert.NotNil(t, got.Filters)
	assert.Empty(t, got.Filters)
}

func TestToProductDetail(t *testing.T) {
	t.Parallel()

	p := decode[emag.ProductDetails](t, `{
		"id": 99,
		"name": "Phone X",
		"part_number_key": "DPX",
		"characteristics": {
			"listing": [{"name": "ignored", "characteristics": []}],
			"visible": [{"name": "Memory", "characteristics": [
				{"name": "RAM", "value": {"value": "8", "unit_of_measure": {"name": "gigabyte", "symbol": " GB"}}}
			]}]
		},
		"feedback": {"rating": 4.8},
		"family": {"characteristics": [
			{"name": "Color", "products": [
				{"part_number_key": "DPX", "name": "Phone X Black", "label": "Black", "price": {"current": 3999, "suffix": " Lei"}, "status": "active", "is_selected": true},
				{"part_number_key": "DPY", "name": "Phone X White", "label": "White"}
			]}
		]}
	}`)

	got := emag.ToProductDetail(p)

	assert.Equal(t, domain.ProductDetail{
		ProductID:      "DPX",
		Title:          "Phone X",
		Specifications: []string{"Memory:\n- RAM: 8 GB"},
		Rating:         floatPtr(4.8),
		OtherOptions: []domain.ProductVariant{
			{ProductID: "DPX", Label: "Black", Price: "3999 Lei", IsSelected: true, Status: "active", Title: "Phone X Black"},
			{ProductID: "DPY", Label: "White", Title: "Phone X White"},
		},
	}, got)
}

func TestToProductDetail_Sparse(t *testing.T) {
	t.Parallel()

	got := emag.ToProductDetail(decode[emag.ProductDetails](t, `{"part_number_key": "D1", "name": "Bare"}`))

	assert.Equal(t, domain.ProductDetail{ProductID: "D1", Title: "Bare"}, got)
	assert.Equal(t, domain.ProductDetail{}, emag.ToProductDetail(nil))
}

func TestToReviews(t *testing.T) {
	t.Parallel()

	res := decode[emag.ReviewsResult](t, `{
		"count": 2,
		"items": [
			{
				"id": 1,
				"title": "Great",
				"content": "Works well",
				"is_bought": true,
				"rating": 5,
				"votes": 3,
				"product": {
					"name": "Phone X Black",
					"part_number_key": "DPX",
					"family_characteristics": {"characteristics": [
						{"name": "Color", "value": {"value": "Black"}},
						{"name": "Storage", "value": {"value": "128", "unit_of_measure": {"symbol": " GB"}}}
					]},
					"offer": {"price": {"current": 3999, "suffix": " Lei"}}
				}
			},
			{"id": 2, "content": "meh"}
		]
	}`)

	got := emag.ToReviews(res)

	require.Len(t, got, 2)
	assert.Equal(t, domain.Review{
		Title:   "Great",
		Content: "Works well",
		Product: &domain.ReviewProduct{
			Name:           "Phone X Black",
			ProductID:      "DPX",
			Specifications: "Color: Black\nStorage: 128",
			Price:          "3999 Lei",
		},
		ActuallyBought: boolPtr(true),
		Rating:         floatPtr(5),
		Votes:          intPtr(3),
	}, got[0])
	assert.Equal(t, domain.Review{Content: "meh"}, got[1])
}

func TestToReviews_Nil(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []domain.Review{}, emag.ToReviews(nil))
}
