package emag

import (
	"fmt"
	"strings"

	domain "github.com/donaldgifford/emag-catalog/pkg/types"
)

const deeplinkCategoryParam = "category_id="

// ToCategories converts the top-level navigation into domain categories.
func ToCategories(res *NavAllResult) []domain.Category {
	if res == nil {
		return []domain.Category{}
	}
	return toCategories(res.Navs)
}

// ToChildCategories returns the children of a nav node, taken from its
// first widget of type "children". A node without one has no children.
func ToChildCategories(nav *Nav) []domain.Category {
	if nav == nil {
		return []domain.Category{}
	}
	for i := range nav.Widgets {
		if nav.Widgets[i].Type == "children" {
			return toCategories(nav.Widgets[i].Children)
		}
	}
	return []domain.Category{}
}

func toCategories(navs []Nav) []domain.Category {
	out := make([]domain.Category, 0, len(navs))
	for i := range navs {
		out = append(out, domain.Category{
			Name: navs[i].Name,
			URL:  stripQuery(navs[i].URL),
			ID:   CategoryIDFromDeeplink(navs[i].Deeplink),
		})
	}
	return out
}

// CategoryIDFromDeeplink extracts the category_id parameter from an
// upstream deeplink. It returns "" when the deeplink or the parameter is
// missing.
func CategoryIDFromDeeplink(deeplink string) string {
	_, after, found := strings.Cut(deeplink, deeplinkCategoryParam)
	if !found {
		return ""
	}
	id, _, _ := strings.Cut(after, "&")
	return id
}

// ToSearchResult converts a search payload. A deeplink carrying a
// category id means upstream resolved the query to a category: the result
// is then a redirect suggestion and any items are dropped.
func ToSearchResult(res *SearchResult) domain.SearchResult {
	out := domain.SearchResult{
		Items:   []domain.ListingItem{},
		Filters: []domain.Filter{},
	}
	if res == nil {
		return out
	}

	if strings.Contains(res.Deeplink, "category_id") {
		out.Redirect = true
		out.RedirectCategoryID = CategoryIDFromDeeplink(res.Deeplink)
		if out.RedirectCategoryID == "" {
			out.Message = "Search resolved to a single category; search with its `category` id instead"
			return out
		}
		out.Message = fmt.Sprintf(
			"Use search with `category` set to %s instead",
			out.RedirectCategoryID,
		)
		return out
	}

	for i := range res.Items {
		out.Items = append(out.Items, toListingItem(&res.Items[i]))
	}

	if res.Filters != nil {
		for i := range res.Filters.Items {
			out.Filters = append(out.Filters, toFilter(&res.Filters.Items[i]))
		}
	}

	out.NextPageOffset = len(out.Items)
	if res.Pagination != nil && res.Pagination.ItemsCount != nil {
		out.NextPageOffset = *res.Pagination.ItemsCount
	}

	return out
}

func toListingItem(item *SearchItem) domain.ListingItem {
	l := domain.ListingItem{
		ProductID: item.PartNumberKey,
		Title:     item.Name,
	}

	if item.Characteristics != nil {
		l.Specifications = FlattenCharacteristics(item.Characteristics.Listing)
	}

	l.Rating, l.RatingCount = feedbackCounters(item.Feedback)

	if item.Offer != nil {
		l.Price = FormatPrice(item.Offer.Price)
		if item.Offer.Availability != nil {
			l.Availability = item.Offer.Availability.Text
		}
	}

	return l
}

func toFilter(f *SearchFilter) domain.Filter {
	out := domain.Filter{
		ID:         string(f.ID),
		Name:       f.Name,
		IsSelected: f.IsSelected,
		ChoiceType: f.ChoiceType,
		Options:    make([]domain.FilterOption, 0, len(f.Items)),
	}
	for i := range f.Items {
		out.Options = append(out.Options, domain.FilterOption{
			ID:         string(f.Items[i].ID),
			Name:       f.Items[i].Name,
			IsSelected: f.Items[i].IsSelected,
		})
	}
	return out
}

// ToProductDetail converts a product page payload.
func ToProductDetail(p *ProductDetails) domain.ProductDetail {
	if p == nil {
		return domain.ProductDetail{}
	}

	d := domain.ProductDetail{
		ProductID: p.PartNumberKey,
		Title:     p.Name,
	}

	if p.Characteristics != nil {
		d.Specifications = FlattenCharacteristics(p.Characteristics.Visible)
	}

	d.Rating, d.RatingCount = feedbackCounters(p.Feedback)

	// Variants
	if p.Family != nil {
		for i := range p.Family.Characteristics {
			for _, fp := range p.Family.Characteristics[i].Products {
				d.OtherOptions = append(d.OtherOptions, domain.ProductVariant{
					ProductID:  fp.PartNumberKey,
					Label:      fp.Label,
					Price:      FormatPrice(fp.Price),
					IsSelected: fp.IsSelected,
					Status:     fp.Status,
					Title:      fp.Name,
				})
			}
		}
	}

	return d
}

// ToReviews converts a reviews payload.
func ToReviews(res *ReviewsResult) []domain.Review {
	if res == nil {
		return []domain.Review{}
	}

	out := make([]domain.Review, 0, len(res.Items))
	for i := range res.Items {
		c := &res.Items[i]
		r := domain.Review{
			Title:          c.Title,
			Content:        c.Content,
			ActuallyBought: c.IsBought,
			Rating:         c.Rating,
			Votes:          c.Votes,
		}
		if c.Product != nil {
			r.Product = toReviewProduct(c.Product)
		}
		out = append(out, r)
	}
	return out
}

func toReviewProduct(p *CommentProduct) *domain.ReviewProduct {
	rp := &domain.ReviewProduct{
		Name:      p.Name,
		ProductID: p.PartNumberKey,
	}

	if p.FamilyCharacteristics != nil {
		lines := make([]string, 0, len(p.FamilyCharacteristics.Characteristics))
		for _, ch := range p.FamilyCharacteristics.Characteristics {
			lines = append(lines, ch.Name+": "+characteristicValue(ch.Value, false))
		}
		rp.Specifications = strings.Join(lines, "\n")
	}

	if p.Offer != nil {
		rp.Price = FormatPrice(p.Offer.Price)
	}

	return rp
}

// FlattenCharacteristics renders each group as one text block:
//
//	<group>:
//	- <name>: <value><unit>
//
// Group and characteristic order is preserved.
func FlattenCharacteristics(groups []CharacteristicGroup) []string {
	if len(groups) == 0 {
		return nil
	}

	blocks := make([]string, 0, len(groups))
	for _, g := range groups {
		lines := make([]string, 0, len(g.Characteristics))
		for _, ch := range g.Characteristics {
			lines = append(lines, ch.Name+": "+characteristicValue(ch.Value, true))
		}
		blocks = append(blocks, g.Name+":\n- "+strings.Join(lines, "\n- "))
	}
	return blocks
}

func characteristicValue(v *CharacteristicValue, withUnit bool) string {
	if v == nil {
		return ""
	}
	if withUnit && v.UnitOfMeasure != nil {
		return string(v.Value) + v.UnitOfMeasure.Symbol
	}
	return string(v.Value)
}

// FormatPrice concatenates prefix, current price and suffix exactly as
// supplied. It returns "" when the price or its current value is missing.
func FormatPrice(p *OfferPrice) string {
	if p == nil || p.Current == "" {
		return ""
	}
	return p.Prefix + p.Current.String() + p.Suffix
}

func feedbackCounters(f *Feedback) (*float64, *int) {
	if f == nil {
		return nil, nil
	}
	var count *int
	if f.Reviews != nil {
		count = f.Reviews.Count
	}
	return f.Rating, count
}

func stripQuery(u string) string {
	path, _, _ := strings.Cut(u, "?")
	return path
}
