package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/donaldgifford/emag-catalog/internal/tools"
	domain "github.com/donaldgifford/emag-catalog/pkg/types"
)

// Categories lists the top-level categories.
func (c *Client) Categories(ctx context.Context) (domain.CategoryList, error) {
	var out domain.CategoryList
	if err := c.get(ctx, "/api/v1/categories", &out); err != nil {
		return domain.CategoryList{}, fmt.Errorf("listing categories: %w", err)
	}
	return out, nil
}

// Category lists the children of a category.
func (c *Client) Category(ctx context.Context, in tools.CategoryInput) (domain.CategoryList, error) {
	q := url.Values{}
	q.Set("url", in.URL)

	var out domain.CategoryList
	if err := c.get(ctx, "/api/v1/categories/children?"+q.Encode(), &out); err != nil {
		return domain.CategoryList{}, fmt.Errorf("listing children of %s: %w", in.URL, err)
	}
	return out, nil
}

// Search runs a faceted catalog search.
func (c *Client) Search(ctx context.Context, in tools.SearchInput) (domain.SearchResult, error) {
	var out domain.SearchResult
	if err := c.post(ctx, "/api/v1/search", in, &out); err != nil {
		return domain.SearchResult{}, fmt.Errorf("searching: %w", err)
	}
	return out, nil
}

// Product returns a product page.
func (c *Client) Product(ctx context.Context, in tools.ProductInput) (domain.ProductDetail, error) {
	var out domain.ProductDetail
	if err := c.get(ctx, "/api/v1/products/"+url.PathEscape(in.ProductID), &out); err != nil {
		return domain.ProductDetail{}, fmt.Errorf("getting product %s: %w", in.ProductID, err)
	}
	return out, nil
}

// Reviews returns the reviews of a product.
func (c *Client) Reviews(ctx context.Context, in tools.ProductInput) (domain.ReviewList, error) {
	var out domain.ReviewList
	path := "/api/v1/products/" + url.PathEscape(in.ProductID) + "/reviews"
	if err := c.get(ctx, path, &out); err != nil {
		return domain.ReviewList{}, fmt.Errorf("getting reviews for %s: %w", in.ProductID, err)
	}
	return out, nil
}
