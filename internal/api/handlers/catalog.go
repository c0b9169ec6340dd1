package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/emag-catalog/internal/tools"
	domain "github.com/donaldgifford/emag-catalog/pkg/types"
)

// CatalogService runs the catalog operations. *tools.Service satisfies it.
type CatalogService interface {
	Categories(ctx context.Context) (domain.CategoryList, error)
	Category(ctx context.Context, in tools.CategoryInput) (domain.CategoryList, error)
	Search(ctx context.Context, in tools.SearchInput) (domain.SearchResult, error)
	Product(ctx context.Context, in tools.ProductInput) (domain.ProductDetail, error)
	Reviews(ctx context.Context, in tools.ProductInput) (domain.ReviewList, error)
}

// CatalogHandler exposes the catalog operations over REST.
type CatalogHandler struct {
	svc CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// CategoriesOutput is the response for both category listings.
type CategoriesOutput struct {
	Body domain.CategoryList
}

// ChildCategoriesInput selects the category to open.
type ChildCategoriesInput struct {
	URL string `query:"url" required:"true" doc:"Category URL path" example:"/nav/it-mobile"`
}

// SearchInput is the request body for the search endpoint.
type SearchInput struct {
	Body tools.SearchInput
}

// SearchOutput is the response for the search endpoint.
type SearchOutput struct {
	Body domain.SearchResult
}

// ProductIDInput identifies a product by its part number key.
type ProductIDInput struct {
	ID string `path:"id" minLength:"1" doc:"Product part number key" example:"D5Q2XYBBM"`
}

// ProductOutput is the response for the product endpoint.
type ProductOutput struct {
	Body domain.ProductDetail
}

// ReviewsOutput is the response for the reviews endpoint.
type ReviewsOutput struct {
	Body domain.ReviewList
}

// Categories lists the top-level categories.
func (h *CatalogHandler) Categories(ctx context.Context, _ *struct{}) (*CategoriesOutput, error) {
	list, err := h.svc.Categories(ctx)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &CategoriesOutput{Body: list}, nil
}

// ChildCategories lists the children of a category.
func (h *CatalogHandler) ChildCategories(ctx context.Context, input *ChildCategoriesInput) (*CategoriesOutput, error) {
	list, err := h.svc.Category(ctx, tools.CategoryInput{URL: input.URL})
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &CategoriesOutput{Body: list}, nil
}

// Search runs a faceted catalog search.
func (h *CatalogHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	res, err := h.svc.Search(ctx, input.Body)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &SearchOutput{Body: res}, nil
}

// Product returns a product page.
func (h *CatalogHandler) Product(ctx context.Context, input *ProductIDInput) (*ProductOutput, error) {
	p, err := h.svc.Product(ctx, tools.ProductInput{ProductID: input.ID})
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &ProductOutput{Body: p}, nil
}

// Reviews returns the reviews of a product.
func (h *CatalogHandler) Reviews(ctx context.Context, input *ProductIDInput) (*ReviewsOutput, error) {
	list, err := h.svc.Reviews(ctx, tools.ProductInput{ProductID: input.ID})
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &ReviewsOutput{Body: list}, nil
}

func toHTTPError(err error) error {
	if errors.Is(err, tools.ErrValidation) {
		return huma.Error422UnprocessableEntity(err.Error())
	}
	return huma.Error502BadGateway("eMAG API error: " + err.Error())
}

// RegisterCatalogRoutes registers the catalog endpoints with the Huma API.
func RegisterCatalogRoutes(api huma.API, h *CatalogHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories",
		Summary:     "List top-level categories",
		Tags:        []string{"categories"},
		Errors:      []int{http.StatusBadGateway},
	}, h.Categories)

	huma.Register(api, huma.Operation{
		OperationID: "list-child-categories",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories/children",
		Summary:     "List child categories",
		Description: "Opens a category by its URL path and returns its direct children.",
		Tags:        []string{"categories"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusBadGateway},
	}, h.ChildCategories)

	huma.Register(api, huma.Operation{
		OperationID: "search-catalog",
		Method:      http.MethodPost,
		Path:        "/api/v1/search",
		Summary:     "Search the catalog",
		Description: "Runs a faceted search. When eMAG maps the query onto a category the result carries redirect_category_id and no items.",
		Tags:        []string{"search"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusBadGateway},
	}, h.Search)

	huma.Register(api, huma.Operation{
		OperationID: "get-product",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{id}",
		Summary:     "Get a product page",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusBadGateway},
	}, h.Product)

	huma.Register(api, huma.Operation{
		OperationID: "get-product-reviews",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{id}/reviews",
		Summary:     "Get product reviews",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusBadGateway},
	}, h.Reviews)
}
