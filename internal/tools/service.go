// Package tools binds the five catalog operations to the eMAG client:
// validate the caller's input, fetch from upstream, project the payload.
// The same Service backs the MCP tools, the REST API and the CLI.
package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/donaldgifford/emag-catalog/internal/emag"
	"github.com/donaldgifford/emag-catalog/internal/metrics"
	domain "github.com/donaldgifford/emag-catalog/pkg/types"
)

// Tool names exposed to hosts.
const (
	ToolCategories = "get_product_categories"
	ToolCategory   = "get_product_category"
	ToolSearch     = "search"
	ToolProduct    = "get_product_page"
	ToolReviews    = "get_product_reviews"
)

const tracerName = "github.com/donaldgifford/emag-catalog/internal/tools"

// ErrValidation is returned when caller input is rejected before any
// upstream call.
var ErrValidation = errors.New("invalid input")

// CategoryInput selects a catalog node to drill into.
type CategoryInput struct {
	URL string `json:"url" jsonschema:"url of the category to open (e.g. /nav/it-mobile)" validate:"required,startswith=/"`
}

// SearchInput is the faceted search request.
type SearchInput struct {
	Query      string           `json:"query,omitempty"       jsonschema:"free text search query"`
	Category   *int             `json:"category,omitempty"    jsonschema:"category id to search within" validate:"omitempty,gt=0"`
	Filters    map[string][]int `json:"filters,omitempty"     jsonschema:"object with filters like {7885: [31004]} (Tip Procesor -> Apple M3)" validate:"omitempty,dive,keys,numeric,endkeys"`
	PageOffset *int             `json:"page_offset,omitempty" jsonschema:"page offset (the count of items to skip)" validate:"omitempty,gte=0"`
	MinPrice   *float64         `json:"minPrice,omitempty"    jsonschema:"minimum price in RON, set together with maxPrice" validate:"required_with=MaxPrice,omitempty,gte=0"`
	MaxPrice   *float64         `json:"maxPrice,omitempty"    jsonschema:"maximum price in RON, set together with minPrice" validate:"required_with=MinPrice,omitempty,gte=0"`
}

// ProductInput identifies a product by its part number key.
type ProductInput struct {
	ProductID string `json:"product_id" jsonschema:"product id" validate:"required"`
}

// Service runs catalog operations against an emag.Catalog.
type Service struct {
	catalog  emag.Catalog
	validate *validator.Validate
	logger   *slog.Logger
}

// NewService creates a new Service.
func NewService(catalog emag.Catalog, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Service{
		catalog:  catalog,
		validate: v,
		logger:   logger,
	}
}

// Categories lists the top-level categories.
func (s *Service) Categories(ctx context.Context) (out domain.CategoryList, err error) {
	ctx, done := s.begin(ctx, ToolCategories)
	defer done(&err)

	res, err := s.catalog.TopCategories(ctx)
	if err != nil {
		return domain.CategoryList{}, fmt.Errorf("fetching top categories: %w", err)
	}
	return domain.CategoryList{Categories: emag.ToCategories(res)}, nil
}

// Category lists the children of a category.
func (s *Service) Category(ctx context.Context, in CategoryInput) (out domain.CategoryList, err error) {
	ctx, done := s.begin(ctx, ToolCategory)
	defer done(&err)

	if err := s.check(in); err != nil {
		return domain.CategoryList{}, err
	}

	res, err := s.catalog.Category(ctx, in.URL)
	if err != nil {
		return domain.CategoryList{}, fmt.Errorf("fetching category %s: %w", in.URL, err)
	}
	return domain.CategoryList{Categories: emag.ToChildCategories(res)}, nil
}

// Search runs a faceted search. A redirect result carries no items.
func (s *Service) Search(ctx context.Context, in SearchInput) (out domain.SearchResult, err error) {
	ctx, done := s.begin(ctx, ToolSearch)
	defer done(&err)

	if err := s.check(in); err != nil {
		return domain.SearchResult{}, err
	}
	if in.MinPrice != nil && in.MaxPrice != nil && *in.MinPrice > *in.MaxPrice {
		return domain.SearchResult{}, fmt.Errorf(
			"%w: minPrice (%g) must not exceed maxPrice (%g)",
			ErrValidation, *in.MinPrice, *in.MaxPrice,
		)
	}

	res, err := s.catalog.Search(ctx, in.ToQuery())
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("searching: %w", err)
	}

	out = emag.ToSearchResult(res)
	if out.IsRedirect() {
		metrics.SearchRedirectsTotal.Inc()
		s.logger.DebugContext(ctx, "search redirected to category", "category_id", out.RedirectCategoryID)
	}
	return out, nil
}

// Product returns a product page.
func (s *Service) Product(ctx context.Context, in ProductInput) (out domain.ProductDetail, err error) {
	ctx, done := s.begin(ctx, ToolProduct)
	defer done(&err)

	if err := s.check(in); err != nil {
		return domain.ProductDetail{}, err
	}

	res, err := s.catalog.Product(ctx, in.ProductID)
	if err != nil {
		return domain.ProductDetail{}, fmt.Errorf("fetching product %s: %w", in.ProductID, err)
	}
	return emag.ToProductDetail(res), nil
}

// Reviews returns the reviews of a product.
func (s *Service) Reviews(ctx context.Context, in ProductInput) (out domain.ReviewList, err error) {
	ctx, done := s.begin(ctx, ToolReviews)
	defer done(&err)

	if err := s.check(in); err != nil {
		return domain.ReviewList{}, err
	}

	res, err := s.catalog.Reviews(ctx, in.ProductID)
	if err != nil {
		return domain.ReviewList{}, fmt.Errorf("fetching reviews for %s: %w", in.ProductID, err)
	}
	return domain.ReviewList{Reviews: emag.ToReviews(res)}, nil
}

// ToQuery converts the input into an encoder query.
func (in SearchInput) ToQuery() emag.SearchQuery {
	q := emag.SearchQuery{
		Text:       in.Query,
		CategoryID: in.Category,
		MinPrice:   in.MinPrice,
		MaxPrice:   in.MaxPrice,
		PageOffset: in.PageOffset,
	}
	if len(in.Filters) > 0 {
		q.CustomFilters = make(map[string][]string, len(in.Filters))
		for facet, options := range in.Filters {
			ids := make([]string, 0, len(options))
			for _, o := range options {
				ids = append(ids, strconv.Itoa(o))
			}
			q.CustomFilters[facet] = ids
		}
	}
	return q
}

func (s *Service) check(in any) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "required_with":
		return fe.Field() + " must be set together with " + lowerFirst(fe.Param())
	case "startswith":
		return fe.Field() + " must start with " + fe.Param()
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "gte":
		return fe.Field() + " must be at least " + fe.Param()
	case "numeric":
		return "filter facet ids must be numeric (got " + fmt.Sprint(fe.Value()) + ")"
	default:
		return fe.Field() + " failed " + fe.Tag()
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// begin opens the span of one operation. The returned func records the
// outcome in metrics, the span and the log.
func (s *Service) begin(ctx context.Context, tool string) (context.Context, func(*error)) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "tool."+tool)
	start := time.Now()

	return ctx, func(errp *error) {
		defer span.End()

		elapsed := time.Since(start)
		metrics.ToolCallDuration.WithLabelValues(tool).Observe(elapsed.Seconds())

		status := "ok"
		switch {
		case *errp == nil:
		case errors.Is(*errp, ErrValidation):
			status = "invalid"
		default:
			status = "error"
		}
		metrics.ToolCallsTotal.WithLabelValues(tool, status).Inc()
		span.SetAttributes(attribute.String("tool.status", status))

		if *errp != nil {
			span.RecordError(*errp)
			span.SetStatus(codes.Error, (*errp).Error())
			s.logger.WarnContext(ctx, "catalog operation failed",
				"tool", tool,
				"duration", elapsed,
				"error", *errp,
			)
			return
		}
		s.logger.DebugContext(ctx, "catalog operation completed", "tool", tool, "duration", elapsed)
	}
}
