package emag

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/donaldgifford/emag-catalog/internal/metrics"
)

const tracerName = "github.com/donaldgifford/emag-catalog/internal/emag"

// Field selections sent with product and review requests.
var (
	productFields = url.Values{
		"fields[campaigns]":                              {"1"},
		"fields[feedback][reviews][rating_distribution]": {"1"},
		"fields[labels]":                                 {"1"},
		"templates[]":                                    {"custom_lite"},
	}
	reviewFields = url.Values{
		"fields[items]":                 {"1"},
		"fields[items][content_no_tags]": {"1"},
	}
)

// APIClient implements Catalog against the eMAG mobile API.
type APIClient struct {
	tokens        TokenProvider
	baseURL       string
	tokenHeader   string
	requestSource string
	client        *http.Client
}

// APIOption configures the APIClient.
type APIOption func(*APIClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(u string) APIOption {
	return func(c *APIClient) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithCredentialHeader overrides the request header carrying the credential.
func WithCredentialHeader(h string) APIOption {
	return func(c *APIClient) {
		c.tokenHeader = h
	}
}

// WithRequestSource overrides the client identification header value.
func WithRequestSource(s string) APIOption {
	return func(c *APIClient) {
		c.requestSource = s
	}
}

// WithAPIHTTPClient overrides the default HTTP client.
func WithAPIHTTPClient(hc *http.Client) APIOption {
	return func(c *APIClient) {
		c.client = hc
	}
}

// NewAPIClient creates a new eMAG API client.
func NewAPIClient(tokens TokenProvider, opts ...APIOption) *APIClient {
	c := &APIClient{
		tokens:        tokens,
		baseURL:       defaultBaseURL,
		tokenHeader:   defaultTokenHeader,
		requestSource: defaultRequestSource,
		client:        &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type envelope struct {
	Code          int             `json:"code"`
	Data          json.RawMessage `json:"data"`
	Metadata      json.RawMessage `json:"metadata,omitempty"`
	Notifications json.RawMessage `json:"notifications"`
}

// FetchJSON issues an authenticated GET for path and decodes the envelope's
// data field into a T. op names the call in metrics and traces.
func FetchJSON[T any](
	ctx context.Context,
	c *APIClient,
	op, path, rawQuery string,
) (*T, error) {
	var dst T
	if err := c.get(ctx, op, path, rawQuery, &dst); err != nil {
		return nil, err
	}
	return &dst, nil
}

// TopCategories implements Catalog.TopCategories.
func (c *APIClient) TopCategories(ctx context.Context) (*NavAllResult, error) {
	return FetchJSON[NavAllResult](ctx, c, "top_categories", pathTopCategories, "")
}

// Category implements Catalog.Category. path is the nav url of the node,
// with or without its "/nav" prefix.
func (c *APIClient) Category(ctx context.Context, path string) (*Nav, error) {
	return FetchJSON[Nav](ctx, c, "category", navPath(path), "")
}

// Search implements Catalog.Search.
func (c *APIClient) Search(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	return FetchJSON[SearchResult](ctx, c, "search", pathSearch, q.Encode())
}

// Product implements Catalog.Product.
func (c *APIClient) Product(ctx context.Context, productID string) (*ProductDetails, error) {
	return FetchJSON[ProductDetails](
		ctx, c, "product",
		pathProducts+url.PathEscape(productID),
		productFields.Encode(),
	)
}

// Reviews implements Catalog.Reviews.
func (c *APIClient) Reviews(ctx context.Context, productID string) (*ReviewsResult, error) {
	return FetchJSON[ReviewsResult](
		ctx, c, "reviews",
		pathProducts+url.PathEscape(productID)+"/reviews",
		reviewFields.Encode(),
	)
}

func navPath(path string) string {
	if strings.HasPrefix(path, pathNav+"/") {
		return path
	}
	return pathNav + "/" + strings.TrimLeft(path, "/")
}

func (c *APIClient) get(ctx context.Context, op, path, rawQuery string, dst any) (err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "emag."+op)
	defer span.End()

	start := time.Now()
	defer func() {
		outcome := outcomeOf(err)
		metrics.UpstreamRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
		metrics.UpstreamRequestsTotal.WithLabelValues(op, outcome).Inc()
		span.SetAttributes(attribute.String("emag.outcome", outcome))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("getting session credential: %w", err)
	}

	u := c.baseURL + path
	if rawQuery != "" {
		u += "?" + rawQuery
	}
	span.SetAttributes(attribute.String("emag.path", path))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("%w: creating HTTP request: %w", ErrTransport, err)
	}

	req.Header.Set(c.tokenHeader, token)
	req.Header.Set("x-request-source", c.requestSource)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: executing %s request: %w", ErrTransport, op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response body: %w", ErrTransport, err)
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: credential rejected (status %d)", ErrAuth, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf(
			"%w: eMAG API error (status %d): %s",
			ErrUpstream,
			resp.StatusCode,
			snippet(body),
		)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%w: parsing %s response: %w", ErrUpstream, op, err)
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return fmt.Errorf("%w: %s response has no data (code %d)", ErrUpstream, op, env.Code)
	}

	if err := json.Unmarshal(env.Data, dst); err != nil {
		return fmt.Errorf("%w: parsing %s data: %w", ErrUpstream, op, err)
	}

	return nil
}

func snippet(body []byte) string {
	const maxLen = 256
	if len(body) <= maxLen {
		return string(body)
	}
	return string(body[:maxLen]) + "..."
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrAuth):
		return "auth"
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "upstream"
	}
}
