package emag_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/emag-catalog/internal/emag"
	"github.com/donaldgifford/emag-catalog/internal/emag/mocks"
)

func newTokens(t *testing.T) *mocks.MockTokenProvider {
	t.Helper()
	tokens := mocks.NewMockTokenProvider(t)
	tokens.EXPECT().Token(mock.Anything).Return("test-token", nil)
	return tokens
}

func TestAPIClient_TopCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		tokenErr   error
		wantErr    error
		errContain string
		wantNavs   int
	}{
		{
			name: "envelope unwrapped",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/nav/all", r.URL.Path)
				assert.Equal(t, "test-token", r.Header.Get("x-tokens"))
				assert.Equal(t, "mobile-app", r.Header.Get("x-request-source"))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{
					"code": 200,
					"data": {"navs": [{"id": 1, "name": "Laptops", "url": "/nav/laptops"}], "count": 1},
					"notifications": null
				}`))
			},
			wantNavs: 1,
		},
		{
			name: "envelope code is not interpreted",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"code": 500, "data": {"navs": []}, "notifications": {}}`))
			},
			wantNavs: 0,
		},
		{
			name: "401 is an auth failure",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			wantErr:    emag.ErrAuth,
			errContain: "status 401",
		},
		{
			name: "500 is an upstream failure",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("boom"))
			},
			wantErr:    emag.ErrUpstream,
			errContain: "status 500",
		},
		{
			name: "invalid JSON",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
			wantErr:    emag.ErrUpstream,
			errContain: "parsing top_categories response",
		},
		{
			name: "null data",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"code": 404, "data": null, "notifications": null}`))
			},
			wantErr:    emag.ErrUpstream,
			errContain: "has no data (code 404)",
		},
		{
			name: "absent data",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"code": 200}`))
			},
			wantErr:    emag.ErrUpstream,
			errContain: "has no data",
		},
		{
			name: "malformed data",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"code": 200, "data": {"navs": "nope"}}`))
			},
			wantErr:    emag.ErrUpstream,
			errContain: "parsing top_categories data",
		},
		{
			name:       "credential failure",
			handler:    func(_ http.ResponseWriter, _ *http.Request) {},
			tokenErr:   emag.ErrAuth,
			wantErr:    emag.ErrAuth,
			errContain: "getting session credential",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			tokens := mocks.NewMockTokenProvider(t)
			if tt.tokenErr != nil {
				tokens.EXPECT().Token(mock.Anything).Return("", tt.tokenErr)
			} else {
				tokens.EXPECT().Token(mock.Anything).Return("test-token", nil)
			}

			client := emag.NewAPIClient(tokens, emag.WithBaseURL(srv.URL))

			res, err := client.TopCategories(context.Background())

			if tt.wantErr != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), tt.errContain)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, res)
			assert.Len(t, res.Navs, tt.wantNavs)
		})
	}
}

func TestAPIClient_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	base := srv.URL
	srv.Close()

	client := emag.NewAPIClient(newTokens(t), emag.WithBaseURL(base))

	_, err := client.Product(context.Background(), "DX1")
	require.ErrorIs(t, err, emag.ErrTransport)
	assert.False(t, errors.Is(err, emag.ErrUpstream))
}

func TestAPIClient_Requests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		call      func(*emag.APIClient) error
		wantPath  string
		wantQuery map[string]string
	}{
		{
			name: "category with nav prefix",
			call: func(c *emag.APIClient) error {
				_, err := c.Category(context.Background(), "/nav/laptopuri")
				return err
			},
			wantPath: "/nav/laptopuri",
		},
		{
			name: "category without nav prefix",
			call: func(c *emag.APIClient) error {
				_, err := c.Category(context.Background(), "/laptopuri")
				return err
			},
			wantPath: "/nav/laptopuri",
		},
		{
			name: "search encodes the query",
			call: func(c *emag.APIClient) error {
				_, err := c.Search(context.Background(), emag.SearchQuery{
					Text:       "laptop",
					PageOffset: intPtr(60),
				})
				return err
			},
			wantPath: "/search-by-filters-with-redirect",
			wantQuery: map[string]string{
				"filters[query]": "laptop",
				"page[offset]":   "60",
			},
		},
		{
			name: "product selects fields",
			call: func(c *emag.APIClient) error {
				_, err := c.Product(context.Background(), "D5Q2XYBBM")
				return err
			},
			wantPath: "/products/D5Q2XYBBM",
			wantQuery: map[string]string{
				"fields[campaigns]": "1",
				"fields[feedback][reviews][rating_distribution]": "1",
				"fields[labels]": "1",
				"templates[]":    "custom_lite",
			},
		},
		{
			name: "reviews select fields",
			call: func(c *emag.APIClient) error {
				_, err := c.Reviews(context.Background(), "D5Q2XYBBM")
				return err
			},
			wantPath: "/products/D5Q2XYBBM/reviews",
			wantQuery: map[string]string{
				"fields[items]":                 "1",
				"fields[items][content_no_tags]": "1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantPath, r.URL.Path)
				for k, v := range tt.wantQuery {
					assert.Equal(t, v, r.URL.Query().Get(k), "query key %s", k)
				}
				_, _ = w.Write([]byte(`{"code": 200, "data": {}, "notifications": null}`))
			}))
			defer srv.Close()

			client := emag.NewAPIClient(
				newTokens(t),
				emag.WithBaseURL(srv.URL+"/"),
				emag.WithRequestSource("mobile-app"),
			)

			require.NoError(t, tt.call(client))
		})
	}
}

func TestAPIClient_CredentialHeader(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.Header.Get("x-session"))
		assert.Equal(t, "cli", r.Header.Get("x-request-source"))
		_, _ = w.Write([]byte(`{"code": 200, "data": {"count": 0, "items": []}}`))
	}))
	defer srv.Close()

	client := emag.NewAPIClient(
		newTokens(t),
		emag.WithBaseURL(srv.URL),
		emag.WithCredentialHeader("x-session"),
		emag.WithRequestSource("cli"),
		emag.WithAPIHTTPClient(srv.Client()),
	)

	res, err := client.Reviews(context.Background(), "X")
	require.NoError(t, err)
	assert.Empty(t, res.Items)
}
