package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/emag-catalog/internal/emag"
	"github.com/donaldgifford/emag-catalog/internal/emag/mocks"
	"github.com/donaldgifford/emag-catalog/internal/tools"
	domain "github.com/donaldgifford/emag-catalog/pkg/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, catalog *mocks.MockCatalog, tokens *mocks.MockTokenProvider) *httptest.Server {
	t.Helper()

	svc := tools.NewService(catalog, quietLogger())
	srv := httptest.NewServer(newEcho(quietLogger(), svc, tokens, "emag-test", "0.0.1"))
	t.Cleanup(srv.Close)
	return srv
}

func TestParseFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		raw        []string
		want       map[string][]int
		errContain string
	}{
		{
			name: "none",
			raw:  nil,
			want: nil,
		},
		{
			name: "single facet with two options",
			raw:  []string{"7885=31004,31005"},
			want: map[string][]int{"7885": {31004, 31005}},
		},
		{
			name: "repeated facet appends",
			raw:  []string{"7885=31004", " 7885 = 31005", "6506=1"},
			want: map[string][]int{"7885": {31004, 31005}, "6506": {1}},
		},
		{
			name:       "missing separator",
			raw:        []string{"7885"},
			errContain: "want <facet>=<option>",
		},
		{
			name:       "non-numeric option",
			raw:        []string{"7885=m3"},
			errContain: `invalid option "m3"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseFilters(tt.raw)
			if tt.errContain != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContain)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Laptop ...", truncate("Laptop Apple MacBook", 10))
	assert.Equal(t, "Căști ...", truncate("Căști wireless Sony", 9))
}

func TestPrintSearchResult(t *testing.T) {
	t.Parallel()

	rate := 4.5
	count := 12

	var buf bytes.Buffer
	require.NoError(t, printSearchResult(&buf, domain.SearchResult{
		NextPageOffset: 60,
		Items: []domain.ListingItem{
			{ProductID: "DA1", Title: "Laptop A", Price: "2999.99 Lei", Rating: &rate, RatingCount: &count},
			{ProductID: "DB2", Title: "Laptop B"},
		},
		Filters: []domain.Filter{{
			ID:      "7885",
			Name:    "Tip procesor",
			Options: []domain.FilterOption{{ID: "31004", Name: "Apple M3"}},
		}},
	}))

	out := buf.String()
	assert.Contains(t, out, "PRODUCT ID")
	assert.Contains(t, out, "2999.99 Lei")
	assert.Contains(t, out, "4.5 (12)")
	assert.Contains(t, out, "Next page offset:")
	assert.Contains(t, out, "31004=Apple M3")

	buf.Reset()
	require.NoError(t, printSearchResult(&buf, domain.SearchResult{
		Redirect:           true,
		RedirectCategoryID: "555",
		Message:            "Use search with `category` set to 555 instead",
	}))
	assert.Equal(t, "Use search with `category` set to 555 instead\n", buf.String())
}

func TestPrintReviewsTable(t *testing.T) {
	t.Parallel()

	rate := 5.0
	bought := true

	var buf bytes.Buffer
	require.NoError(t, printReviewsTable(&buf, []domain.Review{
		{Title: "Excelent", Content: "Rapid\nsi silentios", Rating: &rate, ActuallyBought: &bought},
	}))

	assert.Contains(t, buf.String(), "Rapid si silentios")
	assert.Contains(t, buf.String(), "true")
}

func TestNewEcho(t *testing.T) {
	t.Parallel()

	catalog := mocks.NewMockCatalog(t)
	catalog.EXPECT().TopCategories(mock.Anything).Return(&emag.NavAllResult{
		Navs: []emag.Nav{{Name: "Laptops", URL: "/nav/laptops", Deeplink: "emag://c/category_id=7"}},
	}, nil)

	tokens := mocks.NewMockTokenProvider(t)
	tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()

	srv := newTestServer(t, catalog, tokens)

	for _, path := range []string{"/healthz", "/readyz", "/metrics", "/api/v1/categories", "/openapi.json"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err, path)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"), path)
	}

	// MCP over streamable HTTP reaches the same service.
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client"}, nil)
	session, err := client.Connect(context.Background(), &mcp.StreamableClientTransport{Endpoint: srv.URL + "/mcp"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      tools.ToolCategories,
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	var got domain.CategoryList
	require.NoError(t, json.Unmarshal([]byte(text.Text), &got))
	assert.Equal(t, "7", got.Categories[0].ID)
}

// Runs the real command tree against a serve-http instance. Cobra and
// viper state is global, so this test is not parallel.
func TestCommands_ServerMode(t *testing.T) {
	catalog := mocks.NewMockCatalog(t)
	catalog.EXPECT().Search(mock.Anything, mock.MatchedBy(func(q emag.SearchQuery) bool {
		return q.Text == "laptop" &&
			len(q.CustomFilters["7885"]) == 2 &&
			q.MinPrice != nil && *q.MinPrice == 0 &&
			q.MaxPrice != nil && *q.MaxPrice == 5000
	})).Return(&emag.SearchResult{
		Items:      []emag.SearchItem{{Name: "Laptop A", PartNumberKey: "DA1"}},
		Pagination: &emag.Pagination{ItemsCount: ptr(1)},
	}, nil).Once()
	catalog.EXPECT().Reviews(mock.Anything, "DA1").Return(&emag.ReviewsResult{
		Items: []emag.Comment{{Title: "Great", Content: "ok"}},
	}, nil).Once()

	srv := newTestServer(t, catalog, mocks.NewMockTokenProvider(t))

	run := func(args ...string) string {
		t.Helper()
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(io.Discard)
		rootCmd.SetArgs(append(args, "--server", srv.URL))
		require.NoError(t, rootCmd.Execute())
		return out.String()
	}

	out := run("search", "laptop",
		"--filter", "7885=31004,31005",
		"--min-price", "0", "--max-price", "5000",
		"--output", "json",
	)
	var res domain.SearchResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 1, res.NextPageOffset)
	assert.Equal(t, "DA1", res.Items[0].ProductID)

	out = run("reviews", "DA1", "--output", "table")
	assert.Contains(t, out, "Great")

	out = run("version")
	assert.Contains(t, out, "emag-catalog "+Version)
}

func ptr[T any](v T) *T { return &v }

// Direct mode: the command builds the upstream client from the config file.
func TestCommands_DirectMode(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("HEAD /v2.0/user/details", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("x-session", "direct-token")
	})
	mux.HandleFunc("GET /nav/all", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "direct-token", r.Header.Get("x-session"))
		assert.Equal(t, "cli-test", r.Header.Get("x-request-source"))
		_, _ = w.Write([]byte(`{"code": 200, "data": {"navs": [
			{"id": 1, "name": "Laptopuri", "url": "/nav/laptopuri", "deeplink": "emag://listing/category_id=2172"}
		]}}`))
	})
	upstream := httptest.NewServer(mux)
	defer upstream.Close()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
upstream:
  base_url: `+upstream.URL+`
  token_url: `+upstream.URL+`/v2.0/user/details
  token_header: x-session
  request_source: cli-test
  timeout: 5s
logging:
  level: error
`), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"categories", "--server=", "--config", cfgPath, "--output", "table"})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "2172")
	assert.Contains(t, out.String(), "/nav/laptopuri")
}
