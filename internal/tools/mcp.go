package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	domain "github.com/donaldgifford/emag-catalog/pkg/types"
)

const (
	descCategories = "Get all main product categories. Use chosen category url with " +
		"get_product_category to fetch subcategories."
	descCategory = "Get a product subcategory with a url path. Use chosen category url with " +
		"get_product_category to fetch subcategories. Use chosen category id with search to " +
		"fetch products from said subcategory. (E.g. you would call get_product_category until " +
		"you reach Telefoane Mobile, which is a detailed category, and then you would issue a " +
		"search with its id). It's best to search for a specific category, than searching a " +
		"vague term like `telefoane`."
	descSearch  = "Search for products using a query, category, and / or filters."
	descProduct = "Get a product's page"
	descReviews = "Get a product's reviews"
)

// NewServer returns an MCP server exposing the catalog operations of svc.
func NewServer(svc *Service, name, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: name, Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{Name: ToolCategories, Description: descCategories},
		func(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, domain.CategoryList, error) {
			out, err := svc.Categories(ctx)
			return jsonResult(out, err)
		})

	mcp.AddTool(server, &mcp.Tool{Name: ToolCategory, Description: descCategory},
		func(ctx context.Context, _ *mcp.CallToolRequest, in CategoryInput) (*mcp.CallToolResult, domain.CategoryList, error) {
			out, err := svc.Category(ctx, in)
			return jsonResult(out, err)
		})

	mcp.AddTool(server, &mcp.Tool{Name: ToolSearch, Description: descSearch},
		func(ctx context.Context, _ *mcp.CallToolRequest, in SearchInput) (*mcp.CallToolResult, domain.SearchResult, error) {
			out, err := svc.Search(ctx, in)
			if err == nil && out.IsRedirect() {
				return &mcp.CallToolResult{
					Content: []mcp.Content{&mcp.TextContent{Text: out.Message}},
				}, out, nil
			}
			return jsonResult(out, err)
		})

	mcp.AddTool(server, &mcp.Tool{Name: ToolProduct, Description: descProduct},
		func(ctx context.Context, _ *mcp.CallToolRequest, in ProductInput) (*mcp.CallToolResult, domain.ProductDetail, error) {
			out, err := svc.Product(ctx, in)
			return jsonResult(out, err)
		})

	mcp.AddTool(server, &mcp.Tool{Name: ToolReviews, Description: descReviews},
		func(ctx context.Context, _ *mcp.CallToolRequest, in ProductInput) (*mcp.CallToolResult, domain.ReviewList, error) {
			out, err := svc.Reviews(ctx, in)
			return jsonResult(out, err)
		})

	return server
}

// jsonResult pairs the structured output with its JSON text form. The SDK
// fills StructuredContent from the returned output value.
func jsonResult[T any](out T, err error) (*mcp.CallToolResult, T, error) {
	if err != nil {
		var zero T
		return nil, zero, err
	}
	text, err := json.Marshal(out)
	if err != nil {
		var zero T
		return nil, zero, fmt.Errorf("encoding result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(text)}},
	}, out, nil
}
