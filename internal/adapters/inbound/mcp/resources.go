package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/stockroom/internal/application"
	"github.com/abdidvp/stockroom/internal/domain"
)

type updateResponse struct {
	Summary  string         `json:"summary"`
	Warnings []string       `json:"warnings,omitempty"`
	Product  domain.Product `json:"product"`
}

type procureResponse struct {
	Message               string             `json:"message"`
	Order                 domain.Procurement `json:"order"`
	LowStockNotifications []string           `json:"low_stock_notifications"`
}

type statisticsResponse struct {
	Text string `json:"text"`
	domain.Statistics
}

// registerResources registers all stockroom MCP resources on the given server.
func registerResources(s *server.MCPServer, sess *application.Session) {
	// 1. stockroom://products - full product list
	s.AddResource(
		mcplib.NewResource(
			"stockroom://products",
			"Products",
			mcplib.WithResourceDescription("Every product in the catalog"),
			mcplib.WithMIMEType("application/json"),
		),
		staticResource("stockroom://products", func() any { return sess.Stock.Products() }),
	)

	// 2. stockroom://statistics - aggregate counts
	s.AddResource(
		mcplib.NewResource(
			"stockroom://statistics",
			"Statistics",
			mcplib.WithResourceDescription("Total stock and product counts per type"),
			mcplib.WithMIMEType("application/json"),
		),
		staticResource("stockroom://statistics", func() any {
			stats := sess.Stock.Statistics()
			return statisticsResponse{Text: stats.String(), Statistics: stats}
		}),
	)

	// 3. stockroom://low-stock - notifications
	s.AddResource(
		mcplib.NewResource(
			"stockroom://low-stock",
			"Low Stock Notifications",
			mcplib.WithResourceDescription("Products that have dropped below the low stock threshold"),
			mcplib.WithMIMEType("application/json"),
		),
		staticResource("stockroom://low-stock", func() any { return sess.Stock.LowStockNotifications() }),
	)

	// 4. stockroom://products/{id} - a single product (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"stockroom://products/{id}",
			"Product",
			mcplib.WithTemplateDescription("A single product by id"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleProductResource(sess),
	)
}

func staticResource(uri string, snapshot func() any) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonContents(uri, snapshot())
	}
}

func handleProductResource(sess *application.Session) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		// Template matching populates the arguments; values may arrive as a
		// single string or a one-element list.
		id := templateArg(request.Params.Arguments, "id")
		if id == "" {
			return nil, fmt.Errorf("product id is required")
		}

		p, err := sess.Stock.Product(id)
		if err != nil {
			return nil, err
		}
		return jsonContents(request.Params.URI, p)
	}
}

func templateArg(args map[string]any, key string) string {
	switch v := args[key].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
